package domain

import "time"

// Role determines what an account is allowed to reach.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the domain model for registered accounts.
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
