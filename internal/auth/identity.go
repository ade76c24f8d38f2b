package auth

import (
	"time"

	"github.com/Ajeet990/myfacebook/internal/domain"
)

// Identity is the claim set trusted after verification. It is rebuilt
// fresh on every verification and never carries the password hash.
type Identity struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	IssuedAt  time.Time   `json:"issued_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// IsAdmin reports whether the identity carries the ADMIN role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == domain.RoleAdmin
}
