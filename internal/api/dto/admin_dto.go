package dto

import "time"

// AdminPost is the reduced post view in the admin user list.
type AdminPost struct {
	ID       int64   `json:"id"`
	Text     *string `json:"text"`
	ImageURL *string `json:"imageUrl"`
}

// AdminUser is an account with its posts as the admin list shows it.
type AdminUser struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Role      string      `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	Posts     []AdminPost `json:"posts"`
}
