package session

import (
	"context"
	"time"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_token"

// Session is the server-side record backing a cookie login.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store defines how sessions are stored and retrieved. Get returns
// (nil, nil) for an unknown or expired token.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
