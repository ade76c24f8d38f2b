package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewToken generates a cryptographically secure opaque session token.
// 32 bytes = 256 bits of entropy.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
