package auth

import "errors"

// Verification errors. These distinctions exist for logging only; the
// request gate collapses all of them to a single "unauthenticated"
// outcome so callers cannot tell which factor failed.
var (
	ErrCredentialNotFound = errors.New("credential not found")
	ErrInvalidCredential  = errors.New("invalid credential")
	ErrMalformedToken     = errors.New("malformed token")
	ErrBadSignature       = errors.New("bad token signature")
	ErrExpiredToken       = errors.New("token expired")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInsufficientRole   = errors.New("insufficient role")
)
