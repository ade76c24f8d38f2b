package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ajeet990/myfacebook/internal/domain"
)

func testIdentity() *Identity {
	return &Identity{
		ID:    42,
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  domain.RoleUser,
	}
}

func TestTokenIssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := tm.Issue(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 2*time.Second)

	parsed, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.ID)
	assert.Equal(t, "Alice", parsed.Name)
	assert.Equal(t, "alice@example.com", parsed.Email)
	assert.Equal(t, domain.RoleUser, parsed.Role)
	assert.WithinDuration(t, expiresAt, parsed.ExpiresAt, time.Second)
}

func TestTokenParseIsIdempotent(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, _, err := tm.Issue(testIdentity())
	require.NoError(t, err)

	first, err := tm.Parse(token)
	require.NoError(t, err)
	second, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTokenRejectsDifferentSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Issue(testIdentity())
	require.NoError(t, err)

	parsed, err := verifier.Parse(token)
	assert.Nil(t, parsed)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestTokenRejectsMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	parsed, err := tm.Parse("not-a-token")
	assert.Nil(t, parsed)
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestTokenRejectsExpired(t *testing.T) {
	issuer := NewTokenManager("test-secret", time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := issuer.Issue(testIdentity())
	require.NoError(t, err)

	verifier := NewTokenManager("test-secret", time.Hour)
	parsed, err := verifier.Parse(token)
	assert.Nil(t, parsed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenExpiryBoundary(t *testing.T) {
	t0 := time.Unix(1700000000, 0)
	ttl := time.Hour

	issuer := NewTokenManager("test-secret", ttl)
	issuer.now = func() time.Time { return t0 }
	token, expiresAt, err := issuer.Issue(testIdentity())
	require.NoError(t, err)
	require.True(t, expiresAt.Equal(t0.Add(ttl)))

	// One second before expiry the token is still valid.
	verifier := NewTokenManager("test-secret", ttl)
	verifier.now = func() time.Time { return t0.Add(ttl - time.Second) }
	parsed, err := verifier.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.ID)

	// expires_at == now is already expired.
	verifier.now = func() time.Time { return t0.Add(ttl) }
	parsed, err = verifier.Parse(token)
	assert.Nil(t, parsed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenReissueRestartsExpiry(t *testing.T) {
	t0 := time.Unix(1700000000, 0)
	tm := NewTokenManager("test-secret", time.Hour)

	tm.now = func() time.Time { return t0 }
	_, firstExpiry, err := tm.Issue(testIdentity())
	require.NoError(t, err)

	tm.now = func() time.Time { return t0.Add(30 * time.Minute) }
	_, secondExpiry, err := tm.Issue(testIdentity())
	require.NoError(t, err)

	assert.True(t, secondExpiry.Equal(firstExpiry.Add(30*time.Minute)))
}
