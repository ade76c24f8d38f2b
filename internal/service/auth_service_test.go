package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ajeet990/myfacebook/internal/auth"
	"github.com/Ajeet990/myfacebook/internal/config"
	"github.com/Ajeet990/myfacebook/internal/domain"
	"github.com/Ajeet990/myfacebook/internal/events"
	"github.com/Ajeet990/myfacebook/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			TokenTTLHours: 1,
			BcryptCost:    4,
		},
	}
}

func newAuthFixture() (*AuthService, *fakeUserRepo, *fakeSessionStore, *recordingDispatcher) {
	users := &fakeUserRepo{}
	store := newFakeSessionStore()
	dispatcher := &recordingDispatcher{}
	svc := NewAuthService(testConfig(), AuthDependencies{
		UserRepo:     users,
		SessionStore: store,
		Dispatcher:   dispatcher,
	})
	return svc, users, store, dispatcher
}

func TestRegisterHashesPasswordAndPublishes(t *testing.T) {
	svc, users, _, dispatcher := newAuthFixture()

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "1234567890", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "Secret123", user.PasswordHash)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "Secret123"))

	stored, err := users.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventUserRegistered, dispatcher.published[0].Type)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "1234567890", "Secret123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other", "alice@example.com", "0987654321", "Another1")
	require.Error(t, err)

	domainErr := util.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, "User already exists", domainErr.Message)
}

func TestLoginIssuesBothRepresentations(t *testing.T) {
	svc, _, store, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "1234567890", "Secret123")
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "alice@example.com", "Secret123")
	require.NoError(t, err)

	// Bearer token verifies against the same secret and carries the claims.
	identity, err := svc.TokenManager().Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Identity.ID, identity.ID)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, domain.RoleUser, identity.Role)

	// Server-side session exists and points at the same subject.
	sess, err := store.Get(context.Background(), result.Session.Token)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, result.Identity.ID, sess.UserID)
	assert.True(t, sess.ExpiresAt.Equal(result.ExpiresAt))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "1234567890", "Secret123")
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, auth.ErrInvalidCredential)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	result, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, auth.ErrCredentialNotFound)
}

func TestLogoutDeletesSession(t *testing.T) {
	svc, _, store, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "1234567890", "Secret123")
	require.NoError(t, err)
	result, err := svc.Login(context.Background(), "alice@example.com", "Secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.Session.Token))

	sess, err := store.Get(context.Background(), result.Session.Token)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestRefreshTokenSignsFreshToken(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "1234567890", "Secret123")
	require.NoError(t, err)
	result, err := svc.Login(context.Background(), "alice@example.com", "Secret123")
	require.NoError(t, err)

	token, expiresAt, err := svc.RefreshToken(result.Identity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.Before(result.ExpiresAt))

	identity, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, result.Identity.ID, identity.ID)
}
