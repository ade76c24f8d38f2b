package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Ajeet990/myfacebook/internal/auth"
	"github.com/Ajeet990/myfacebook/internal/config"
	"github.com/Ajeet990/myfacebook/internal/domain"
	"github.com/Ajeet990/myfacebook/internal/events"
	"github.com/Ajeet990/myfacebook/internal/repository"
	"github.com/Ajeet990/myfacebook/internal/session"
	"github.com/Ajeet990/myfacebook/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	verifier   *auth.CredentialVerifier
	tokenMgr   *auth.TokenManager
	sessions   session.Store
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	SessionStore session.Store
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		verifier:   auth.NewCredentialVerifier(deps.UserRepo),
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		sessions:   deps.SessionStore,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account.
func (s *AuthService) Register(ctx context.Context, name, email, phone, password string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, util.NewDomainError("EMAIL_TAKEN", "User already exists", http.StatusBadRequest, nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		ActorID:   user.ID,
		Timestamp: time.Now(),
		Payload:   events.UserRegisteredPayload{UserID: user.ID, Email: user.Email},
	})

	return user, nil
}

// LoginResult bundles everything a successful login produces: the claim
// set, a bearer token for API clients and a server-side session for the
// cookie flow.
type LoginResult struct {
	Identity  *auth.Identity
	Token     string
	ExpiresAt time.Time
	Session   session.Session
}

// Login verifies credentials and issues both token representations.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	identity, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokenMgr.Issue(identity)
	if err != nil {
		return nil, err
	}
	identity.IssuedAt = time.Now()
	identity.ExpiresAt = expiresAt

	sessionToken, err := session.NewToken()
	if err != nil {
		return nil, err
	}
	sess := session.Session{
		Token:     sessionToken,
		UserID:    identity.ID,
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	return &LoginResult{
		Identity:  identity,
		Token:     token,
		ExpiresAt: expiresAt,
		Session:   sess,
	}, nil
}

// RefreshToken signs a fresh bearer token for an already-resolved
// identity. The expiry restarts from the current clock; the old token
// keeps its own expiry.
func (s *AuthService) RefreshToken(identity *auth.Identity) (string, time.Time, error) {
	return s.tokenMgr.Issue(identity)
}

// Logout deletes the server-side session record. Bearer tokens cannot
// be revoked; they lapse at expiry.
func (s *AuthService) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionToken)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
