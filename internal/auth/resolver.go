package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Ajeet990/myfacebook/internal/repository"
	"github.com/Ajeet990/myfacebook/internal/session"
)

// Resolver recovers an identity from a request. Two mechanisms are
// tried in strict order: an explicit Authorization bearer token always
// wins over an ambient cookie session, so API clients are never
// silently authenticated as a different browser session.
type Resolver struct {
	tokens   *TokenManager
	sessions session.Store
	users    repository.UserRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewResolver constructs the resolver.
func NewResolver(tokens *TokenManager, sessions session.Store, users repository.UserRepository, logger *zap.Logger) *Resolver {
	return &Resolver{
		tokens:   tokens,
		sessions: sessions,
		users:    users,
		logger:   logger,
		now:      time.Now,
	}
}

// Resolve returns the identity carried by the request, or nil when
// neither mechanism yields one. A failed bearer token never fails the
// request outright; the cookie session is still consulted.
func (r *Resolver) Resolve(c *fiber.Ctx) *Identity {
	if identity := r.fromBearer(c); identity != nil {
		return identity
	}
	return r.fromCookie(c)
}

func (r *Resolver) fromBearer(c *fiber.Ctx) *Identity {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}

	identity, err := r.tokens.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		r.logger.Debug("bearer token rejected", zap.Error(err))
		return nil
	}
	return identity
}

func (r *Resolver) fromCookie(c *fiber.Ctx) *Identity {
	token := c.Cookies(session.CookieName)
	if token == "" {
		return nil
	}

	sess, err := r.sessions.Get(c.Context(), token)
	if err != nil {
		// A failing or timed-out lookup is a verification failure,
		// never a crash.
		r.logger.Warn("session lookup failed", zap.Error(err))
		return nil
	}
	if sess == nil || !sess.ExpiresAt.After(r.now()) {
		r.logger.Debug("session rejected", zap.Error(ErrSessionNotFound))
		return nil
	}

	user, err := r.users.GetByID(c.Context(), sess.UserID)
	if err != nil {
		r.logger.Debug("session subject lookup failed", zap.Error(err))
		return nil
	}

	return &Identity{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		IssuedAt:  r.now(),
		ExpiresAt: sess.ExpiresAt,
	}
}
