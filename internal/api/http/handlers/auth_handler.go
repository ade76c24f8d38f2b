package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ajeet990/myfacebook/internal/api/dto"
	"github.com/Ajeet990/myfacebook/internal/auth"
	"github.com/Ajeet990/myfacebook/internal/service"
	"github.com/Ajeet990/myfacebook/internal/session"
	"github.com/Ajeet990/myfacebook/pkg/util"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// AuthHandler exposes register/login/session/logout endpoints.
type AuthHandler struct {
	auth     *service.AuthService
	resolver *auth.Resolver
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, resolver *auth.Resolver) *AuthHandler {
	return &AuthHandler{auth: authService, resolver: resolver}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return util.NewValidationError("Name is required", nil)
	}
	if !emailPattern.MatchString(req.Email) {
		return util.NewValidationError("Invalid email", nil)
	}
	if !phonePattern.MatchString(req.Phone) {
		return util.NewValidationError("Phone must be 10 digits", nil)
	}
	if len(req.Password) < 6 {
		return util.NewValidationError("Password must be at least 6 characters", nil)
	}

	if _, err := h.auth.Register(c.Context(), req.Name, req.Email, req.Phone, req.Password); err != nil {
		return err
	}

	return util.SendResponse(c, http.StatusCreated, util.Envelope{
		Success: true,
		Message: "User registered successfully",
	})
}

// Login handles POST /api/auth/login. A successful login issues both a
// bearer token and a cookie-bound server-side session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return util.NewValidationError("email and password required", nil)
	}

	result, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrCredentialNotFound):
			return util.NewDomainError("NOT_FOUND", "User not found", http.StatusNotFound, nil)
		case errors.Is(err, auth.ErrInvalidCredential):
			return util.NewUnauthorized("Invalid credentials")
		default:
			return err
		}
	}

	setSessionCookie(c, result.Session.Token, result.ExpiresAt)

	return util.SendResponse(c, http.StatusOK, util.Envelope{
		Success: true,
		Message: "Login successful",
		Data: fiber.Map{
			"user": userResponse(result.Identity),
			"auth": dto.AuthResponse{Token: result.Token, ExpiresAt: result.ExpiresAt},
		},
	})
}

// Session handles GET /api/auth/session. The route is public, so the
// handler resolves the identity itself; a fresh bearer token is signed
// on every successful read.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	identity := h.resolver.Resolve(c)
	if identity == nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized",
		})
	}

	token, expiresAt, err := h.auth.RefreshToken(identity)
	if err != nil {
		return err
	}

	return util.SendResponse(c, http.StatusOK, util.Envelope{
		Success: true,
		Message: "Session active",
		Data: dto.SessionResponse{
			User: userResponse(identity),
			Auth: dto.AuthResponse{Token: token, ExpiresAt: expiresAt},
		},
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), c.Cookies(session.CookieName)); err != nil {
		return err
	}
	clearSessionCookie(c)

	return util.SendResponse(c, http.StatusOK, util.Envelope{
		Success: true,
		Message: "Logged out",
	})
}

func userResponse(identity *auth.Identity) dto.UserResponse {
	return dto.UserResponse{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		Role:  identity.Role,
	}
}

func setSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
