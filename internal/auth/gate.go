package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Ajeet990/myfacebook/pkg/util"
)

const identityKey = "auth_identity"

// IdentityHeader carries the JSON-encoded claim set to downstream
// handlers.
const IdentityHeader = "x-user"

// SignInPath is where unauthenticated browser requests are sent.
const SignInPath = "/login"

// Decision is the terminal state of the gate for one request.
type Decision int

const (
	DecisionAdmit Decision = iota
	DecisionUnauthorized
	DecisionRedirect
	DecisionNotFound
)

// Decide runs the classification/identity decision machine. It is pure:
// given a route class, whether the path is API-styled, and the resolved
// identity (nil when unauthenticated), it returns the terminal decision.
func Decide(class Class, apiPath bool, identity *Identity) Decision {
	if class == ClassPublic {
		return DecisionAdmit
	}
	if identity == nil {
		if apiPath {
			return DecisionUnauthorized
		}
		return DecisionRedirect
	}
	if class == ClassProtectedAdmin && !identity.IsAdmin() {
		// Indistinguishable from an unknown route.
		return DecisionNotFound
	}
	return DecisionAdmit
}

// Gate is the middleware every request passes through before any
// handler runs. It never mutates persisted state: its only effects are
// classifying, annotating, or short-circuiting the request.
type Gate struct {
	classifier *Classifier
	resolver   *Resolver
	logger     *zap.Logger
}

// NewGate constructs the gate.
func NewGate(classifier *Classifier, resolver *Resolver, logger *zap.Logger) *Gate {
	return &Gate{classifier: classifier, resolver: resolver, logger: logger}
}

// Handle enforces the route classification table.
func (g *Gate) Handle(c *fiber.Ctx) error {
	// Clients must not be able to smuggle an identity past the gate.
	c.Request().Header.Del(IdentityHeader)

	path := c.Path()
	class := g.classifier.Classify(path)
	if class == ClassPublic {
		return c.Next()
	}

	identity := g.resolver.Resolve(c)

	switch Decide(class, IsAPIPath(path), identity) {
	case DecisionAdmit:
		attachIdentity(c, identity)
		return c.Next()
	case DecisionUnauthorized:
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized",
		})
	case DecisionRedirect:
		return c.Redirect(SignInPath, fiber.StatusFound)
	default:
		g.logger.Debug("admin route rejected",
			zap.String("path", path),
			zap.Int64("user_id", identity.ID),
			zap.Error(ErrInsufficientRole))
		return util.RenderNotFound(c)
	}
}

func attachIdentity(c *fiber.Ctx, identity *Identity) {
	if identity == nil {
		return
	}
	c.Locals(identityKey, identity)
	if encoded, err := json.Marshal(identity); err == nil {
		c.Request().Header.Set(IdentityHeader, string(encoded))
	}
}

// IdentityFromContext retrieves the identity the gate attached.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
