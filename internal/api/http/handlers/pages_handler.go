package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Ajeet990/myfacebook/internal/auth"
	"github.com/Ajeet990/myfacebook/internal/service"
	"github.com/Ajeet990/myfacebook/pkg/util"
)

// PagesHandler serves the public entry points and the profile page.
type PagesHandler struct {
	posts *service.PostService
}

// NewPagesHandler constructs handler.
func NewPagesHandler(postService *service.PostService) *PagesHandler {
	return &PagesHandler{posts: postService}
}

// Home handles GET /.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	return util.SendResponse(c, http.StatusOK, util.Envelope{
		Success: true,
		Message: "Welcome",
	})
}

// SignIn handles GET /login, the redirect target for unauthenticated
// browser requests.
func (h *PagesHandler) SignIn(c *fiber.Ctx) error {
	return util.SendResponse(c, http.StatusOK, util.Envelope{
		Success: true,
		Message: "Sign in",
	})
}

// Profile handles GET /profile/me.
func (h *PagesHandler) Profile(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return util.NewUnauthorized("Unauthorized")
	}

	views, err := h.posts.ListUserPosts(c.Context(), identity.ID)
	if err != nil {
		return err
	}
	return util.SendResponse(c, http.StatusOK, util.Envelope{
		Success: true,
		Message: "Profile fetched successfully",
		Data: fiber.Map{
			"user": fiber.Map{
				"id":    identity.ID,
				"name":  identity.Name,
				"email": identity.Email,
				"role":  identity.Role,
			},
			"postCount": len(views),
		},
	})
}
