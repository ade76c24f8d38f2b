package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Ajeet990/myfacebook/internal/api/dto"
	"github.com/Ajeet990/myfacebook/internal/auth"
	"github.com/Ajeet990/myfacebook/internal/service"
	"github.com/Ajeet990/myfacebook/pkg/util"
)

// AdminHandler serves the admin user list and dashboard.
type AdminHandler struct {
	service *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{service: adminService}
}

// ListUsers handles GET /admin/users and GET /api/admin/users.
// The /api variant is classified protected-user by the gate, so the
// role is re-checked here; a non-admin gets the same response as an
// unknown route.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok || !identity.IsAdmin() {
		return util.RenderNotFound(c)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	users, pagination, err := h.service.ListUsers(c.Context(), page, limit)
	if err != nil {
		return err
	}

	return util.SendResponse(c, http.StatusOK, util.Envelope{
		Success: true,
		Message: "Users fetched successfully",
		Data: fiber.Map{
			"users":      adminUsers(users),
			"pagination": pagination,
		},
	})
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok || !identity.IsAdmin() {
		return util.RenderNotFound(c)
	}

	stats, err := h.service.Dashboard(c.Context())
	if err != nil {
		return err
	}
	return util.SendResponse(c, http.StatusOK, util.Envelope{
		Success: true,
		Message: "Dashboard fetched successfully",
		Data:    stats,
	})
}

func adminUsers(users []service.UserWithPosts) []dto.AdminUser {
	out := make([]dto.AdminUser, 0, len(users))
	for _, u := range users {
		posts := make([]dto.AdminPost, 0, len(u.Posts))
		for _, p := range u.Posts {
			posts = append(posts, dto.AdminPost{ID: p.ID, Text: p.Text, ImageURL: p.ImageURL})
		}
		out = append(out, dto.AdminUser{
			ID:        u.User.ID,
			Name:      u.User.Name,
			Email:     u.User.Email,
			Phone:     u.User.Phone,
			Role:      string(u.User.Role),
			CreatedAt: u.User.CreatedAt,
			Posts:     posts,
		})
	}
	return out
}
