package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ajeet990/myfacebook/internal/api/http/handlers"
	"github.com/Ajeet990/myfacebook/internal/auth"
	"github.com/Ajeet990/myfacebook/internal/config"
	"github.com/Ajeet990/myfacebook/pkg/util"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	Posts  *handlers.PostsHandler
	Admin  *handlers.AdminHandler
	Chat   *handlers.ChatHandler
	Pages  *handlers.PagesHandler
	Gate   *auth.Gate
	Upload config.UploadConfig
}

// RegisterRoutes wires HTTP routes. The gate runs ahead of every route;
// public prefixes pass through it untouched.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Gate.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", cfg.Pages.Home)
	app.Get(auth.SignInPath, cfg.Pages.SignIn)
	app.Static(cfg.Upload.PublicPrefix, cfg.Upload.Dir)

	api := app.Group("/api")
	api.Post("/register", cfg.Auth.Register)
	api.Post("/auth/login", cfg.Auth.Login)
	api.Get("/auth/session", cfg.Auth.Session)
	api.Post("/auth/logout", cfg.Auth.Logout)

	api.Get("/get-all-post", cfg.Posts.Feed)
	api.Get("/posts/all", cfg.Posts.Feed)
	api.Get("/posts", cfg.Posts.ListMine)
	api.Post("/posts", cfg.Posts.Create)
	api.Post("/posts/like", cfg.Posts.ToggleLike)
	api.Get("/posts/:postId/comment", cfg.Posts.ListComments)
	api.Post("/posts/:postId/comment", cfg.Posts.AddComment)

	api.Get("/admin/users", cfg.Admin.ListUsers)
	api.Post("/gemini", cfg.Chat.Chat)

	admin := app.Group("/admin")
	admin.Get("/dashboard", cfg.Admin.Dashboard)
	admin.Get("/users", cfg.Admin.ListUsers)

	app.Get("/profile/me", cfg.Pages.Profile)

	// Unknown routes share the renderer the gate uses for role-based
	// rejections.
	app.Use(util.RenderNotFound)
}
