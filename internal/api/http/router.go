package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oladimeji-kazeem/budgetpro/internal/api/http/handlers"
	"github.com/oladimeji-kazeem/budgetpro/internal/auth"
	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Requests       *handlers.RequestsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/users/register", cfg.Auth.Register)
	api.Post("/token", cfg.Auth.Login)
	api.Post("/token/refresh", cfg.Auth.Refresh)

	admin := api.Group("/users/requests",
		cfg.AuthMiddleware.Handle,
		RequireRoles(domain.RoleAppAdmin, domain.RoleSuperAdmin))
	admin.Get("/", cfg.Requests.List)
	admin.Patch("/:id", cfg.Requests.Action)
}
