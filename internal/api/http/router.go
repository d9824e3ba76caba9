package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/laundry-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Users       *handlers.UsersHandler
	Orders      *handlers.OrdersHandler
	AuthLimiter *RateLimiter
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	users := app.Group("/users")
	users.Post("/register", cfg.AuthLimiter.Handle, cfg.Users.Register)
	users.Post("/login", cfg.AuthLimiter.Handle, cfg.Users.Login)
	users.Get("/:id", cfg.Users.GetByID)

	orders := app.Group("/orders")
	orders.Post("/", cfg.Orders.Create)
	orders.Get("/", cfg.Orders.List)
	orders.Get("/:id", cfg.Orders.GetByID)
	orders.Patch("/:id", cfg.Orders.Update)
	orders.Patch("/:id/status", cfg.Orders.UpdateStatus)
	orders.Delete("/:id", cfg.Orders.Delete)
}
