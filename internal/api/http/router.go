package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/medequip-service/internal/api/http/handlers"
	"github.com/spec-kit/medequip-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Prefix         string
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Equipment      *handlers.EquipmentHandler
	Tickets        *handlers.TicketsHandler
	Maintenance    *handlers.MaintenanceHandler
	Stats          *handlers.StatsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
		app.Get("/health/metrics", cfg.Health.Metrics)
	}

	api := app.Group(cfg.Prefix)
	api.Post("/register", cfg.Users.Register)
	api.Post("/login", cfg.Users.Login)

	// Registered after the public routes so they never reach the auth middleware.
	protected := api.Group("", cfg.AuthMiddleware.Handle, auth.Authenticated())
	protected.Get("/me", cfg.Users.Me)

	protected.Post("/equipment", cfg.Equipment.Create)
	protected.Get("/equipment", cfg.Equipment.List)
	protected.Get("/equipment/:id", cfg.Equipment.Get)
	protected.Put("/equipment/:id", cfg.Equipment.Update)
	protected.Delete("/equipment/:id", auth.AdminOnly(), cfg.Equipment.Delete)

	protected.Post("/tickets", cfg.Tickets.Create)
	protected.Get("/tickets", cfg.Tickets.List)
	protected.Get("/tickets/:id", cfg.Tickets.Get)
	protected.Put("/tickets/:id", cfg.Tickets.Update)

	protected.Post("/maintenance", cfg.Maintenance.Create)
	protected.Get("/maintenance/equipment/:id", cfg.Maintenance.ListByEquipment)

	protected.Get("/stats", auth.AdminOnly(), cfg.Stats.Dashboard)
}

// NewApp builds a fiber application with the global middleware chain and all routes.
func NewApp(appName string, mw MiddlewareConfig, routes RouteConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, mw)
	RegisterRoutes(app, routes)
	return app
}
