package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/vitartas/leadtrack/internal/config"
	"github.com/vitartas/leadtrack/internal/handlers"
	"github.com/vitartas/leadtrack/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	storeHandler *handlers.StoreHandler,
	storefrontHandler *handlers.StorefrontHandler,
	vehicleHandler *handlers.VehicleHandler,
	leadHandler *handlers.LeadHandler,
	teamHandler *handlers.TeamHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Public storefront: store page and lead capture, keyed by slug
	api.Get("/storefront/:slug", storefrontHandler.Get)
	api.Post("/storefront/:slug/leads", storefrontHandler.CreateLead)

	// Self-service store signup (public)
	api.Post("/signup", storeHandler.Register)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required) - apply middleware to individual routes
	// This prevents JWT middleware from affecting public routes
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Store-scoped routes (any authenticated role)
	protected := api.Group("", middleware.JWTProtected(cfg))
	protected.Get("/dashboard", dashboardHandler.Stats)

	protected.Get("/vehicles", vehicleHandler.List)
	protected.Post("/vehicles", vehicleHandler.Create)
	protected.Put("/vehicles/:id", vehicleHandler.Update)
	protected.Delete("/vehicles/:id", vehicleHandler.Delete)

	protected.Get("/leads", leadHandler.List)
	protected.Post("/leads", leadHandler.Create)
	protected.Patch("/leads/:id/status", leadHandler.UpdateStatus)

	// Owner-only routes (OWNER or SUPER_ADMIN)
	owner := api.Group("", middleware.JWTProtected(cfg), middleware.OwnerRequired())
	owner.Get("/team", teamHandler.List)
	owner.Post("/team", teamHandler.CreateSeller)
	owner.Get("/store", storeHandler.GetOwn)
	owner.Put("/store", storeHandler.UpdateSettings)

	// Platform admin panel (SUPER_ADMIN only)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.SuperAdminRequired())
	admin.Get("/stores", storeHandler.List)
	admin.Post("/stores", storeHandler.Create)
	admin.Put("/stores/:id", storeHandler.Update)
	admin.Delete("/stores/:id", storeHandler.Delete)
	admin.Patch("/stores/:id/subscription", storeHandler.ToggleSubscription)
	admin.Get("/leads", leadHandler.ListAll)
	admin.Put("/users/:id", teamHandler.UpdateUser)
}
