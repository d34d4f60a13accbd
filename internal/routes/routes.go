package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/habibieebhy/fieldforce-backend/internal/collections"
	"github.com/habibieebhy/fieldforce-backend/internal/config"
	"github.com/habibieebhy/fieldforce-backend/internal/handlers"
	"github.com/habibieebhy/fieldforce-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	db *gorm.DB,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	collectionHandler *handlers.CollectionHandler,
	dealerHandler *handlers.DealerHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Collection routes (JWT required); bulk deletes are admin-only.
	protected := api.Group("", middleware.JWTProtected(cfg))
	admin := middleware.AdminRequired(db, cfg)

	// Dealer write paths go through the geofence consistency protocol.
	// The predicate routes must be registered before /dealers/:id.
	protected.Post("/dealers", dealerHandler.Create)
	protected.Patch("/dealers/:id", dealerHandler.Update)
	protected.Delete("/dealers/user/:userId", admin, dealerHandler.DeleteByUser)
	protected.Delete("/dealers/parent/:parentId", admin, dealerHandler.DeleteByParent)
	protected.Delete("/dealers/:id", dealerHandler.Delete)
	protected.Delete("/dealers", admin, dealerHandler.BulkDelete)

	for _, d := range collections.All {
		protected.Get("/"+d.Name, collectionHandler.List(d))
		protected.Get("/"+d.Name+"/:id", collectionHandler.Get(d))

		if d.Name == collections.DealersName {
			continue
		}
		protected.Post("/"+d.Name, collectionHandler.Create(d))
		protected.Patch("/"+d.Name+"/:id", collectionHandler.Patch(d))
		protected.Delete("/"+d.Name+"/:id", collectionHandler.Delete(d))
		protected.Delete("/"+d.Name, admin, collectionHandler.BulkDelete(d))
	}
}
