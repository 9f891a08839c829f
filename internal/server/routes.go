package server

import (
	"time"

	"github.com/avtanos/provider-map/internal/admin"
	"github.com/avtanos/provider-map/internal/auth"
	"github.com/avtanos/provider-map/internal/category"
	"github.com/avtanos/provider-map/internal/database"
	"github.com/avtanos/provider-map/internal/message"
	"github.com/avtanos/provider-map/internal/models"
	"github.com/avtanos/provider-map/internal/provider"
	"github.com/avtanos/provider-map/internal/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS, PATCH",
	}))

	// Health check: liveness plus a DB ping
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := database.Ping(db); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "error",
				"message": "Database unavailable",
			})
		}
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Service Provider Map API is running",
		})
	})

	api := app.Group("/api")

	// ==========================================
	// PUBLIC DIRECTORY
	// ==========================================
	api.Get("/providers", provider.ListProvidersHandler)
	api.Get("/providers/:id", provider.GetProviderHandler)
	api.Post("/providers", provider.CreateProviderHandler)
	api.Put("/providers/:id", auth.JWTProtected(), provider.UpdateProviderHandler)
	api.Delete("/providers/:id", auth.JWTProtected(), provider.DeleteProviderHandler)

	api.Get("/providers/:id/messages", auth.JWTProtected(), message.ListMessagesHandler)
	api.Post("/providers/:id/messages", message.CreateMessageHandler)

	api.Get("/categories", category.ListCategoriesHandler)

	api.Post("/upload", upload.UploadHandler)

	// ==========================================
	// AUTH
	// ==========================================
	authGroup := api.Group("/auth")
	authGroup.Post("/register", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
	}), auth.RegisterHandler)
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), auth.LoginHandler)
	authGroup.Get("/me", auth.JWTProtected(), auth.MeHandler)
	authGroup.Get("/my-provider", auth.JWTProtected(), auth.MyProviderHandler)

	// ==========================================
	// ADMIN
	// ==========================================
	adminGroup := api.Group("/admin")
	adminGroup.Use(auth.JWTProtected())

	// User management (super-admin only)
	userGroup := adminGroup.Group("/users")
	userGroup.Use(auth.RoleProtected(models.RoleSuperAdmin))
	userGroup.Get("/", admin.ListUsersHandler)
	userGroup.Get("/:id", admin.GetUserHandler)
	userGroup.Put("/:id", admin.UpdateUserHandler)
	userGroup.Delete("/:id", admin.DeleteUserHandler)

	// Provider moderation (admin and above)
	adminGroup.Delete("/providers/:id",
		auth.RoleProtected(models.RoleAdmin, models.RoleSuperAdmin),
		provider.AdminDeleteProviderHandler)
	adminGroup.Put("/providers/:id/toggle-active",
		auth.RoleProtected(models.RoleAdmin, models.RoleSuperAdmin),
		provider.ToggleActiveHandler)

	// Category management
	adminGroup.Get("/categories",
		auth.RoleProtected(models.RoleAdmin, models.RoleSuperAdmin),
		category.AdminListCategoriesHandler)
	adminGroup.Post("/categories",
		auth.RoleProtected(models.RoleSuperAdmin),
		category.CreateCategoryHandler)
	adminGroup.Delete("/categories/:value",
		auth.RoleProtected(models.RoleSuperAdmin),
		category.DeleteCategoryHandler)

	adminGroup.Get("/stats",
		auth.RoleProtected(models.RoleAdmin, models.RoleSuperAdmin),
		admin.StatsHandler)
}
