package api

import (
	"net/http" // HTTP status codes

	"tapgas/internal/config"     // Application configuration
	"tapgas/internal/domain"     // Role constants
	"tapgas/internal/middleware" // Session resolution and guards
	"tapgas/internal/notify"     // Code delivery
	"tapgas/internal/session"    // Session store

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// NewRouter assembles the full endpoint surface with its guards
func NewRouter(db *gorm.DB, sessions session.Store, notifier notify.Notifier, cfg *config.Config) *gin.Engine {
	r := gin.Default() // Gin router instance with logger and recovery

	r.Use(middleware.CORS(cfg.CORSOrigin))        // Frontend origin with credentials
	r.Use(middleware.ResolveSession(sessions))    // Resolve the session cookie on every request

	// Auth routes (public)
	auth := r.Group("/auth")
	auth.POST("/send-code", SendCodeHandler(db, notifier, cfg))       // Issue a one-time code
	auth.POST("/verify-code", VerifyCodeHandler(db, sessions, cfg))   // Verify and establish session

	// Customer routes
	r.POST("/order", middleware.AuthRequired(), CreateOrderHandler(db))     // Place an order (any role)
	r.POST("/order/check", CheckOrderHandler(db))                           // Public lookup by tracking code
	r.POST("/profile", middleware.AuthRequired(), UpdateProfileHandler(db)) // Update own profile (any role)

	// Driver routes (role driver only; no session at all is also forbidden)
	driver := r.Group("/driver", middleware.RoleRequired(domain.RoleDriver))
	driver.GET("/orders", DriverOrdersHandler(db))         // Orders assigned to this driver
	driver.POST("/update-orders", UpdateOrdersHandler(db)) // Batch status update

	// Admin routes
	r.GET("/orders", middleware.RoleRequired(domain.RoleAdmin), ListOrdersHandler(db))                // All orders plus drivers
	r.POST("/assign-cluster", middleware.RoleRequired(domain.RoleAdmin), AssignClusterHandler(db))    // Hand a cluster to a driver

	// Catch-all: anything outside the recognized surface is a JSON 404
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}
