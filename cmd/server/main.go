package main

import (
	"context" // context package is needed for the Redis ping
	"log"     // log package is needed for logging
	"time"    // Session TTL

	"tapgas/internal/api"     // Custom package for API handlers and router
	"tapgas/internal/config"  // Custom package for configuration
	"tapgas/internal/db"      // Custom package for schema migration
	"tapgas/internal/notify"  // Custom package for login-code delivery
	"tapgas/internal/session" // Custom package for session storage

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database; TranslateError surfaces unique violations as
	// gorm.ErrDuplicatedKey across drivers
	gdb, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	// Keep the schema current on startup
	if err := db.AutoMigrate(gdb); err != nil {
		logrus.Fatalf("failed to migrate DB: %v", err)
	}

	// Sessions outlive restarts via Redis; the in-memory store is a
	// development fallback when no Redis address is configured
	ttl := time.Duration(cfg.SessionTTLDays) * 24 * time.Hour
	var sessions session.Store
	if cfg.RedisAddr != "" {
		// Setup Redis client
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		sessions = session.NewRedisStore(rdb, ttl)
	} else {
		logrus.Warn("REDIS_ADDR not set, using in-memory sessions (development only)")
		sessions = session.NewMemoryStore(ttl)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Assemble the router with all endpoint groups and guards
	r := api.NewRouter(gdb, sessions, notify.LogNotifier{}, cfg)

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
