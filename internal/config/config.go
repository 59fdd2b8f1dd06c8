package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort        string // Application port
	DBUser         string // Database user
	DBPassword     string // Database password
	DBHost         string // Database host
	DBPort         string // Database port
	DBName         string // Database name
	RedisAddr      string // Redis server address; empty falls back to in-memory sessions
	RedisPass      string // Redis password
	RedisDB        int    // Redis database number
	SessionTTLDays int    // Session cookie max age in days
	CookieSecure   bool   // Secure attribute on the session cookie
	CookieSameSite string // SameSite attribute: none, lax or strict
	CORSOrigin     string // Allowed cross-origin source for the frontend
	IsProd         bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	// Session cookie lives for two months unless overridden
	ttlDays, err := strconv.Atoi(os.Getenv("SESSION_TTL_DAYS"))
	if err != nil || ttlDays <= 0 {
		ttlDays = 60
	}
	return &Config{
		AppPort:        getEnv("APP_PORT", "4000"),                    // Application port
		DBUser:         os.Getenv("DB_USER"),                          // Database user
		DBPassword:     os.Getenv("DB_PASSWORD"),                      // Database password
		DBHost:         os.Getenv("DB_HOST"),                          // Database host
		DBPort:         os.Getenv("DB_PORT"),                          // Database port
		DBName:         os.Getenv("DB_NAME"),                          // Database name
		RedisAddr:      os.Getenv("REDIS_ADDR"),                       // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),                       // Redis password
		RedisDB:        redisDB,                                       // Redis database number
		SessionTTLDays: ttlDays,                                       // Session max age
		CookieSecure:   os.Getenv("SESSION_COOKIE_SECURE") == "true",  // Secure flag, true behind HTTPS
		CookieSameSite: getEnv("SESSION_COOKIE_SAMESITE", "none"),     // Cross-site frontend needs none
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:5173"), // Frontend origin
		IsProd:         os.Getenv("IS_PROD") == "true",                // Is production environment
	}
}

// DSN builds the MySQL Data Source Name from the database settings
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getEnv reads an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
