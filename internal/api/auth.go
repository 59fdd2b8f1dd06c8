package api

import (
	"net/http" // HTTP status codes
	"strings"  // SameSite value normalization
	"time"     // Code expiry

	"tapgas/internal/config"     // Application configuration
	"tapgas/internal/domain"     // Importing domain models
	"tapgas/internal/middleware" // Session cookie name
	"tapgas/internal/notify"     // Out-of-band code delivery
	"tapgas/internal/session"    // Session store
	"tapgas/internal/utils"      // Code generation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Code hashing
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // Upsert / insert-or-ignore clauses
)

// Login codes are valid for ten minutes from issuance
const loginCodeTTL = 10 * time.Minute

// Request struct for requesting a login code
type SendCodeRequest struct {
	Email string `json:"email" binding:"required"` // Email must be provided
}

// Request struct for verifying a login code
type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required"` // Email must be provided
	Code  string `json:"code" binding:"required"`  // Code must be provided
}

// SendCodeHandler issues a one-time 6-digit login code for an email address.
// Re-requesting replaces any outstanding code: at most one live code per email.
func SendCodeHandler(db *gorm.DB, notifier notify.Notifier, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendCodeRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email required"})
			return
		}
		code, err := utils.GenerateLoginCode() // Uniformly random 6-digit code
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate code"})
			return
		}
		// Codes are credentials: only the hash is stored
		hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate code"})
			return
		}
		lc := domain.LoginCode{
			Email:     req.Email,                    // Keyed by email
			CodeHash:  string(hash),                 // Hashed code
			ExpiresAt: time.Now().Add(loginCodeTTL), // 10 minute expiry
		}
		// Upsert: a new request replaces the previous code for this email
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"code_hash", "expires_at", "updated_at"}),
		}).Create(&lc).Error
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Requesting email
				"error": err.Error(), // Error message
			}).Error("Failed to store login code")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send code"})
			return
		}
		// Deliver the code out-of-band
		if err := notifier.SendLoginCode(c.Request.Context(), req.Email, code); err != nil {
			logrus.WithFields(logrus.Fields{
				"email": req.Email,
				"error": err.Error(),
			}).Error("Failed to deliver login code")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send code"})
			return
		}
		// Outside production the code is echoed for frontend development
		if !cfg.IsProd {
			c.JSON(http.StatusOK, gin.H{"success": true, "code": code})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// VerifyCodeHandler checks a submitted code, materializes the user on first
// login and establishes the session
func VerifyCodeHandler(db *gorm.DB, sessions session.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyCodeRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and code required"})
			return
		}
		var lc domain.LoginCode // Fetch the outstanding code for this email
		if err := db.Where("email = ?", req.Email).First(&lc).Error; err != nil {
			// No code on file for this email
			c.JSON(http.StatusNotFound, gin.H{"error": "No code found"})
			return
		}
		// Wrong code and expired code are reported identically to the caller
		if bcrypt.CompareHashAndPassword([]byte(lc.CodeHash), []byte(req.Code)) != nil || lc.Expired(time.Now()) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired code"})
			return
		}
		// Materialize the user, load the authoritative role and consume the
		// code in a single transaction
		role := domain.RoleCustomer
		err := db.Transaction(func(tx *gorm.DB) error {
			// Insert-or-ignore keyed by email: verifying twice never creates two rows
			user := domain.User{Email: req.Email}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoNothing: true,
			}).Create(&user).Error; err != nil {
				return err // Return error to rollback
			}
			// Always fetch the stored role after insert; fall back to customer
			// if the row is somehow absent
			var stored domain.User
			if err := tx.Where("email = ?", req.Email).First(&stored).Error; err == nil {
				role = stored.Role
			}
			// Codes are single-use: consume the row with the session grant
			return tx.Delete(&domain.LoginCode{}, "email = ?", req.Email).Error
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Verifying email
				"error": err.Error(), // Error message
			}).Error("Code verification failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify code"})
			return
		}
		// Establish the session and hand the opaque token to the browser
		token, err := sessions.Create(c.Request.Context(), session.Data{Email: req.Email, Role: role})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email": req.Email,
				"error": err.Error(),
			}).Error("Failed to create session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify code"})
			return
		}
		setSessionCookie(c, cfg, token)
		// Log successful login
		logrus.WithFields(logrus.Fields{
			"email": req.Email,    // Authenticated email
			"role":  string(role), // Resolved role
		}).Info("Login verified")
		c.JSON(http.StatusOK, gin.H{"success": true, "user": gin.H{"email": req.Email, "role": role}})
	}
}

// setSessionCookie attaches the session token with the configured cookie flags
func setSessionCookie(c *gin.Context, cfg *config.Config, token string) {
	// SameSite must be set before the cookie itself
	switch strings.ToLower(cfg.CookieSameSite) {
	case "strict":
		c.SetSameSite(http.SameSiteStrictMode)
	case "lax":
		c.SetSameSite(http.SameSiteLaxMode)
	default:
		c.SetSameSite(http.SameSiteNoneMode) // Cross-site frontend default
	}
	maxAge := cfg.SessionTTLDays * 24 * 60 * 60 // Cookie max age in seconds
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", cfg.CookieSecure, true)
}
