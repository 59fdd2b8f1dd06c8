package middleware

import (
	"net/http"               // HTTP status codes
	"tapgas/internal/domain"  // Role type
	"tapgas/internal/session" // Session store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SessionCookie is the name of the session cookie
const SessionCookie = "tapgas_session"

// Context keys for the resolved identity
const (
	ctxEmail = "sessionEmail"
	ctxRole  = "sessionRole"
)

// ResolveSession looks the session cookie up in the store on every request and,
// when it resolves, stashes the identity in the gin context. A missing or
// expired token is not an error here; the guards below decide that.
func ResolveSession(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie) // Read the opaque token
		if err == nil && token != "" {
			data, err := sessions.Get(c.Request.Context(), token) // Resolve server-side
			if err != nil {
				// Store failure: log and treat the request as unauthenticated
				logrus.WithFields(logrus.Fields{
					"error": err.Error(),
				}).Error("Session lookup failed")
			} else if data != nil {
				c.Set(ctxEmail, data.Email) // Authenticated email
				c.Set(ctxRole, data.Role)   // Authenticated role
			}
		}
		c.Next() // Proceed to the next handler
	}
}

// AuthRequired rejects requests without a resolved session
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ctxEmail); !ok {
			// No session: abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}
		c.Next()
	}
}

// RoleRequired enforces that the session role matches the required role
func RoleRequired(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(ctxRole) // Get role from context
		// Absent or mismatched role is forbidden
		if !ok || val.(domain.Role) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: " + string(role) + "s only"})
			return
		}
		c.Next()
	}
}

// SessionEmail extracts the authenticated email from context
func SessionEmail(c *gin.Context) string {
	val, _ := c.Get(ctxEmail)
	email, _ := val.(string)
	return email
}

// SessionRole extracts the authenticated role from context
func SessionRole(c *gin.Context) domain.Role {
	val, _ := c.Get(ctxRole)
	role, _ := val.(domain.Role)
	return role
}
