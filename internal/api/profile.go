package api

import (
	"net/http" // HTTP status codes

	"tapgas/internal/domain"     // Importing domain models
	"tapgas/internal/middleware" // Session identity helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for updating the profile
type UpdateProfileRequest struct {
	Name        string `json:"name" binding:"required"`         // Display name
	PhoneNumber string `json:"phone_number" binding:"required"` // Contact number
}

// UpdateProfileHandler sets name and phone number on the session user
func UpdateProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProfileRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Both fields are required
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone number required"})
			return
		}
		email := middleware.SessionEmail(c) // Session user is the only mutable target
		err := db.Model(&domain.User{}).
			Where("email = ?", email).
			Updates(map[string]any{
				"name":         req.Name,        // New display name
				"phone_number": req.PhoneNumber, // New contact number
			}).Error
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email": email,       // Target user
				"error": err.Error(), // Error message
			}).Error("Failed to update profile")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
