package api

import (
	"net/http" // HTTP status codes

	"tapgas/internal/domain"     // Importing domain models
	"tapgas/internal/middleware" // Session identity helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// One item of a driver batch update
type OrderUpdate struct {
	OrderID    string  `json:"orderId"`    // Tracking id of the order to update
	Status     string  `json:"status"`     // New status
	FailedNote *string `json:"failedNote"` // Optional note on a failed delivery
}

// Request struct for the driver batch update
type UpdateOrdersRequest struct {
	Updates []OrderUpdate `json:"updates" binding:"required"` // Batch of status updates
}

// DriverOrdersHandler lists the orders assigned to the session driver, newest first
func DriverOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []domain.Order // Orders assigned to this driver
		err := db.Where("driver_email = ?", middleware.SessionEmail(c)).
			Order("date DESC").
			Find(&orders).Error
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"driver": middleware.SessionEmail(c), // Requesting driver
				"error":  err.Error(),                // Error message
			}).Error("Failed to fetch driver orders")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch driver orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// UpdateOrdersHandler applies a batch of status updates for the session driver.
// Ownership is enforced by the update predicate: an item whose order belongs to
// another driver simply matches no row. Items missing a required field are
// skipped silently; partial progress is not reported.
func UpdateOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrdersRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Updates) == 0 {
			// If binding fails or the batch is empty, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "No updates provided"})
			return
		}
		driverEmail := middleware.SessionEmail(c) // Session driver
		for _, update := range req.Updates {
			// Skip items missing either required field
			if update.OrderID == "" || update.Status == "" {
				continue
			}
			// Both the tracking id and the driver must match for the update to land
			err := db.Model(&domain.Order{}).
				Where("order_id = ? AND driver_email = ?", update.OrderID, driverEmail).
				Updates(map[string]any{
					"status":      update.Status,     // New status
					"failed_note": update.FailedNote, // Cleared when absent
				}).Error
			if err != nil {
				// A persistence error aborts the batch
				logrus.WithFields(logrus.Fields{
					"driver":   driverEmail,    // Updating driver
					"order_id": update.OrderID, // Order being updated
					"error":    err.Error(),    // Error message
				}).Error("Failed to update driver orders")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update orders"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
