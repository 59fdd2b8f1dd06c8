package api

import (
	"net/http" // HTTP status codes

	dbutil "tapgas/internal/db" // Constraint-violation detection
	"tapgas/internal/domain"    // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for assigning a cluster of orders to a driver
type AssignClusterRequest struct {
	DriverEmail string   `json:"driver_email" binding:"required"`       // Target driver
	OrderIDs    []string `json:"order_ids" binding:"required,min=1"`    // Orders in the cluster
}

// ListOrdersHandler returns every order, newest first, plus the emails of all
// drivers so the admin frontend can populate assignment pickers
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []domain.Order // All orders in the system
		if err := db.Order("date DESC").Find(&orders).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"error": err.Error(), // Error message
			}).Error("Failed to fetch all orders")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders or drivers"})
			return
		}
		var drivers []string // Emails of everyone with the driver role
		if err := db.Model(&domain.User{}).Where("role = ?", domain.RoleDriver).Pluck("email", &drivers).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"error": err.Error(), // Error message
			}).Error("Failed to fetch drivers")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders or drivers"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders, "drivers": drivers})
	}
}

// AssignClusterHandler records a cluster assignment and re-points every matching
// order at the driver, in one transaction so a conflict leaves no partial state.
// Order ids that match no order are left alone; the assignment record still lands.
func AssignClusterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AssignClusterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Driver email and a non-empty id list are required
			c.JSON(http.StatusBadRequest, gin.H{"error": "driver_email and order_ids[] required"})
			return
		}
		// Atomic pair: insert the assignment record, then update the orders
		err := db.Transaction(func(tx *gorm.DB) error {
			assignment := domain.ClusterAssignment{
				DriverEmail: req.DriverEmail,                        // Assigned driver
				OrderIDs:    domain.CanonicalOrderSet(req.OrderIDs), // Canonical order-set
			}
			// The composite unique index rejects a repeated (driver, order-set) pair
			if err := tx.Create(&assignment).Error; err != nil {
				return err // Return error to rollback
			}
			// Propagate driver ownership onto every matching order
			return tx.Model(&domain.Order{}).
				Where("order_id IN ?", req.OrderIDs).
				Update("driver_email", req.DriverEmail).Error
		})
		if err != nil {
			// Unique violation gets its own message
			if dbutil.IsDuplicateKey(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "This cluster is already assigned to this driver."})
				return
			}
			logrus.WithFields(logrus.Fields{
				"driver_email": req.DriverEmail,    // Target driver
				"order_count":  len(req.OrderIDs),  // Size of the cluster
				"error":        err.Error(),        // Error message
			}).Error("Failed to assign cluster")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign cluster"})
			return
		}
		// Log the assignment
		logrus.WithFields(logrus.Fields{
			"driver_email": req.DriverEmail,   // Target driver
			"order_count":  len(req.OrderIDs), // Size of the cluster
		}).Info("Cluster assigned")
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
