package api

import (
	"net/http" // HTTP status codes
	"time"     // Order date field

	"tapgas/internal/domain"     // Importing domain models
	"tapgas/internal/middleware" // Session identity helpers
	"tapgas/internal/utils"      // Order id generation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Optional geolocation on an order; lat and lng come together or not at all
type LocationRequest struct {
	Lat *float64 `json:"lat"` // Latitude
	Lng *float64 `json:"lng"` // Longitude
}

// Request struct for placing an order
type CreateOrderRequest struct {
	CustomerName   *string          `json:"customerName"`                // Optional name on the order
	Address        string           `json:"address" binding:"required"`  // Delivery address
	Location       *LocationRequest `json:"location"`                    // Optional geolocation
	CylinderType   string           `json:"cylinderType" binding:"required"` // Cylinder size/type
	Filled         *bool            `json:"filled"`                      // Whether the cylinder arrives filled
	UniqueCode     *string          `json:"uniqueCode"`                  // Customer-supplied tracking code
	Status         string           `json:"status"`                      // Defaults to pending
	Date           *time.Time       `json:"date"`                        // Requested delivery date
	AmountPaid     *float64         `json:"amountPaid"`                  // Amount paid so far
	Notes          *string          `json:"notes"`                       // Free-form notes
	Payment        string           `json:"payment" binding:"required"`  // Payment method
	ServiceType    *string          `json:"serviceType"`                 // e.g. refill, swap
	TimeSlot       *string          `json:"timeSlot"`                    // Preferred time slot
	DeliveryWindow *string          `json:"deliveryWindow"`              // Promised delivery window
}

// Request struct for the public order lookup
type CheckOrderRequest struct {
	Email      string `json:"email" binding:"required"`      // Owning email
	UniqueCode string `json:"uniqueCode" binding:"required"` // Tracking code
}

// CreateOrderHandler persists a new order owned by the session user
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Address, cylinder type and payment are mandatory
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required order details"})
			return
		}
		// Geolocation is both-or-neither
		if req.Location != nil && (req.Location.Lat == nil) != (req.Location.Lng == nil) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Location requires both lat and lng"})
			return
		}
		orderID, err := utils.NewOrderID() // Short tracking id, independent of the primary key
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
		status := req.Status // Free-form status, pending by default
		if status == "" {
			status = domain.StatusPending
		}
		order := domain.Order{
			OrderID:        orderID,                      // Generated tracking id
			Email:          middleware.SessionEmail(c),   // Owner is the session user
			CustomerName:   req.CustomerName,             // Optional name
			Address:        req.Address,                  // Delivery address
			CylinderType:   req.CylinderType,             // Cylinder type
			Filled:         req.Filled,                   // Filled flag
			UniqueCode:     req.UniqueCode,               // Tracking code
			Status:         status,                       // Initial status
			Date:           req.Date,                     // Requested date
			AmountPaid:     req.AmountPaid,               // Amount paid
			Notes:          req.Notes,                    // Notes
			PaymentMethod:  req.Payment,                  // Payment method
			ServiceType:    req.ServiceType,              // Service type
			TimeSlot:       req.TimeSlot,                 // Time slot
			DeliveryWindow: req.DeliveryWindow,           // Delivery window
		}
		if req.Location != nil {
			order.LocationLat = req.Location.Lat // Latitude
			order.LocationLng = req.Location.Lng // Longitude
		}
		// Persist the order
		if err := db.Create(&order).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"email": order.Email, // Owning customer
				"error": err.Error(), // Error message
			}).Error("Failed to place order")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
		// Log the placement
		logrus.WithFields(logrus.Fields{
			"email":    order.Email,   // Owning customer
			"order_id": order.OrderID, // Generated tracking id
		}).Info("Order placed")
		// Return the full stored record, generated id included
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// CheckOrderHandler is the public order lookup by email plus tracking code.
// Deliberately unauthenticated: the customer-supplied code is the bearer secret.
func CheckOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckOrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Both parameters are required
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and uniqueCode required"})
			return
		}
		var order domain.Order // Most recent match wins
		err := db.Where("email = ? AND unique_code = ?", req.Email, req.UniqueCode).
			Order("date DESC").
			First(&order).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Queried email
				"error": err.Error(), // Error message
			}).Error("Failed to check order")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}
