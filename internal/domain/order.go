package domain

import "time"

// Default order status at creation
const StatusPending = "pending"

// Order Model
type Order struct {
	ID             uint       `gorm:"primaryKey" json:"id"`                    // Primary key (storage only)
	OrderID        string     `gorm:"uniqueIndex;size:16" json:"order_id"`     // Short tracking identifier, generated at creation
	Email          string     `gorm:"index;size:255;not null" json:"email"`    // Owning customer
	CustomerName   *string    `json:"customer_name"`                           // Optional name on the order
	Address        string     `gorm:"not null" json:"address"`                 // Delivery address
	LocationLat    *float64   `json:"location_lat"`                            // Optional geolocation, both-or-neither with lng
	LocationLng    *float64   `json:"location_lng"`                            // Optional geolocation
	CylinderType   string     `gorm:"not null" json:"cylinder_type"`           // Cylinder size/type
	Filled         *bool      `json:"filled"`                                  // Whether the cylinder arrives filled
	UniqueCode     *string    `gorm:"index;size:64" json:"unique_code"`        // Customer-supplied tracking code
	Status         string     `gorm:"size:64;default:pending" json:"status"`   // Free-form status, pending by default
	Date           *time.Time `gorm:"index" json:"date"`                       // Requested delivery date, listing sort key
	AmountPaid     *float64   `json:"amount_paid"`                             // Amount paid so far
	Notes          *string    `json:"notes"`                                   // Free-form customer notes
	PaymentMethod  string     `gorm:"not null" json:"payment_method"`          // Required at creation
	ServiceType    *string    `json:"service_type"`                            // e.g. refill, swap
	TimeSlot       *string    `json:"time_slot"`                               // Preferred time slot
	DeliveryWindow *string    `json:"delivery_window"`                         // Promised delivery window
	DriverEmail    *string    `gorm:"index;size:255" json:"driver_email"`      // Assigned driver, nil until clustered
	FailedNote     *string    `json:"failed_note"`                             // Driver note on failed delivery
	CreatedAt      time.Time  `json:"created_at"`                              // Timestamp of creation
	UpdatedAt      time.Time  `json:"updated_at"`                              // Timestamp of last update
}
