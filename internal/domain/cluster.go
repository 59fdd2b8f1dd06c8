package domain

import (
	"sort"    // Canonical ordering of the order-id set
	"strings" // Joining/splitting the stored set
	"time"    // Timestamps
)

// ClusterAssignment Model — immutable record of a batch of orders handed to a driver.
// The (driver, order-set) pair is unique: repeating the same assignment violates
// the composite index and is reported as a conflict.
type ClusterAssignment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`                                           // Primary key
	DriverEmail string    `gorm:"size:255;not null;uniqueIndex:idx_driver_cluster" json:"driver_email"` // Assigned driver
	OrderIDs    string    `gorm:"size:1024;not null;uniqueIndex:idx_driver_cluster" json:"order_ids"`   // Canonical order-id set
	CreatedAt   time.Time `json:"created_at"`                                                     // Timestamp of assignment
}

// CanonicalOrderSet sorts and joins order ids so that equal sets always
// serialize identically, regardless of the order the client sent them in.
func CanonicalOrderSet(orderIDs []string) string {
	ids := make([]string, len(orderIDs))
	copy(ids, orderIDs)
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

// OrderIDList splits the stored canonical set back into individual ids
func (ca *ClusterAssignment) OrderIDList() []string {
	if ca.OrderIDs == "" {
		return nil
	}
	return strings.Split(ca.OrderIDs, ",")
}
