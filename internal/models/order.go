package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. Orders start Pending and are only ever moved between these
// states by an admin; they are never deleted.
const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// ValidOrderStatus reports whether status is an allowed order state.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	BaseModel
	UserID          *uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	User            *User       `json:"user,omitempty"`
	Status          string      `gorm:"index" json:"status"`
	PlacedAt        time.Time   `json:"placed_at"`
	Subtotal        float64     `json:"subtotal"`
	TotalPrice      float64     `json:"total_price"`
	CouponCode      string      `json:"coupon_code"`
	ShippingName    string      `json:"shipping_name"`
	ShippingPhone   string      `json:"shipping_phone"`
	ShippingAddress string      `json:"shipping_address"`
	ShippingCity    string      `json:"shipping_city"`
	ShippingState   string      `json:"shipping_state"`
	ShippingZip     string      `json:"shipping_zip"`
	Items           []OrderItem `json:"items,omitempty"`
}

// OrderItem is a snapshot of one cart line at checkout time. Product fields are
// copied, not referenced, so later catalog edits do not rewrite order history.
type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID  `gorm:"type:uuid;index" json:"order_id"`
	ProductID   *uuid.UUID `gorm:"type:uuid" json:"product_id"`
	ProductName string     `json:"product_name"`
	Size        string     `json:"size"`
	Quantity    int        `json:"quantity"`
	UnitPrice   float64    `json:"unit_price"`
	LineTotal   float64    `json:"line_total"`
}
