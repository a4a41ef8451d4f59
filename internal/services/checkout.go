package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/kashvi/internal/cart"
	"github.com/example/kashvi/internal/models"
	"github.com/example/kashvi/internal/repository"
)

var (
	// ErrEmptyCart rejects checkout before any write is attempted.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrUnknownCart means the cart token does not resolve to a live cart.
	ErrUnknownCart = errors.New("unknown cart")
)

// MissingFieldError names the shipping field that failed validation.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing shipping field: %s", e.Field)
}

// ShippingInfo is the destination block captured at checkout. Every field is
// required.
type ShippingInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// Validate returns a MissingFieldError for the first empty field.
func (s ShippingInfo) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", s.Name},
		{"phone", s.Phone},
		{"address", s.Address},
		{"city", s.City},
		{"state", s.State},
		{"zip", s.Zip},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	return nil
}

// CheckoutService turns a live cart into a persisted order. Validation happens
// before any write; the cart is cleared and dropped only after the order
// insert succeeds, so a failed write leaves the cart intact.
type CheckoutService struct {
	carts   *cart.Store
	orders  repository.OrderWriter
	coupons *CouponResolver
}

func NewCheckoutService(carts *cart.Store, orders repository.OrderWriter, coupons *CouponResolver) *CheckoutService {
	return &CheckoutService{carts: carts, orders: orders, coupons: coupons}
}

// Submit places a cash-on-delivery order for the cart behind token. userID is
// nil for anonymous shoppers. The applied coupon is re-resolved at submit
// time; a coupon that has since been removed or deactivated is dropped rather
// than blocking the order.
func (s *CheckoutService) Submit(ctx context.Context, token string, shipping ShippingInfo, userID *uuid.UUID) (*models.Order, error) {
	c, ok := s.carts.Get(token)
	if !ok {
		return nil, ErrUnknownCart
	}

	items := c.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := shipping.Validate(); err != nil {
		return nil, err
	}

	subtotal := c.Subtotal()
	total := subtotal
	couponCode := ""
	if coupon := c.Coupon(); coupon != nil {
		if offer, err := s.coupons.Resolve(ctx, coupon.Code); err == nil {
			total = subtotal * (1 - offer.Discount())
			couponCode = offer.CouponCode
		}
	}

	order := models.Order{
		UserID:          userID,
		Status:          models.OrderStatusPending,
		PlacedAt:        time.Now(),
		Subtotal:        subtotal,
		TotalPrice:      total,
		CouponCode:      couponCode,
		ShippingName:    shipping.Name,
		ShippingPhone:   shipping.Phone,
		ShippingAddress: shipping.Address,
		ShippingCity:    shipping.City,
		ShippingState:   shipping.State,
		ShippingZip:     shipping.Zip,
	}

	for _, item := range items {
		productID := item.ProductID
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   &productID,
			ProductName: item.Name,
			Size:        item.Size,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.UnitPrice * float64(item.Quantity),
		})
	}

	if err := s.orders.Create(ctx, &order); err != nil {
		return nil, err
	}

	c.Clear()
	s.carts.Drop(token)
	return &order, nil
}
