package cart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/example/kashvi/internal/models"
)

// LineItem is one cart line. Product fields are snapshots taken when the item
// was added; lines are keyed by (product id, size).
type LineItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	UnitPrice float64   `json:"unit_price"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
}

// Coupon is the discount currently applied to a cart. Applying another coupon
// replaces it: last applied wins, no stacking.
type Coupon struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

// Cart holds the transient line items for one shopper. All operations are
// total: they cannot fail, only change or not change the list. A cart may be
// touched by concurrent requests carrying the same token, so every method
// takes the mutex.
type Cart struct {
	mu     sync.Mutex
	items  []LineItem
	coupon *Coupon
}

func New() *Cart {
	return &Cart{}
}

// Add merges quantity into an existing (product id, size) line or appends a
// new one. Quantities below one are treated as one.
func (c *Cart) Add(product models.Product, quantity int, size string) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == product.ID && c.items[i].Size == size {
			c.items[i].Quantity += quantity
			return
		}
	}

	c.items = append(c.items, LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		UnitPrice: product.Price,
		Size:      size,
		Quantity:  quantity,
	})
}

// UpdateQuantity sets the quantity of the matching line. A quantity of zero or
// less removes the line, so UpdateQuantity(id, 0) equals Remove(id).
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int, size string) {
	if quantity <= 0 {
		c.Remove(productID, size)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID && c.items[i].Size == size {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line matching (product id, size), if present.
func (c *Cart) Remove(productID uuid.UUID, size string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID == productID && item.Size == size {
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
}

// Clear empties the cart and drops any applied coupon.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.coupon = nil
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

// Subtotal is the sum of price times quantity over all lines, recomputed on
// every call.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// ApplyCoupon replaces the applied coupon.
func (c *Cart) ApplyCoupon(code string, discount float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.coupon = &Coupon{Code: code, Discount: discount}
}

// Coupon returns the applied coupon, or nil.
func (c *Cart) Coupon() *Coupon {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.coupon == nil {
		return nil
	}
	coupon := *c.coupon
	return &coupon
}

// Total is the subtotal after the applied discount.
func (c *Cart) Total() float64 {
	subtotal := c.Subtotal()
	if coupon := c.Coupon(); coupon != nil {
		return subtotal * (1 - coupon.Discount)
	}
	return subtotal
}
