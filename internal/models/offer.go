package models

// Offer is a discount coupon. Coupon codes are unique: at most one offer exists
// per code, so a code lookup resolves to a single discount.
type Offer struct {
	BaseModel
	Title              string `json:"title"`
	Description        string `json:"description"`
	CouponCode         string `gorm:"uniqueIndex" json:"coupon_code"`
	DiscountPercentage int    `json:"discount_percentage"`
	Active             bool   `json:"active"`
}

// Discount returns the multiplicative discount fraction, e.g. 20 -> 0.20.
func (o *Offer) Discount() float64 {
	return float64(o.DiscountPercentage) / 100
}
