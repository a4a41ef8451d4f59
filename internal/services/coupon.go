package services

import (
	"context"
	"errors"
	"strings"

	"github.com/example/kashvi/internal/models"
	"github.com/example/kashvi/internal/repository"
)

var (
	// ErrInvalidCoupon means no offer exists for the code.
	ErrInvalidCoupon = errors.New("invalid coupon code")
	// ErrCouponNotActive means the offer exists but is switched off.
	ErrCouponNotActive = errors.New("coupon is not active")
)

// CouponResolver turns a user-entered coupon code into a discount fraction.
// Both failure modes are user-visible negative results, not server faults.
type CouponResolver struct {
	offers repository.OfferReader
}

func NewCouponResolver(offers repository.OfferReader) *CouponResolver {
	return &CouponResolver{offers: offers}
}

// Resolve looks up code and returns the matching offer. The discount to apply
// is offer.Discount().
func (r *CouponResolver) Resolve(ctx context.Context, code string) (*models.Offer, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrInvalidCoupon
	}

	offer, err := r.offers.ByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCoupon
		}
		return nil, err
	}

	if !offer.Active {
		return nil, ErrCouponNotActive
	}

	return offer, nil
}
