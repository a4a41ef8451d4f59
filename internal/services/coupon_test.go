package services

import (
	"context"
	"errors"
	"testing"

	"github.com/example/kashvi/internal/models"
	"github.com/example/kashvi/internal/repository"
)

func TestResolveActiveCoupon(t *testing.T) {
	offers := repository.NewMemoryOffers()
	offers.Add(models.Offer{CouponCode: "SUMMER20", DiscountPercentage: 20, Active: true})

	resolver := NewCouponResolver(offers)
	offer, err := resolver.Resolve(context.Background(), "SUMMER20")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if offer.Discount() != 0.2 {
		t.Fatalf("discount = %v, want 0.2", offer.Discount())
	}
}

func TestResolveRejections(t *testing.T) {
	offers := repository.NewMemoryOffers()
	offers.Add(models.Offer{CouponCode: "EXPIRED", DiscountPercentage: 50, Active: false})
	resolver := NewCouponResolver(offers)

	cases := []struct {
		name string
		code string
		want error
	}{
		{"unknown code", "NOPE", ErrInvalidCoupon},
		{"empty code", "", ErrInvalidCoupon},
		{"blank code", "   ", ErrInvalidCoupon},
		{"inactive offer", "EXPIRED", ErrCouponNotActive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolver.Resolve(context.Background(), tc.code)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Resolve(%q) = %v, want %v", tc.code, err, tc.want)
			}
		})
	}
}
