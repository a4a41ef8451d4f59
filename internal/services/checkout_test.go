package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/example/kashvi/internal/cart"
	"github.com/example/kashvi/internal/models"
	"github.com/example/kashvi/internal/repository"
)

func validShipping() ShippingInfo {
	return ShippingInfo{
		Name:    "Asha Rao",
		Phone:   "9876543210",
		Address: "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Zip:     "560001",
	}
}

func checkoutFixture() (*CheckoutService, *cart.Store, *repository.MemoryOrders, *repository.MemoryOffers) {
	carts := cart.NewStore()
	orders := repository.NewMemoryOrders()
	offers := repository.NewMemoryOffers()
	svc := NewCheckoutService(carts, orders, NewCouponResolver(offers))
	return svc, carts, orders, offers
}

func testProduct(name string, price float64) models.Product {
	p := models.Product{Name: name, Price: price}
	p.ID = uuid.New()
	return p
}

func TestSubmitPlacesPendingOrder(t *testing.T) {
	svc, carts, orders, _ := checkoutFixture()

	c, token := carts.GetOrCreate("")
	c.Add(testProduct("Maxi Dress", 79.99), 2, "M")

	order, err := svc.Submit(context.Background(), token, validShipping(), nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	written := orders.Orders()
	if len(written) != 1 {
		t.Fatalf("expected exactly 1 order written, got %d", len(written))
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("status = %q, want %q", order.Status, models.OrderStatusPending)
	}
	if want := 79.99 * 2; order.TotalPrice != want {
		t.Fatalf("total = %v, want %v", order.TotalPrice, want)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 || order.Items[0].Size != "M" {
		t.Fatalf("unexpected item snapshot: %+v", order.Items)
	}
	if order.PlacedAt.IsZero() {
		t.Fatal("expected a server-assigned timestamp")
	}

	// The cart is consumed by a successful checkout.
	if _, ok := carts.Get(token); ok {
		t.Fatal("expected cart dropped after checkout")
	}
}

func TestSubmitAppliesCouponDiscount(t *testing.T) {
	svc, carts, _, offers := checkoutFixture()
	offers.Add(models.Offer{CouponCode: "SUMMER20", DiscountPercentage: 20, Active: true})

	c, token := carts.GetOrCreate("")
	c.Add(testProduct("Maxi Dress", 100), 1, "")
	c.ApplyCoupon("SUMMER20", 0.2)

	order, err := svc.Submit(context.Background(), token, validShipping(), nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if order.Subtotal != 100 || order.TotalPrice != 80 {
		t.Fatalf("subtotal/total = %v/%v, want 100/80", order.Subtotal, order.TotalPrice)
	}
	if order.CouponCode != "SUMMER20" {
		t.Fatalf("coupon code = %q, want SUMMER20", order.CouponCode)
	}
}

func TestSubmitDropsDeactivatedCoupon(t *testing.T) {
	svc, carts, _, offers := checkoutFixture()
	offers.Add(models.Offer{CouponCode: "SUMMER20", DiscountPercentage: 20, Active: false})

	c, token := carts.GetOrCreate("")
	c.Add(testProduct("Maxi Dress", 100), 1, "")
	// Applied while active, deactivated before submit.
	c.ApplyCoupon("SUMMER20", 0.2)

	order, err := svc.Submit(context.Background(), token, validShipping(), nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if order.TotalPrice != 100 || order.CouponCode != "" {
		t.Fatalf("expected full price and no coupon, got %v / %q", order.TotalPrice, order.CouponCode)
	}
}

func TestSubmitEmptyCartWritesNothing(t *testing.T) {
	svc, carts, orders, _ := checkoutFixture()
	_, token := carts.GetOrCreate("")

	_, err := svc.Submit(context.Background(), token, validShipping(), nil)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
	if len(orders.Orders()) != 0 {
		t.Fatal("expected no order written for an empty cart")
	}
}

func TestSubmitUnknownCart(t *testing.T) {
	svc, _, orders, _ := checkoutFixture()

	_, err := svc.Submit(context.Background(), "missing", validShipping(), nil)
	if !errors.Is(err, ErrUnknownCart) {
		t.Fatalf("err = %v, want ErrUnknownCart", err)
	}
	if len(orders.Orders()) != 0 {
		t.Fatal("expected no order written for an unknown cart")
	}
}

func TestSubmitMissingShippingFieldWritesNothing(t *testing.T) {
	svc, carts, orders, _ := checkoutFixture()

	c, token := carts.GetOrCreate("")
	c.Add(testProduct("Maxi Dress", 79.99), 1, "")

	shipping := validShipping()
	shipping.City = "   "

	_, err := svc.Submit(context.Background(), token, shipping, nil)
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingFieldError", err)
	}
	if missing.Field != "city" {
		t.Fatalf("field = %q, want city", missing.Field)
	}
	if len(orders.Orders()) != 0 {
		t.Fatal("expected no order written")
	}

	// Cart must survive the rejected attempt.
	if _, ok := carts.Get(token); !ok {
		t.Fatal("expected cart kept after validation failure")
	}
}

func TestSubmitWriteFailureKeepsCart(t *testing.T) {
	svc, carts, orders, _ := checkoutFixture()

	c, token := carts.GetOrCreate("")
	c.Add(testProduct("Maxi Dress", 79.99), 1, "")
	orders.FailNext = errors.New("connection reset")

	if _, err := svc.Submit(context.Background(), token, validShipping(), nil); err == nil {
		t.Fatal("expected write failure to surface")
	}

	got, ok := carts.Get(token)
	if !ok || got.Empty() {
		t.Fatal("expected cart intact after failed write")
	}
}

func TestShippingInfoValidateOrder(t *testing.T) {
	cases := []struct {
		mutate func(*ShippingInfo)
		field  string
	}{
		{func(s *ShippingInfo) { s.Name = "" }, "name"},
		{func(s *ShippingInfo) { s.Phone = "" }, "phone"},
		{func(s *ShippingInfo) { s.Address = "" }, "address"},
		{func(s *ShippingInfo) { s.City = "" }, "city"},
		{func(s *ShippingInfo) { s.State = "" }, "state"},
		{func(s *ShippingInfo) { s.Zip = "" }, "zip"},
	}

	for _, tc := range cases {
		shipping := validShipping()
		tc.mutate(&shipping)

		var missing *MissingFieldError
		if err := shipping.Validate(); !errors.As(err, &missing) || missing.Field != tc.field {
			t.Fatalf("expected missing %q, got %v", tc.field, err)
		}
	}

	if err := validShipping().Validate(); err != nil {
		t.Fatalf("valid shipping rejected: %v", err)
	}
}
