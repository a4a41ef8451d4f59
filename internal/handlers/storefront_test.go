package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/example/kashvi/internal/cart"
	"github.com/example/kashvi/internal/models"
	"github.com/example/kashvi/internal/repository"
	"github.com/example/kashvi/internal/services"
)

type storefront struct {
	app      *fiber.App
	products *repository.MemoryProducts
	offers   *repository.MemoryOffers
	orders   *repository.MemoryOrders
}

// newStorefront wires the storefront routes against in-memory repositories.
// Admin routes need Postgres and are not part of this fixture.
func newStorefront() *storefront {
	products := repository.NewMemoryProducts()
	offers := repository.NewMemoryOffers()
	orders := repository.NewMemoryOrders()

	carts := cart.NewStore()
	coupons := services.NewCouponResolver(offers)
	checkout := services.NewCheckoutService(carts, orders, coupons)

	productHandler := NewProductHandler(nil, products)
	cartHandler := NewCartHandler(carts, products, coupons)
	orderHandler := NewOrderHandler(nil, checkout)

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/products", productHandler.ListProducts)
	api.Get("/products/trending", productHandler.TrendingProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Get("/cart", cartHandler.GetCart)
	api.Post("/cart/items", cartHandler.AddItem)
	api.Put("/cart/items/:productID", cartHandler.UpdateItem)
	api.Delete("/cart/items/:productID", cartHandler.RemoveItem)
	api.Post("/cart/coupon", cartHandler.ApplyCoupon)
	api.Post("/checkout", orderHandler.Checkout)

	return &storefront{app: app, products: products, offers: offers, orders: orders}
}

func (s *storefront) request(t *testing.T, method, path, cartToken string, body interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cartToken != "" {
		req.Header.Set(CartTokenHeader, cartToken)
	}

	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestListProductsReturnsBareArray(t *testing.T) {
	s := newStorefront()
	s.products.Add(models.Product{Name: "Maxi Dress", Price: 79.99, Category: "Dresses", Stock: 5})
	s.products.Add(models.Product{Name: "Handbag", Price: 129.99, Category: "Accessories", Stock: 3})

	resp := s.request(t, http.MethodGet, "/api/products", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var products []models.Product
	decode(t, resp, &products)
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
}

func TestListProductsEmptyCatalogIsEmptyArray(t *testing.T) {
	s := newStorefront()

	resp := s.request(t, http.MethodGet, "/api/products", "", nil)
	var products []models.Product
	decode(t, resp, &products)
	if products == nil || len(products) != 0 {
		t.Fatalf("expected [], got %v", products)
	}
}

func TestTrendingProductsFiltered(t *testing.T) {
	s := newStorefront()
	s.products.Add(models.Product{Name: "Maxi Dress", Price: 79.99, Category: "Dresses", Trending: true, Stock: 5})
	s.products.Add(models.Product{Name: "Handbag", Price: 129.99, Category: "Accessories", Stock: 3})

	resp := s.request(t, http.MethodGet, "/api/products/trending", "", nil)
	var products []models.Product
	decode(t, resp, &products)
	if len(products) != 1 || products[0].Name != "Maxi Dress" {
		t.Fatalf("expected only the trending dress, got %v", products)
	}
}

type cartResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Token    string          `json:"token"`
		Items    []cart.LineItem `json:"items"`
		Coupon   *cart.Coupon    `json:"coupon"`
		Subtotal float64         `json:"subtotal"`
		Total    float64         `json:"total"`
	} `json:"data"`
}

func TestCartCheckoutFlow(t *testing.T) {
	s := newStorefront()
	dress := s.products.Add(models.Product{Name: "Maxi Dress", Price: 100, Category: "Dresses", Stock: 5})
	s.offers.Add(models.Offer{CouponCode: "SUMMER20", DiscountPercentage: 20, Active: true})

	// Add to cart twice; lines merge by (product, size).
	resp := s.request(t, http.MethodPost, "/api/cart/items", "",
		map[string]interface{}{"product_id": dress.ID, "quantity": 1, "size": "M"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add status = %d", resp.StatusCode)
	}
	var body cartResponse
	decode(t, resp, &body)
	token := body.Data.Token
	if token == "" {
		t.Fatal("expected a cart token")
	}

	resp = s.request(t, http.MethodPost, "/api/cart/items", token,
		map[string]interface{}{"product_id": dress.ID, "quantity": 2, "size": "M"})
	decode(t, resp, &body)
	if len(body.Data.Items) != 1 || body.Data.Items[0].Quantity != 3 {
		t.Fatalf("expected one merged line with quantity 3, got %+v", body.Data.Items)
	}
	if body.Data.Subtotal != 300 {
		t.Fatalf("subtotal = %v, want 300", body.Data.Subtotal)
	}

	// Apply the coupon.
	resp = s.request(t, http.MethodPost, "/api/cart/coupon", token,
		map[string]string{"code": "SUMMER20"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("coupon status = %d", resp.StatusCode)
	}
	decode(t, resp, &body)
	if body.Data.Total != 240 {
		t.Fatalf("total = %v, want 240 after 20%% off", body.Data.Total)
	}

	// Check out.
	resp = s.request(t, http.MethodPost, "/api/checkout", token, map[string]interface{}{
		"shipping": map[string]string{
			"name": "Asha Rao", "phone": "9876543210", "address": "12 MG Road",
			"city": "Bengaluru", "state": "Karnataka", "zip": "560001",
		},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("checkout status = %d", resp.StatusCode)
	}

	written := s.orders.Orders()
	if len(written) != 1 {
		t.Fatalf("expected 1 order, got %d", len(written))
	}
	if written[0].Status != models.OrderStatusPending || written[0].TotalPrice != 240 {
		t.Fatalf("unexpected order: status=%q total=%v", written[0].Status, written[0].TotalPrice)
	}

	// The cart was consumed: a follow-up checkout has nothing to submit.
	resp = s.request(t, http.MethodPost, "/api/checkout", token, map[string]interface{}{
		"shipping": map[string]string{
			"name": "Asha Rao", "phone": "9876543210", "address": "12 MG Road",
			"city": "Bengaluru", "state": "Karnataka", "zip": "560001",
		},
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("second checkout status = %d, want 422", resp.StatusCode)
	}
	if len(s.orders.Orders()) != 1 {
		t.Fatal("expected no second order")
	}
}

func TestAddOutOfStockProductRejected(t *testing.T) {
	s := newStorefront()
	sold := s.products.Add(models.Product{Name: "Handbag", Price: 129.99, Category: "Accessories", Stock: 0})

	resp := s.request(t, http.MethodPost, "/api/cart/items", "",
		map[string]interface{}{"product_id": sold.ID, "quantity": 1})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
}

func TestApplyInvalidCouponRejected(t *testing.T) {
	s := newStorefront()

	resp := s.request(t, http.MethodPost, "/api/cart/coupon", "",
		map[string]string{"code": "NOPE"})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestUpdateItemToZeroRemovesLine(t *testing.T) {
	s := newStorefront()
	dress := s.products.Add(models.Product{Name: "Maxi Dress", Price: 100, Category: "Dresses", Stock: 5})

	resp := s.request(t, http.MethodPost, "/api/cart/items", "",
		map[string]interface{}{"product_id": dress.ID, "quantity": 2, "size": "M"})
	var body cartResponse
	decode(t, resp, &body)
	token := body.Data.Token

	resp = s.request(t, http.MethodPut, "/api/cart/items/"+dress.ID.String(), token,
		map[string]interface{}{"quantity": 0, "size": "M"})
	decode(t, resp, &body)
	if len(body.Data.Items) != 0 || body.Data.Subtotal != 0 {
		t.Fatalf("expected empty cart, got %+v", body.Data)
	}
}

func TestCheckoutMissingShippingField(t *testing.T) {
	s := newStorefront()
	dress := s.products.Add(models.Product{Name: "Maxi Dress", Price: 100, Category: "Dresses", Stock: 5})

	resp := s.request(t, http.MethodPost, "/api/cart/items", "",
		map[string]interface{}{"product_id": dress.ID, "quantity": 1})
	var body cartResponse
	decode(t, resp, &body)

	resp = s.request(t, http.MethodPost, "/api/checkout", body.Data.Token, map[string]interface{}{
		"shipping": map[string]string{"name": "Asha Rao"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if len(s.orders.Orders()) != 0 {
		t.Fatal("expected no order written")
	}
}
