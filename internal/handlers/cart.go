package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/kashvi/internal/cart"
	"github.com/example/kashvi/internal/repository"
	"github.com/example/kashvi/internal/services"
)

// CartTokenHeader carries the opaque cart token between requests. The server
// issues one on the first cart touch and echoes it in every cart response.
const CartTokenHeader = "X-Cart-Token"

// CartHandler serves the server-side shopping cart.
type CartHandler struct {
	carts    *cart.Store
	products repository.ProductReader
	coupons  *services.CouponResolver
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(carts *cart.Store, products repository.ProductReader, coupons *services.CouponResolver) *CartHandler {
	return &CartHandler{carts: carts, products: products, coupons: coupons}
}

// GetCart returns the cart for the request's token, creating one if needed.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	crt, token := h.carts.GetOrCreate(c.Get(CartTokenHeader))
	return h.respond(c, fiber.StatusOK, crt, token)
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

// AddItem adds a product to the cart, merging with an existing line for the
// same product and size.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product_id")
	}

	product, err := h.products.ByID(c.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	if !product.InStock() {
		return fiber.NewError(fiber.StatusConflict, "product is out of stock")
	}

	crt, token := h.carts.GetOrCreate(c.Get(CartTokenHeader))
	crt.Add(*product, req.Quantity, req.Size)
	return h.respond(c, fiber.StatusCreated, crt, token)
}

type updateItemRequest struct {
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

// UpdateItem sets a line's quantity; zero or less removes the line.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("productID"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	var req updateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	crt, token := h.carts.GetOrCreate(c.Get(CartTokenHeader))
	crt.UpdateQuantity(productID, req.Quantity, req.Size)
	return h.respond(c, fiber.StatusOK, crt, token)
}

// RemoveItem deletes the line matching the product id and the optional size
// query parameter.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("productID"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	crt, token := h.carts.GetOrCreate(c.Get(CartTokenHeader))
	crt.Remove(productID, c.Query("size"))
	return h.respond(c, fiber.StatusOK, crt, token)
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	crt, token := h.carts.GetOrCreate(c.Get(CartTokenHeader))
	crt.Clear()
	return h.respond(c, fiber.StatusOK, crt, token)
}

type applyCouponRequest struct {
	Code string `json:"code"`
}

// ApplyCoupon validates a coupon code and applies its discount to the cart.
// Applying a second coupon replaces the first.
func (h *CartHandler) ApplyCoupon(c *fiber.Ctx) error {
	var req applyCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	offer, err := h.coupons.Resolve(c.Context(), req.Code)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCoupon) || errors.Is(err, services.ErrCouponNotActive) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return err
	}

	crt, token := h.carts.GetOrCreate(c.Get(CartTokenHeader))
	crt.ApplyCoupon(offer.CouponCode, offer.Discount())
	return h.respond(c, fiber.StatusOK, crt, token)
}

func (h *CartHandler) respond(c *fiber.Ctx, status int, crt *cart.Cart, token string) error {
	c.Set(CartTokenHeader, token)

	items := crt.Items()
	if items == nil {
		items = []cart.LineItem{}
	}

	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"token":    token,
			"items":    items,
			"coupon":   crt.Coupon(),
			"subtotal": crt.Subtotal(),
			"total":    crt.Total(),
		},
	})
}
