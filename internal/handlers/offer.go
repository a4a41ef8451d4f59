package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/kashvi/internal/models"
)

// OfferHandler manages discount coupons.
type OfferHandler struct {
	db *gorm.DB
}

// NewOfferHandler constructs OfferHandler.
func NewOfferHandler(db *gorm.DB) *OfferHandler {
	return &OfferHandler{db: db}
}

// ListOffers returns every offer. The storefront offers page and the admin
// table share this listing.
func (h *OfferHandler) ListOffers(c *fiber.Ctx) error {
	var offers []models.Offer
	if err := h.db.Order("created_at desc").Find(&offers).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": offers})
}

type offerRequest struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	CouponCode         string `json:"coupon_code"`
	DiscountPercentage int    `json:"discount_percentage"`
}

func (req offerRequest) validate() error {
	if strings.TrimSpace(req.CouponCode) == "" {
		return errors.New("coupon_code is required")
	}
	if req.DiscountPercentage < 0 || req.DiscountPercentage > 100 {
		return errors.New("discount_percentage must be between 0 and 100")
	}
	return nil
}

// CreateOffer adds a coupon. New offers start active; duplicate codes are
// rejected so a code always resolves to one offer.
func (h *OfferHandler) CreateOffer(c *fiber.Ctx) error {
	var req offerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	code := strings.TrimSpace(req.CouponCode)
	var existing models.Offer
	if err := h.db.Where("coupon_code = ?", code).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "coupon code already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	offer := models.Offer{
		Title:              req.Title,
		Description:        req.Description,
		CouponCode:         code,
		DiscountPercentage: req.DiscountPercentage,
		Active:             true,
	}

	if err := h.db.Create(&offer).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": offer})
}

// UpdateOffer edits an offer's text and discount. The coupon code and active
// flag are changed through their own endpoints.
func (h *OfferHandler) UpdateOffer(c *fiber.Ctx) error {
	offer, err := h.loadOffer(c)
	if err != nil {
		return err
	}

	var req offerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.DiscountPercentage < 0 || req.DiscountPercentage > 100 {
		return fiber.NewError(fiber.StatusBadRequest, "discount_percentage must be between 0 and 100")
	}

	offer.Title = req.Title
	offer.Description = req.Description
	offer.DiscountPercentage = req.DiscountPercentage

	if err := h.db.Save(offer).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": offer})
}

type activeRequest struct {
	Active bool `json:"active"`
}

// SetActive toggles whether the coupon can be applied.
func (h *OfferHandler) SetActive(c *fiber.Ctx) error {
	offer, err := h.loadOffer(c)
	if err != nil {
		return err
	}

	var req activeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	offer.Active = req.Active
	if err := h.db.Save(offer).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": offer})
}

// DeleteOffer removes a coupon.
func (h *OfferHandler) DeleteOffer(c *fiber.Ctx) error {
	offer, err := h.loadOffer(c)
	if err != nil {
		return err
	}

	if err := h.db.Delete(offer).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// loadOffer resolves the :code route param, which is the coupon code.
func (h *OfferHandler) loadOffer(c *fiber.Ctx) (*models.Offer, error) {
	code := c.Params("code")
	if code == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "missing coupon code")
	}

	var offer models.Offer
	if err := h.db.Where("coupon_code = ?", code).First(&offer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "offer not found")
		}
		return nil, err
	}
	return &offer, nil
}
