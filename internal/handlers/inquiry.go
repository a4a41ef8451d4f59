package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/kashvi/internal/middleware"
	"github.com/example/kashvi/internal/models"
	"github.com/example/kashvi/internal/utils"
)

// InquiryHandler stores contact-form submissions: bulk-order inquiries and
// stylist requests. Write-only from the storefront, read-only for admins.
type InquiryHandler struct {
	db *gorm.DB
}

// NewInquiryHandler constructs InquiryHandler.
func NewInquiryHandler(db *gorm.DB) *InquiryHandler {
	return &InquiryHandler{db: db}
}

type bulkOrderRequest struct {
	Name         string `json:"name"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Quantity     int    `json:"quantity"`
	DeliveryDate string `json:"delivery_date"`
	Message      string `json:"message"`
}

// CreateBulkOrder records a wholesale inquiry.
func (h *InquiryHandler) CreateBulkOrder(c *fiber.Ctx) error {
	var req bulkOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, email and message are required")
	}
	if req.Quantity < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be at least 1")
	}

	inquiry := models.BulkOrder{
		Name:         req.Name,
		Company:      req.Company,
		Email:        req.Email,
		Phone:        req.Phone,
		Quantity:     req.Quantity,
		DeliveryDate: req.DeliveryDate,
		Message:      req.Message,
	}

	if id, ok := middleware.GetCurrentUserID(c); ok {
		inquiry.UserID = &id
	}

	if err := h.db.Create(&inquiry).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": inquiry})
}

type stylistInquiryRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Occasion string `json:"occasion"`
	Message  string `json:"message"`
}

// CreateStylistInquiry records a contact-a-stylist request.
func (h *InquiryHandler) CreateStylistInquiry(c *fiber.Ctx) error {
	var req stylistInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, email and message are required")
	}

	inquiry := models.StylistInquiry{
		Name:     req.Name,
		Email:    req.Email,
		Occasion: req.Occasion,
		Message:  req.Message,
	}

	if err := h.db.Create(&inquiry).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": inquiry})
}

// ListBulkOrders returns bulk-order inquiries for admin review, newest first.
func (h *InquiryHandler) ListBulkOrders(c *fiber.Ctx) error {
	return h.list(c, &models.BulkOrder{}, &[]models.BulkOrder{})
}

// ListStylistInquiries returns stylist requests for admin review, newest first.
func (h *InquiryHandler) ListStylistInquiries(c *fiber.Ctx) error {
	return h.list(c, &models.StylistInquiry{}, &[]models.StylistInquiry{})
}

func (h *InquiryHandler) list(c *fiber.Ctx, model interface{}, dest interface{}) error {
	pg := utils.ParsePagination(c)

	var total int64
	if err := h.db.Model(model).Count(&total).Error; err != nil {
		return err
	}

	if err := h.db.Model(model).
		Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(dest).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dest,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}
