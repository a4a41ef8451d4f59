package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/kashvi/internal/models"
	"github.com/example/kashvi/internal/repository"
	"github.com/example/kashvi/internal/services"
)

// NotificationHandler manages storefront banner notifications. Activation goes
// through the notification service so the single-active invariant cannot be
// bypassed from a handler.
type NotificationHandler struct {
	db      *gorm.DB
	service *services.NotificationService
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(db *gorm.DB, service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{db: db, service: service}
}

// ActiveNotification returns the currently shown banner, or null data when no
// notification is active.
func (h *NotificationHandler) ActiveNotification(c *fiber.Ctx) error {
	var notification models.Notification
	err := h.db.Where("active = ?", true).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"success": true, "data": nil})
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": notification})
}

// ListNotifications returns all notifications for the admin table.
func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	var notifications []models.Notification
	if err := h.db.Order("created_at desc").Find(&notifications).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": notifications})
}

type notificationRequest struct {
	Message string `json:"message"`
}

// CreateNotification adds a banner message. New notifications start inactive.
func (h *NotificationHandler) CreateNotification(c *fiber.Ctx) error {
	var req notificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}

	notification := models.Notification{Message: req.Message}
	if err := h.db.Create(&notification).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": notification})
}

// UpdateNotification edits the message only; the active flag is owned by the
// activate/deactivate endpoints.
func (h *NotificationHandler) UpdateNotification(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req notificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result := h.db.Model(&models.Notification{}).Where("id = ?", id).Update("message", req.Message)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "notification not found")
	}

	return c.JSON(fiber.Map{"success": true})
}

// Activate makes this notification the single active banner.
func (h *NotificationHandler) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.service.Activate(c.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "notification not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

// Deactivate hides the banner.
func (h *NotificationHandler) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.service.Deactivate(c.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "notification not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

// DeleteNotification removes a notification.
func (h *NotificationHandler) DeleteNotification(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Notification{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
