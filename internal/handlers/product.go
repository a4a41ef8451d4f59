package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/example/kashvi/internal/importer"
	"github.com/example/kashvi/internal/models"
	"github.com/example/kashvi/internal/repository"
)

// ProductHandler serves storefront product reads and admin catalog writes.
type ProductHandler struct {
	db       *gorm.DB
	products repository.ProductReader
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB, products repository.ProductReader) *ProductHandler {
	return &ProductHandler{db: db, products: products}
}

// ListProducts returns the catalog as a bare JSON array, optionally filtered
// by category or a name/description search.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	products, err := h.products.List(c.Context(), filter)
	if err != nil {
		return err
	}

	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(products)
}

// TrendingProducts returns products flagged for the homepage carousel as a
// bare JSON array.
func (h *ProductHandler) TrendingProducts(c *fiber.Ctx) error {
	trending := true
	products, err := h.products.List(c.Context(), repository.ProductFilter{Trending: &trending})
	if err != nil {
		return err
	}

	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(products)
}

// GetProduct loads a single product.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	product, err := h.products.ByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

type productRequest struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Trending    bool     `json:"trending"`
	Description string   `json:"description"`
	DataAiHint  string   `json:"dataAiHint"`
	Sizes       []string `json:"sizes"`
	Stock       int      `json:"stock"`
}

func (req productRequest) validate() error {
	if req.Name == "" {
		return errors.New("name is required")
	}
	if req.Price < 0 {
		return errors.New("price must not be negative")
	}
	if req.Image == "" {
		return errors.New("image is required")
	}
	if !models.ValidCategory(req.Category) {
		return errors.New("unknown category")
	}
	if req.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

// CreateProduct handles admin product creation.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	product := models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Trending:    req.Trending,
		Description: req.Description,
		DataAiHint:  req.DataAiHint,
		Sizes:       pq.StringArray(req.Sizes),
		Stock:       req.Stock,
	}

	if err := h.db.Create(&product).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

// UpdateProduct replaces an existing product's fields.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Image = req.Image
	product.Category = req.Category
	product.Trending = req.Trending
	product.Description = req.Description
	product.DataAiHint = req.DataAiHint
	product.Sizes = pq.StringArray(req.Sizes)
	product.Stock = req.Stock

	if err := h.db.Save(&product).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// DeleteProduct removes a product from the catalog. Existing order items keep
// their snapshots.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type trendingRequest struct {
	Trending bool `json:"trending"`
}

// SetTrending flips the homepage carousel flag.
func (h *ProductHandler) SetTrending(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req trendingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result := h.db.Model(&models.Product{}).Where("id = ?", id).Update("trending", req.Trending)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	return c.JSON(fiber.Map{"success": true})
}

// ImportProducts ingests the bulk-import CSV upload. Malformed rows are
// skipped; the response reports both counts.
func (h *ProductHandler) ImportProducts(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing csv file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable csv file")
	}
	defer file.Close()

	result, err := importer.ParseProducts(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if len(result.Products) > 0 {
		if err := h.db.Create(&result.Products).Error; err != nil {
			return err
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"imported": len(result.Products),
		"skipped":  result.Skipped,
	})
}
