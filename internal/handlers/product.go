package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/pedidos/internal/models"
	"github.com/example/pedidos/internal/store"
	"github.com/example/pedidos/internal/utils"
)

// ProductHandler manages catalog endpoints.
type ProductHandler struct {
	products *store.ProductStore
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{products: store.NewProductStore(db)}
}

type productRequest struct {
	ID          string  `json:"id"`
	Reference   string  `json:"reference"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Grid        string  `json:"grid"`
	Color       string  `json:"color"`
	Sole        string  `json:"sole"`
	Material    string  `json:"material"`
	ImageURL    string  `json:"image_url"`
}

// ListProducts returns paginated products, optionally filtered by a search
// term matched against reference or description.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	products, err := h.products.List(c.Context())
	if err != nil {
		return err
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		term := strings.ToLower(search)
		var matched []models.Product
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Reference), term) ||
				strings.Contains(strings.ToLower(p.Description), term) {
				matched = append(matched, p)
			}
		}
		products = matched
	}

	total := int64(len(products))
	lo, hi := pg.Window(len(products))

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       products[lo:hi],
		"pagination": pg.Block(total),
	})
}

// GetProduct returns a single product by ID.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	product, err := h.products.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// SaveProduct creates or updates a product. Without an id in the body the
// store resolves duplicates by reference, so re-submitting an existing
// reference updates that entry instead of creating a second one.
func (h *ProductHandler) SaveProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Reference == "" {
		return fiber.NewError(fiber.StatusBadRequest, "reference is required")
	}
	if req.Price < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "price must not be negative")
	}

	product := models.Product{
		Reference:   req.Reference,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Grid:        req.Grid,
		Color:       req.Color,
		Sole:        req.Sole,
		Material:    req.Material,
		ImageURL:    req.ImageURL,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}
		product.ID = id
	}

	created, err := h.products.Save(c.Context(), &product)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	} else {
		// Updates have merge semantics; re-read so the response carries the
		// stored fields, not just the submitted ones.
		product, err = h.products.Get(c.Context(), product.ID)
		if err != nil {
			return err
		}
	}
	return c.Status(status).JSON(fiber.Map{"success": true, "data": product})
}

// UpdateProduct updates a specific product by path ID, bypassing the
// reference lookup.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product := models.Product{
		Reference:   req.Reference,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Grid:        req.Grid,
		Color:       req.Color,
		Sole:        req.Sole,
		Material:    req.Material,
		ImageURL:    req.ImageURL,
	}
	product.ID = id

	if _, err := h.products.Save(c.Context(), &product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	product, err = h.products.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": product})
}

// DeleteProduct removes a product by ID.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.products.Delete(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
