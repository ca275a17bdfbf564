package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/pedidos/internal/export"
	"github.com/example/pedidos/internal/models"
	"github.com/example/pedidos/internal/orderbuilder"
	"github.com/example/pedidos/internal/store"
	"github.com/example/pedidos/internal/utils"
)

// OrderHandler manages order endpoints. Incoming items carry only a product
// reference and a size map; descriptions, prices and totals are resolved and
// recomputed server-side through the order builder, never trusted from the
// request.
type OrderHandler struct {
	clients  *store.ClientStore
	products *store.ProductStore
	orders   *store.OrderStore
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{
		clients:  store.NewClientStore(db),
		products: store.NewProductStore(db),
		orders:   store.NewOrderStore(db),
	}
}

type orderItemRequest struct {
	Reference string         `json:"reference"`
	Sizes     map[string]int `json:"sizes"`
}

type orderRequest struct {
	ClientID      string             `json:"client_id"`
	Items         []orderItemRequest `json:"items"`
	Freight       string             `json:"freight"`
	PaymentTerms  string             `json:"payment_terms"`
	PaymentMethod string             `json:"payment_method"`
}

// CreateOrder builds and persists a new order from references and size maps.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	return h.saveOrder(c, nil)
}

// UpdateOrder re-saves an existing order's items and terms under the same
// identifier.
func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	existing, err := h.orders.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return h.saveOrder(c, &existing)
}

func (h *OrderHandler) saveOrder(c *fiber.Ctx, existing *models.Order) error {
	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid client_id")
	}

	clients, err := h.clients.List(c.Context())
	if err != nil {
		return err
	}
	products, err := h.products.List(c.Context())
	if err != nil {
		return err
	}

	builder := orderbuilder.New(clients, products)
	if existing != nil {
		builder.LoadOrder(*existing)
		// The request carries the full cart, not a diff.
		for len(builder.Cart()) > 0 {
			if err := builder.RemoveItem(0); err != nil {
				return err
			}
		}
	}

	if err := builder.SelectClientByID(clientID); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "client not found")
	}

	for _, item := range req.Items {
		builder.SetReference(item.Reference)
		if builder.ActiveProduct() == nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("unknown product reference %q", item.Reference))
		}
		for size, qty := range item.Sizes {
			builder.SetSizeQuantity(size, strconv.Itoa(qty))
		}
		if err := builder.AddItem(); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("reference %q: no quantity entered", item.Reference))
		}
	}

	if req.Freight != "" {
		if err := builder.SetFreight(req.Freight); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	builder.SetPaymentTerms(req.PaymentTerms)
	if req.PaymentMethod != "" {
		if err := builder.SetPaymentMethod(req.PaymentMethod); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	order, err := builder.Save(c.Context(), h.orders)
	if err != nil {
		if errors.Is(err, orderbuilder.ErrNoClient) || errors.Is(err, orderbuilder.ErrEmptyCart) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	status := fiber.StatusCreated
	if existing != nil {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{"success": true, "data": order})
}

// ListOrders returns paginated orders, newest first.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	orders, err := h.orders.List(c.Context())
	if err != nil {
		return err
	}

	total := int64(len(orders))
	lo, hi := pg.Window(len(orders))

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       orders[lo:hi],
		"pagination": pg.Block(total),
	})
}

// GetOrder returns a single order with its items.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, _, err := h.loadOrder(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": order})
}

// ImportOrder persists a raw order document from the previous store,
// normalizing its legacy field names and date representation.
func (h *OrderHandler) ImportOrder(c *fiber.Ctx) error {
	var doc map[string]any
	if err := c.BodyParser(&doc); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	order, err := h.orders.ImportDocument(c.Context(), doc)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

// OrderDocument streams the printable PDF summary of an order.
func (h *OrderHandler) OrderDocument(c *fiber.Ctx) error {
	order, client, err := h.loadOrder(c)
	if err != nil {
		return err
	}

	pdfBytes, err := export.OrderPDF(order, client)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", "Pedido_"+order.ID.String()[:8]+".pdf"))
	return c.Send(pdfBytes)
}

// OrderWhatsApp returns the prefilled share link and message for an order.
func (h *OrderHandler) OrderWhatsApp(c *fiber.Ctx) error {
	order, client, err := h.loadOrder(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"link":    export.WhatsAppLink(order, client),
			"message": export.WhatsAppMessage(order, client),
		},
	})
}

func (h *OrderHandler) loadOrder(c *fiber.Ctx) (models.Order, models.Client, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return models.Order{}, models.Client{}, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	order, err := h.orders.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Order{}, models.Client{}, fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return models.Order{}, models.Client{}, err
	}

	client, err := h.clients.Get(c.Context(), order.ClientID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return models.Order{}, models.Client{}, err
	}
	return order, client, nil
}
