package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/pedidos/internal/models"
	"github.com/example/pedidos/internal/orderbuilder"
	"github.com/example/pedidos/internal/store"
	"github.com/example/pedidos/internal/utils"
)

// ClientHandler manages client endpoints.
type ClientHandler struct {
	clients *store.ClientStore
	orders  *store.OrderStore
}

// NewClientHandler constructs ClientHandler.
func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{
		clients: store.NewClientStore(db),
		orders:  store.NewOrderStore(db),
	}
}

// ListClients returns paginated clients, optionally filtered by a search
// term matched against name, company name or phone.
func (h *ClientHandler) ListClients(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	clients, err := h.clients.List(c.Context())
	if err != nil {
		return err
	}

	if search := c.Query("search"); search != "" {
		clients = orderbuilder.FilterClients(clients, search)
	}

	total := int64(len(clients))
	lo, hi := pg.Window(len(clients))

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       clients[lo:hi],
		"pagination": pg.Block(total),
	})
}

// GetClient returns a single client by ID.
func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	client, err := h.clients.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "client not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": client})
}

// CreateClient persists a new client.
func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var payload models.Client
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phone is required")
	}

	payload.ID = uuid.Nil
	if err := h.clients.Save(c.Context(), &payload); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateClient updates an existing client with merge semantics.
func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var payload models.Client
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	payload.ID = id
	if err := h.clients.Save(c.Context(), &payload); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "client not found")
		}
		return err
	}

	client, err := h.clients.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": client})
}

// DeleteClient removes a client by ID.
func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.clients.Delete(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListClientOrders returns the order history of one client.
func (h *ClientHandler) ListClientOrders(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	orders, err := h.orders.ListByClient(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": orders})
}
