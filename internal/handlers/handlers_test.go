package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/pedidos/internal/database"
	"github.com/example/pedidos/internal/models"
	"github.com/example/pedidos/internal/routes"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	routes.Register(app, db)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, payload
}

func decodeData(t *testing.T, payload []byte, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &envelope))
	require.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func createClient(t *testing.T, app *fiber.App) models.Client {
	t.Helper()
	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/clients", fiber.Map{
		"company_name": "Calçados Silva",
		"name":         "João Silva",
		"phone":        "(34) 99999-0000",
		"city":         "Uberlândia",
		"state":        "MG",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(payload))

	var client models.Client
	decodeData(t, payload, &client)
	return client
}

func createProduct(t *testing.T, app *fiber.App, reference string, price float64) models.Product {
	t.Helper()
	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"reference":   reference,
		"description": "BOTINA " + reference,
		"price":       price,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(payload))

	var product models.Product
	decodeData(t, payload, &product)
	return product
}

func createOrder(t *testing.T, app *fiber.App) (models.Order, models.Client) {
	t.Helper()
	client := createClient(t, app)
	createProduct(t, app, "323", 78.00)
	createProduct(t, app, "4001", 53.90)

	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/orders", fiber.Map{
		"client_id": client.ID.String(),
		"items": []fiber.Map{
			{"reference": "323", "sizes": fiber.Map{"38": 2, "39": 1}},
			{"reference": "4001", "sizes": fiber.Map{"40": 5}},
		},
		"payment_terms":  "30/60/90",
		"payment_method": "Pix",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(payload))

	var order models.Order
	decodeData(t, payload, &order)
	return order, client
}

func TestClientValidationAndSearch(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/clients", fiber.Map{"name": "Sem Telefone"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "phone is required")

	createClient(t, app)
	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/clients?search=silva", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var clients []models.Client
	decodeData(t, payload, &clients)
	require.Len(t, clients, 1)
	assert.Equal(t, "Calçados Silva", clients[0].CompanyName)
}

func TestClientUpdateMergesFields(t *testing.T) {
	app := setupApp(t)
	client := createClient(t, app)

	resp, payload := doJSON(t, app, fiber.MethodPut, "/api/clients/"+client.ID.String(), fiber.Map{
		"email": "joao@example.com",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Client
	decodeData(t, payload, &updated)
	assert.Equal(t, "joao@example.com", updated.Email)
	assert.Equal(t, client.Phone, updated.Phone, "unset fields keep their values")
}

func TestProductUpsertByReference(t *testing.T) {
	app := setupApp(t)
	first := createProduct(t, app, "323", 78.00)

	// Same reference again: the entry is updated, not duplicated.
	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"reference": "323",
		"price":     82.00,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(payload))

	var second models.Product
	decodeData(t, payload, &second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Description, second.Description,
		"merge update response carries the stored fields, not just the submitted ones")
	assert.InDelta(t, 82.00, second.Price, 1e-9)

	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/products", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var products []models.Product
	decodeData(t, payload, &products)
	require.Len(t, products, 1)
	assert.InDelta(t, 82.00, products[0].Price, 1e-9)
}

func TestProductValidation(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{"price": 10.0})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "reference is required")

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{"reference": "1", "price": -1.0})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "negative price rejected")
}

func TestListPagination(t *testing.T) {
	app := setupApp(t)
	createProduct(t, app, "323", 78.00)
	createProduct(t, app, "327", 81.80)
	createProduct(t, app, "4001", 53.90)

	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/products?page=2&limit=2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Success    bool             `json:"success"`
		Data       []models.Product `json:"data"`
		Pagination struct {
			CurrentPage  int   `json:"current_page"`
			ItemsPerPage int   `json:"items_per_page"`
			TotalItems   int64 `json:"total_items"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(payload, &envelope))
	assert.Len(t, envelope.Data, 1)
	assert.Equal(t, 2, envelope.Pagination.CurrentPage)
	assert.Equal(t, 2, envelope.Pagination.ItemsPerPage)
	assert.Equal(t, int64(3), envelope.Pagination.TotalItems)

	// A page past the end is empty, not an error.
	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/products?page=9&limit=2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var products []models.Product
	decodeData(t, payload, &products)
	assert.Empty(t, products)

	// total_items counts the filtered set, not the whole collection.
	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/products?search=botina%2032&limit=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(payload, &envelope))
	assert.Len(t, envelope.Data, 1)
	assert.Equal(t, int64(2), envelope.Pagination.TotalItems)
}

func TestCreateOrderRecomputesTotals(t *testing.T) {
	app := setupApp(t)
	order, client := createOrder(t, app)

	assert.InDelta(t, 503.50, order.TotalValue, 1e-9)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, "Calçados Silva", order.ClientName)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 234.00, order.Items[0].Total, 1e-9)
	assert.Equal(t, 3, order.Items[0].Quantity)

	// Client history shows the order.
	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/clients/"+client.ID.String()+"/orders", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var history []models.Order
	decodeData(t, payload, &history)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
}

func TestCreateOrderUnknownReference(t *testing.T) {
	app := setupApp(t)
	client := createClient(t, app)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/orders", fiber.Map{
		"client_id": client.ID.String(),
		"items":     []fiber.Map{{"reference": "9999", "sizes": fiber.Map{"38": 1}}},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	app := setupApp(t)
	client := createClient(t, app)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/orders", fiber.Map{
		"client_id": client.ID.String(),
		"items":     []fiber.Map{},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateOrderReplacesCart(t *testing.T) {
	app := setupApp(t)
	order, client := createOrder(t, app)

	resp, payload := doJSON(t, app, fiber.MethodPut, "/api/orders/"+order.ID.String(), fiber.Map{
		"client_id": client.ID.String(),
		"items":     []fiber.Map{{"reference": "323", "sizes": fiber.Map{"42": 1}}},
		"freight":   models.FreightCIF,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(payload))

	var updated models.Order
	decodeData(t, payload, &updated)
	assert.Equal(t, order.ID, updated.ID)
	assert.Equal(t, models.FreightCIF, updated.Freight)
	require.Len(t, updated.Items, 1)
	assert.InDelta(t, 78.00, updated.TotalValue, 1e-9)
}

func TestImportOrderNormalizesLegacyDocument(t *testing.T) {
	app := setupApp(t)

	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/orders/import", fiber.Map{
		"clientName": "Loja Antiga",
		"total":      503.50,
		"date":       1716400000000,
		"items": []fiber.Map{
			{"reference": "323", "quantity": 3, "unitPrice": 78.00, "sizes": fiber.Map{"38": 2, "39": 1}},
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(payload))

	var order models.Order
	decodeData(t, payload, &order)
	assert.InDelta(t, 503.50, order.TotalValue, 1e-9)
	assert.Equal(t, "Loja Antiga", order.ClientName)
	assert.Equal(t, 2024, order.CreatedAt.Year())
}

func TestOrderDocumentIsPDF(t *testing.T) {
	app := setupApp(t)
	order, _ := createOrder(t, app)

	req := httptest.NewRequest(fiber.MethodGet, "/api/orders/"+order.ID.String()+"/document", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "Pedido_")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestOrderWhatsAppShareLink(t *testing.T) {
	app := setupApp(t)
	order, _ := createOrder(t, app)

	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/orders/"+order.ID.String()+"/whatsapp", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var share struct {
		Link    string `json:"link"`
		Message string `json:"message"`
	}
	decodeData(t, payload, &share)
	assert.Contains(t, share.Link, "https://wa.me/34999990000")
	assert.Contains(t, share.Message, "Valor Total: R$ 503,50")
}

func TestReportSummaryEndpoint(t *testing.T) {
	app := setupApp(t)
	createOrder(t, app)

	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/reports/summary?days=7", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary struct {
		TotalRevenue float64        `json:"total_revenue"`
		OrderCount   int            `json:"order_count"`
		TotalPairs   int            `json:"total_pairs"`
		Orders       []models.Order `json:"orders"`
	}
	decodeData(t, payload, &summary)
	assert.Equal(t, 1, summary.OrderCount)
	assert.InDelta(t, 503.50, summary.TotalRevenue, 1e-9)
	assert.Equal(t, 8, summary.TotalPairs)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/reports/summary?days=zero", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/reports/summary?start=%s&end=%s", "2020-01-01", "2020-01-31"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetOrderNotFound(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/orders/00000000-0000-0000-0000-000000000001", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/orders/not-a-uuid", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
