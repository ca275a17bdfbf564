package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/example/pedidos/internal/models"
)

func sampleOrder(t *testing.T) (models.Order, models.Client) {
	t.Helper()
	client := models.Client{
		CompanyName: "Calçados Silva",
		Name:        "João Silva",
		Phone:       "(34) 99999-0000",
		City:        "Uberlândia",
		State:       "MG",
		CpfCnpj:     "12.345.678/0001-90",
	}
	client.ID = uuid.New()

	order := models.Order{
		ClientID:     client.ID,
		ClientName:   client.DisplayName(),
		TotalValue:   503.50,
		Status:       models.StatusPending,
		Freight:      models.FreightFOB,
		PaymentTerms: "30/60/90",
		Items: []models.OrderItem{
			{
				Reference:   "323",
				Description: "BOTINA AGROLEV ELASTICO",
				Quantity:    3,
				UnitPrice:   78.00,
				Total:       234.00,
				Sizes:       datatypes.JSONMap{"38": 2, "39": 1},
			},
			{
				Reference: "4001",
				Quantity:  5,
				UnitPrice: 53.90,
				Total:     269.50,
				Sizes:     datatypes.JSONMap{"40": 5},
			},
		},
	}
	order.ID = uuid.New()
	return order, client
}

func TestFormatBRL(t *testing.T) {
	cases := map[float64]string{
		0:        "R$ 0,00",
		78:       "R$ 78,00",
		503.5:    "R$ 503,50",
		1234.56:  "R$ 1.234,56",
		1234567:  "R$ 1.234.567,00",
		-1234.56: "-R$ 1.234,56",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatBRL(in))
	}
}

func TestWhatsAppMessage(t *testing.T) {
	order, client := sampleOrder(t)

	msg := WhatsAppMessage(order, client)

	assert.Contains(t, msg, "Olá João Silva")
	assert.Contains(t, msg, "#"+strings.ToUpper(order.ID.String()[:8]))
	assert.Contains(t, msg, "Valor Total: R$ 503,50")
	assert.Contains(t, msg, "Itens: 2")
	assert.Contains(t, msg, "Condição: 30/60/90")
	assert.Contains(t, msg, "Obrigado pela compra!")
}

func TestWhatsAppMessageEmptyTerms(t *testing.T) {
	order, client := sampleOrder(t)
	order.PaymentTerms = ""

	assert.Contains(t, WhatsAppMessage(order, client), "Condição: -")
}

func TestWhatsAppLink(t *testing.T) {
	order, client := sampleOrder(t)

	link := WhatsAppLink(order, client)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/34999990000?text="), link)
	assert.NotContains(t, link, "+", "spaces must be percent-encoded, not plus-encoded")
	assert.Contains(t, link, "%20")
}

func TestOrderPDF(t *testing.T) {
	order, client := sampleOrder(t)

	doc, err := OrderPDF(order, client)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "output starts with the PDF magic")
	assert.Greater(t, len(doc), 1000)
}

func TestOrderPDFWithoutClientDetails(t *testing.T) {
	order, _ := sampleOrder(t)

	// Imported legacy orders may reference a client that no longer exists.
	doc, err := OrderPDF(order, models.Client{})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
