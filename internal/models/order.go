package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Freight terms: who carries the shipping cost.
const (
	FreightFOB = "FOB"
	FreightCIF = "CIF"
)

// StatusPending is the default status assigned to new orders.
const StatusPending = "pendente"

// DefaultPaymentMethod is preselected in the order edit flow.
const DefaultPaymentMethod = "Boleto Bancário"

type Order struct {
	BaseModel
	ClientID      uuid.UUID   `gorm:"type:uuid;index" json:"client_id"`
	Client        *Client     `json:"client,omitempty"`
	ClientName    string      `json:"client_name"`
	Items         []OrderItem `json:"items,omitempty"`
	TotalValue    float64     `json:"total_value"`
	Status        string      `json:"status"`
	Freight       string      `json:"freight"`
	PaymentTerms  string      `json:"payment_terms"`
	PaymentMethod string      `json:"payment_method"`
}

// OrderItem is one cart line. Description, price, color, sole and material are
// snapshots taken at order time, decoupled from later catalog edits. Sizes maps
// size label to pair count; zero entries are omitted on write.
type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID         `gorm:"type:uuid;index" json:"order_id"`
	Position    int               `gorm:"index" json:"position"`
	ProductID   *uuid.UUID        `gorm:"type:uuid" json:"product_id"`
	Reference   string            `json:"reference"`
	Description string            `json:"description"`
	Quantity    int               `json:"quantity"`
	UnitPrice   float64           `json:"unit_price"`
	Total       float64           `json:"total"`
	Sizes       datatypes.JSONMap `gorm:"type:jsonb" json:"sizes"`
	Color       string            `json:"color"`
	Sole        string            `json:"sole"`
	Material    string            `json:"material"`
}

// SizeCount sums the pair counts across all sizes of the line.
func (i OrderItem) SizeCount() int {
	total := 0
	for _, v := range i.Sizes {
		total += SizeQuantity(v)
	}
	return total
}

// PaymentMethods lists the accepted payment method display labels.
func PaymentMethods() []string {
	return []string{
		"Boleto Bancário",
		"Pix",
		"Cartão de Crédito",
		"Dinheiro",
		"Cheque",
		"Depósito",
	}
}

// ValidPaymentMethod reports whether label is one of the known methods.
// Empty is allowed: the create flow does not force a selection.
func ValidPaymentMethod(label string) bool {
	if label == "" {
		return true
	}
	for _, m := range PaymentMethods() {
		if m == label {
			return true
		}
	}
	return false
}

// ValidFreight reports whether term is FOB or CIF.
func ValidFreight(term string) bool {
	return term == FreightFOB || term == FreightCIF
}
