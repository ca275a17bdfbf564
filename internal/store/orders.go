package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/example/pedidos/internal/models"
)

// OrderStore is the adapter for the orders collection. Orders are written as
// one composite document: the order row plus its positioned item rows in a
// single transaction.
type OrderStore struct {
	db *gorm.DB
}

// NewOrderStore constructs OrderStore.
func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Create persists a new order. The creation timestamp is server-assigned and
// item positions follow slice order, which is the entry order of the cart.
func (s *OrderStore) Create(ctx context.Context, order *models.Order) error {
	for i := range order.Items {
		order.Items[i].Position = i
	}
	return s.db.WithContext(ctx).Create(order).Error
}

// Update replaces the items and terms of an existing order while preserving
// its identifier and creation timestamp.
func (s *OrderStore) Update(ctx context.Context, order *models.Order) error {
	if order.ID == uuid.Nil {
		return errors.New("store: update requires an order id")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Order
		if err := tx.First(&existing, "id = ?", order.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}

		updates := map[string]any{
			"client_id":      order.ClientID,
			"client_name":    order.ClientName,
			"total_value":    order.TotalValue,
			"status":         order.Status,
			"freight":        order.Freight,
			"payment_terms":  order.PaymentTerms,
			"payment_method": order.PaymentMethod,
		}
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
			return err
		}

		for i := range order.Items {
			order.Items[i].ID = uuid.Nil
			order.Items[i].OrderID = order.ID
			order.Items[i].Position = i
		}
		if len(order.Items) > 0 {
			if err := tx.Create(&order.Items).Error; err != nil {
				return err
			}
		}

		order.CreatedAt = existing.CreatedAt
		return nil
	})
}

// List returns all orders, newest first, with items in entry order.
func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", itemOrder).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByClient returns the orders of one client, newest first.
func (s *OrderStore) ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", itemOrder).
		Where("client_id = ?", clientID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Get loads one order with its items.
func (s *OrderStore) Get(ctx context.Context, id uuid.UUID) (models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", itemOrder).
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, ErrNotFound
		}
		return order, err
	}
	return order, nil
}

func itemOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

// ImportDocument folds a raw order document from the previous store into the
// canonical schema and persists it. Legacy documents name the total
// "totalValue", "total" or "totalAmount" and carry dates as epoch numbers;
// all of that is normalized here so nothing downstream ever sees the old
// field names.
func (s *OrderStore) ImportDocument(ctx context.Context, doc map[string]any) (models.Order, error) {
	order := models.Order{
		ClientName:    stringField(doc, "clientName", "client_name"),
		Status:        stringField(doc, "status"),
		Freight:       stringField(doc, "freight"),
		PaymentTerms:  stringField(doc, "paymentTerms", "payment_terms"),
		PaymentMethod: stringField(doc, "paymentMethod", "payment_method"),
		TotalValue:    NormalizeOrderTotal(doc),
	}
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if order.Freight == "" {
		order.Freight = models.FreightFOB
	}

	if raw := stringField(doc, "clientId", "client_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			order.ClientID = id
		}
	}

	if when := models.NormalizeDate(doc["date"]); !when.IsZero() {
		order.CreatedAt = when
	}

	rawItems, _ := doc["items"].([]any)
	for i, rawItem := range rawItems {
		fields, ok := rawItem.(map[string]any)
		if !ok {
			continue
		}
		item := models.OrderItem{
			Position:    i,
			Reference:   stringField(fields, "reference"),
			Description: stringField(fields, "description"),
			Quantity:    models.SizeQuantity(fields["quantity"]),
			UnitPrice:   floatField(fields, "unitPrice", "unit_price"),
			Total:       floatField(fields, "total"),
			Color:       stringField(fields, "color"),
			Sole:        stringField(fields, "sole"),
			Material:    stringField(fields, "material"),
		}
		if sizes, ok := fields["sizes"].(map[string]any); ok {
			item.Sizes = datatypes.JSONMap(sizes)
		}
		if item.Total == 0 {
			item.Total = float64(item.Quantity) * item.UnitPrice
		}
		order.Items = append(order.Items, item)
	}

	if order.TotalValue == 0 {
		for _, item := range order.Items {
			order.TotalValue += item.Total
		}
	}

	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// NormalizeOrderTotal reads the order total from a raw document, accepting
// the legacy field names still present in older data.
func NormalizeOrderTotal(doc map[string]any) float64 {
	for _, key := range []string{"totalValue", "total_value", "total", "totalAmount"} {
		if v := floatField(doc, key); v != 0 {
			return v
		}
	}
	return 0
}

func stringField(doc map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := doc[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func floatField(doc map[string]any, keys ...string) float64 {
	for _, key := range keys {
		switch v := doc[key].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case int64:
			return float64(v)
		}
	}
	return 0
}
