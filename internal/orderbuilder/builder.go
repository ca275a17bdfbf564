// Package orderbuilder implements the order-entry workflow: client selection,
// product lookup by reference, per-size quantity entry, cart accumulation and
// final assembly of the composite order document.
package orderbuilder

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/example/pedidos/internal/models"
	"github.com/example/pedidos/internal/store"
)

// Errors returned by cart and save operations. They map to disabled buttons
// in the entry UI, not to alerts.
var (
	ErrNoActiveProduct = errors.New("orderbuilder: no active product")
	ErrEmptyQuantity   = errors.New("orderbuilder: no quantity entered")
	ErrNoClient        = errors.New("orderbuilder: no client selected")
	ErrEmptyCart       = errors.New("orderbuilder: cart is empty")
	ErrUnknownFreight  = errors.New("orderbuilder: freight must be FOB or CIF")
	ErrUnknownMethod   = errors.New("orderbuilder: unknown payment method")
)

// Builder owns the state of one order-entry session. It works over client and
// product snapshots loaded up front, so lookups never hit the store. A Builder
// belongs to a single session and is not safe for concurrent use.
type Builder struct {
	clients  []models.Client
	products []models.Product

	client    *models.Client
	reference string
	active    *models.Product
	sizes     map[string]int

	cart []models.OrderItem

	freight       string
	paymentTerms  string
	paymentMethod string

	editing *models.Order
	saved   *models.Order
}

// New constructs a Builder over the given snapshots.
func New(clients []models.Client, products []models.Product) *Builder {
	return &Builder{
		clients:  clients,
		products: products,
		sizes:    map[string]int{},
		freight:  models.FreightFOB,
	}
}

// SelectClient fixes the order's client.
func (b *Builder) SelectClient(client models.Client) {
	c := client
	b.client = &c
}

// SelectClientByID selects a client from the loaded snapshot.
func (b *Builder) SelectClientByID(id uuid.UUID) error {
	for _, c := range b.clients {
		if c.ID == id {
			b.SelectClient(c)
			return nil
		}
	}
	return store.ErrNotFound
}

// Client returns the selected client, or nil.
func (b *Builder) Client() *models.Client {
	return b.client
}

// SetReference feeds the reference input. An exact match against the product
// snapshot activates that product without further interaction; when the text
// stops matching the active product, selection and entered quantities are
// cleared. Empty input clears everything.
func (b *Builder) SetReference(text string) {
	b.reference = text

	if text == "" {
		b.active = nil
		b.sizes = map[string]int{}
		return
	}

	if match := MatchReference(b.products, text); match != nil {
		b.active = match
		return
	}

	if b.active != nil && !strings.EqualFold(b.active.Reference, text) {
		b.active = nil
		b.sizes = map[string]int{}
	}
}

// Reference returns the current reference input.
func (b *Builder) Reference() string {
	return b.reference
}

// ActiveProduct returns the product activated by the reference input, or nil.
func (b *Builder) ActiveProduct() *models.Product {
	return b.active
}

// Suggestions returns the capped product suggestion list for the current
// reference input.
func (b *Builder) Suggestions() []models.Product {
	return FilterProducts(b.products, b.reference)
}

// SearchClients filters the client snapshot for the given query.
func (b *Builder) SearchClients(query string) []models.Client {
	return FilterClients(b.clients, query)
}

// SetSizeQuantity records the quantity entered for one size column. Raw input
// that does not parse as an integer counts as zero; that is not an error,
// just an empty cell. Negative values are accepted as entered. Labels outside
// the size grid are ignored.
func (b *Builder) SetSizeQuantity(size, raw string) {
	if !models.ValidSize(size) {
		return
	}
	qty, err := strconv.Atoi(raw)
	if err != nil {
		qty = 0
	}
	b.sizes[size] = qty
}

// CurrentQuantity sums the quantities entered so far for the active product.
func (b *Builder) CurrentQuantity() int {
	total := 0
	for _, q := range b.sizes {
		total += q
	}
	return total
}

// CurrentLineTotal is the running price of the entry in progress.
func (b *Builder) CurrentLineTotal() float64 {
	if b.active == nil {
		return 0
	}
	return float64(b.CurrentQuantity()) * b.active.Price
}

// AddItem appends the entry in progress to the cart and clears the product
// selection state. Adding the same reference twice yields two separate lines;
// lines are never merged.
func (b *Builder) AddItem() error {
	if b.active == nil {
		return ErrNoActiveProduct
	}
	qty := b.CurrentQuantity()
	if qty <= 0 {
		return ErrEmptyQuantity
	}

	sizes := datatypes.JSONMap{}
	for _, label := range models.Sizes() {
		if q := b.sizes[label]; q != 0 {
			sizes[label] = q
		}
	}

	productID := b.active.ID
	item := models.OrderItem{
		ProductID:   &productID,
		Reference:   b.active.Reference,
		Description: b.active.Description,
		Quantity:    qty,
		UnitPrice:   b.active.Price,
		Total:       float64(qty) * b.active.Price,
		Sizes:       sizes,
		Color:       b.active.Color,
		Sole:        b.active.Sole,
		Material:    b.active.Material,
	}
	b.cart = append(b.cart, item)

	b.reference = ""
	b.active = nil
	b.sizes = map[string]int{}
	return nil
}

// RemoveItem deletes the cart line at index, shifting later lines down.
func (b *Builder) RemoveItem(index int) error {
	if index < 0 || index >= len(b.cart) {
		return errors.New("orderbuilder: cart index out of range")
	}
	b.cart = append(b.cart[:index], b.cart[index+1:]...)
	return nil
}

// Cart returns the cart lines in entry order.
func (b *Builder) Cart() []models.OrderItem {
	return b.cart
}

// TotalValue is the order total, recomputed from the cart on every call.
func (b *Builder) TotalValue() float64 {
	total := 0.0
	for _, item := range b.cart {
		total += item.Total
	}
	return total
}

// TotalPairs is the aggregate pair count across all cart lines.
func (b *Builder) TotalPairs() int {
	total := 0
	for _, item := range b.cart {
		total += item.Quantity
	}
	return total
}

// SetFreight sets the freight term, FOB or CIF.
func (b *Builder) SetFreight(term string) error {
	if !models.ValidFreight(term) {
		return ErrUnknownFreight
	}
	b.freight = term
	return nil
}

// SetPaymentTerms records the free-text payment condition, e.g. "30/60/90".
func (b *Builder) SetPaymentTerms(terms string) {
	b.paymentTerms = terms
}

// SetPaymentMethod sets the payment method to one of the known display
// labels. Empty clears the selection.
func (b *Builder) SetPaymentMethod(label string) error {
	if !models.ValidPaymentMethod(label) {
		return ErrUnknownMethod
	}
	b.paymentMethod = label
	return nil
}

// AssembleOrder builds the composite order document from the session state.
// It requires a selected client and a non-empty cart, and guarantees the
// total invariant: the order total equals the sum of the line totals.
func (b *Builder) AssembleOrder() (models.Order, error) {
	if b.client == nil {
		return models.Order{}, ErrNoClient
	}
	if len(b.cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		ClientID:      b.client.ID,
		ClientName:    b.client.DisplayName(),
		Items:         append([]models.OrderItem(nil), b.cart...),
		TotalValue:    b.TotalValue(),
		Status:        models.StatusPending,
		Freight:       b.freight,
		PaymentTerms:  b.paymentTerms,
		PaymentMethod: b.paymentMethod,
	}
	if b.editing != nil {
		order.ID = b.editing.ID
		order.Status = b.editing.Status
	}
	return order, nil
}

// Save assembles and persists the order: a single create, or an in-place
// update when the session was loaded from an existing order. On success the
// entry state is discarded and the saved order is kept for the confirmation
// actions; on failure everything entered stays intact for a retry.
func (b *Builder) Save(ctx context.Context, orders *store.OrderStore) (models.Order, error) {
	order, err := b.AssembleOrder()
	if err != nil {
		return models.Order{}, err
	}

	if b.editing != nil {
		err = orders.Update(ctx, &order)
	} else {
		err = orders.Create(ctx, &order)
	}
	if err != nil {
		return models.Order{}, err
	}

	saved := order
	client := *b.client
	b.Reset()
	b.saved = &saved
	b.client = &client
	return order, nil
}

// Saved returns the order persisted by the last Save, for the confirmation
// screen's document and share actions. Reset clears it.
func (b *Builder) Saved() *models.Order {
	return b.saved
}

// LoadOrder seeds the session from an existing order so its items and terms
// can be edited and re-saved under the same identifier.
func (b *Builder) LoadOrder(order models.Order) {
	b.Reset()
	o := order
	b.editing = &o
	b.cart = append([]models.OrderItem(nil), order.Items...)
	b.paymentTerms = order.PaymentTerms

	b.freight = order.Freight
	if b.freight == "" {
		b.freight = models.FreightFOB
	}
	b.paymentMethod = order.PaymentMethod
	if b.paymentMethod == "" {
		b.paymentMethod = models.DefaultPaymentMethod
	}

	for _, c := range b.clients {
		if c.ID == order.ClientID {
			b.SelectClient(c)
			break
		}
	}
}

// Reset discards all session state and starts a fresh order.
func (b *Builder) Reset() {
	b.client = nil
	b.reference = ""
	b.active = nil
	b.sizes = map[string]int{}
	b.cart = nil
	b.freight = models.FreightFOB
	b.paymentTerms = ""
	b.paymentMethod = ""
	b.editing = nil
	b.saved = nil
}
