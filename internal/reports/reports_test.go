package reports

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/pedidos/internal/models"
)

func orderAt(t *testing.T, client string, total float64, pairs int, when time.Time) models.Order {
	t.Helper()
	order := models.Order{
		ClientName: client,
		TotalValue: total,
		Status:     models.StatusPending,
		Items:      []models.OrderItem{{Quantity: pairs, Total: total}},
	}
	order.ID = uuid.New()
	order.CreatedAt = when
	return order
}

func TestSummarizeRangeCoversWholeEndDay(t *testing.T) {
	loc := time.UTC
	endDay := time.Date(2026, 8, 20, 0, 0, 0, 0, loc)

	orders := []models.Order{
		orderAt(t, "Dentro", 100, 1, endDay.Add(23*time.Hour+59*time.Minute+59*time.Second)),
		orderAt(t, "Depois", 200, 1, endDay.AddDate(0, 0, 1)),
		orderAt(t, "Antes", 300, 1, endDay.AddDate(0, 0, -10)),
	}

	got := Summarize(orders, Filter{
		Start: time.Date(2026, 8, 15, 12, 0, 0, 0, loc),
		End:   endDay,
	})

	require.Len(t, got.Orders, 1)
	assert.Equal(t, "Dentro", got.Orders[0].ClientName)
	assert.InDelta(t, 100, got.TotalRevenue, 1e-9)
}

func TestSummarizeStartIsInclusiveFromMidnight(t *testing.T) {
	start := time.Date(2026, 8, 15, 18, 0, 0, 0, time.UTC)
	early := orderAt(t, "Madrugada", 50, 1, time.Date(2026, 8, 15, 0, 30, 0, 0, time.UTC))

	got := Summarize([]models.Order{early}, Filter{Start: start})

	assert.Equal(t, 1, got.OrderCount, "the start day counts from midnight, not from the given instant")
}

func TestSummarizeSearch(t *testing.T) {
	now := time.Now()
	silva := orderAt(t, "Calçados Silva", 100, 2, now)
	souza := orderAt(t, "Maria Souza", 200, 3, now)
	orders := []models.Order{silva, souza}

	got := Summarize(orders, Filter{Search: "SILVA"})
	require.Len(t, got.Orders, 1)
	assert.Equal(t, silva.ID, got.Orders[0].ID)

	// The identifier prefix shown on the order card is searchable too.
	got = Summarize(orders, Filter{Search: souza.ID.String()[:8]})
	require.Len(t, got.Orders, 1)
	assert.Equal(t, souza.ID, got.Orders[0].ID)

	got = Summarize(orders, Filter{Search: "ninguém"})
	assert.Empty(t, got.Orders)
	assert.NotNil(t, got.Orders, "empty result is a list, not null")
}

func TestSummarizeTotalsAndOrdering(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderAt(t, "A", 234.00, 3, now.Add(-2*time.Hour)),
		orderAt(t, "B", 269.50, 5, now),
	}

	got := Summarize(orders, Filter{})

	assert.Equal(t, 2, got.OrderCount)
	assert.InDelta(t, 503.50, got.TotalRevenue, 1e-9)
	assert.Equal(t, 8, got.TotalPairs)
	require.Len(t, got.Orders, 2)
	assert.Equal(t, "B", got.Orders[0].ClientName, "newest first")
}

func TestPresetRange(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	f := PresetRange(7, now)

	assert.Equal(t, now, f.End)
	assert.Equal(t, now.AddDate(0, 0, -7), f.Start)

	within := orderAt(t, "Semana", 10, 1, now.Add(-6*24*time.Hour))
	outside := orderAt(t, "Mês passado", 10, 1, now.Add(-40*24*time.Hour))
	got := Summarize([]models.Order{within, outside}, f)
	require.Len(t, got.Orders, 1)
	assert.Equal(t, "Semana", got.Orders[0].ClientName)
}
