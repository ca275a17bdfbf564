// Package reports derives revenue summaries from persisted orders. It is a
// pure read-side projection; nothing here mutates stored data.
package reports

import (
	"sort"
	"strings"
	"time"

	"github.com/example/pedidos/internal/models"
)

// Filter selects orders for a summary. The range covers the whole end day:
// an order at 23:59:59 of End is included, one on the next day is not. Search
// matches the client name or the order identifier, case-insensitively.
type Filter struct {
	Start  time.Time
	End    time.Time
	Search string
}

// Summary aggregates the matching orders.
type Summary struct {
	TotalRevenue float64        `json:"total_revenue"`
	OrderCount   int            `json:"order_count"`
	TotalPairs   int            `json:"total_pairs"`
	Orders       []models.Order `json:"orders"`
}

// PresetRange builds the date range for the "last N days" dashboard presets.
func PresetRange(days int, now time.Time) Filter {
	return Filter{
		Start: now.AddDate(0, 0, -days),
		End:   now,
	}
}

func (f Filter) matches(order models.Order) bool {
	when := order.CreatedAt
	if !f.Start.IsZero() && when.Before(startOfDay(f.Start)) {
		return false
	}
	if !f.End.IsZero() && !when.Before(startOfDay(f.End).AddDate(0, 0, 1)) {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(order.ClientName), term) ||
		strings.Contains(strings.ToLower(order.ID.String()), term)
}

// Summarize filters the order collection and derives revenue, order count and
// pair count. Matching orders are returned newest first.
func Summarize(orders []models.Order, filter Filter) Summary {
	summary := Summary{Orders: []models.Order{}}

	for _, order := range orders {
		if !filter.matches(order) {
			continue
		}
		summary.Orders = append(summary.Orders, order)
		summary.TotalRevenue += order.TotalValue
		for _, item := range order.Items {
			summary.TotalPairs += item.Quantity
		}
	}

	sort.SliceStable(summary.Orders, func(i, j int) bool {
		return summary.Orders[i].CreatedAt.After(summary.Orders[j].CreatedAt)
	})
	summary.OrderCount = len(summary.Orders)
	return summary
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
