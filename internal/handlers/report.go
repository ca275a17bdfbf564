package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/pedidos/internal/reports"
	"github.com/example/pedidos/internal/store"
)

// ReportHandler serves the sales report projections.
type ReportHandler struct {
	orders *store.OrderStore
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{orders: store.NewOrderStore(db)}
}

// Summary aggregates orders over a date range. Either days=7|15|30 for the
// dashboard presets or explicit start/end dates (YYYY-MM-DD, end day fully
// included); search narrows by client name or order id.
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	filter := reports.Filter{Search: c.Query("search")}

	if days := c.Query("days"); days != "" {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid days")
		}
		preset := reports.PresetRange(n, time.Now())
		filter.Start, filter.End = preset.Start, preset.End
	} else {
		if start := c.Query("start"); start != "" {
			t, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid start date")
			}
			filter.Start = t
		}
		if end := c.Query("end"); end != "" {
			t, err := time.Parse("2006-01-02", end)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid end date")
			}
			filter.End = t
		}
	}

	orders, err := h.orders.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": reports.Summarize(orders, filter)})
}
