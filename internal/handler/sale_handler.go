package handler

import (
	"strconv"
	"time"

	"github.com/Abiral12/Stock-Management-system/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

const dateLayout = "2006-01-02"

// parseDate accepts a plain date or an RFC3339 timestamp.
func parseDate(s string) (time.Time, bool, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, false, err
}

// parseRange returns an inclusive [start, end] range. A date-only end is
// widened to the last instant of that day so sales made during the end day
// are included.
func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, _, err := parseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, dateOnly, err := parseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if dateOnly {
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return start, end, nil
}

func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var req service.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	sale, product, err := h.service.CreateSale(&req)
	if err != nil {
		return failFromErr(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"sale":    sale,
		"product": product,
	})
}

func (h *SaleHandler) GetSalesTrends(c *fiber.Ctx) error {
	period := c.Query("period", service.PeriodDaily)
	startStr, endStr := c.Query("start"), c.Query("end")
	if startStr == "" || endStr == "" {
		return fail(c, fiber.StatusBadRequest, "start and end are required")
	}

	start, end, err := parseRange(startStr, endStr)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid date range")
	}

	trends, err := h.service.Trends(period, start, end)
	if err != nil {
		return failFromErr(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "trends": trends})
}

func (h *SaleHandler) GetSalesComparison(c *fiber.Ctx) error {
	p1Start, p1End, err := parseRange(c.Query("period1Start"), c.Query("period1End"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid period1 range")
	}
	p2Start, p2End, err := parseRange(c.Query("period2Start"), c.Query("period2End"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid period2 range")
	}

	result, err := h.service.Compare(p1Start, p1End, p2Start, p2End)
	if err != nil {
		return failFromErr(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"period1": result.Period1,
		"period2": result.Period2,
	})
}

func (h *SaleHandler) GetSalesHistory(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(service.DefaultHistoryLimit)))

	result, err := h.service.History(page, limit)
	if err != nil {
		return failFromErr(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"sales":      result.Sales,
		"page":       result.Page,
		"totalPages": result.TotalPages,
		"totalCount": result.TotalCount,
	})
}
