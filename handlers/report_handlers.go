package handlers

import (
	"munshiji/reports"
	"munshiji/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleDailySalesReport reports one calendar day in the store time zone,
// today unless ?date=YYYY-MM-DD is given.
// GET /api/v1/reports/daily-sales
func (h *Handler) HandleDailySalesReport(c *fiber.Ctx) error {
	day := h.now()
	if s := c.Query("date"); s != "" {
		parsed, err := reports.ParseDay(s, h.location)
		if err != nil {
			return utils.Error(c, fiber.StatusBadRequest, "Invalid date, use YYYY-MM-DD", "गलत तारीख, YYYY-MM-DD डालें")
		}
		day = parsed
	}

	report := reports.DailySales(h.store.ListSales(), h.store.Products(), day, h.location, h.random)
	return utils.Success(c, fiber.StatusOK, "Daily sales report", "दैनिक बिक्री रिपोर्ट", report)
}

// HandleProfitAnalysis serves the fixed profit report.
// GET /api/v1/reports/profit-analysis
func (h *Handler) HandleProfitAnalysis(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, "Profit analysis", "मुनाफा विश्लेषण", reports.ProfitAnalysis())
}

// HandleSeasonalInsights serves the fixed seasonal report.
// GET /api/v1/reports/seasonal-insights
func (h *Handler) HandleSeasonalInsights(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, "Seasonal insights", "मौसमी जानकारी", reports.SeasonalInsights())
}
