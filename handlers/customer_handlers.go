package handlers

import (
	"munshiji/reports"
	"munshiji/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleListCustomers returns the customer directory with its summary.
// GET /api/v1/customers
func (h *Handler) HandleListCustomers(c *fiber.Ctx) error {
	customers := h.store.ListCustomers()

	return utils.Success(c, fiber.StatusOK, "Customers fetched", "ग्राहक सूची", fiber.Map{
		"customers": customers,
		"summary":   reports.SummarizeCustomers(customers),
	})
}
