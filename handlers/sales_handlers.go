package handlers

import (
	"time"

	"munshiji/logger"
	"munshiji/models"
	"munshiji/reports"
	"munshiji/utils"

	"github.com/gocarina/gocsv"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// saleCSVRow is the CSV layout of a sale.
type saleCSVRow struct {
	ID           string  `csv:"id"`
	BillNumber   string  `csv:"bill_number"`
	Date         string  `csv:"date"`
	CustomerName string  `csv:"customer_name"`
	CustomerID   string  `csv:"customer_id"`
	TotalAmount  float64 `csv:"total_amount"`
	PaidAmount   float64 `csv:"paid_amount"`
	CreditAmount float64 `csv:"credit_amount"`
	PaymentMode  string  `csv:"payment_mode"`
	ItemsCount   int     `csv:"items_count"`
}

// HandleListSales returns every sale with the ledger summary.
// GET /api/v1/sales
func (h *Handler) HandleListSales(c *fiber.Ctx) error {
	sales := h.store.ListSales()

	return utils.Success(c, fiber.StatusOK, "Sales fetched", "बिक्री सूची", fiber.Map{
		"sales":   sales,
		"summary": reports.SummarizeSales(sales),
	})
}

// HandleCreateSale records a bill from the submitted items.
// POST /api/v1/sales
func (h *Handler) HandleCreateSale(c *fiber.Ctx) error {
	var input models.CreateSaleInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	log := logger.FromFiber(c)
	if !utils.IsKnownPaymentMode(input.PaymentMode) {
		log.Warn("Unrecognised payment mode, recording as paid", zap.String("payment_mode", input.PaymentMode))
	}

	sale := h.store.CreateSale(input)
	log.Info("Sale created",
		zap.String("bill_number", sale.BillNumber),
		zap.Float64("total_amount", sale.TotalAmount),
		zap.String("payment_mode", sale.PaymentMode),
	)

	return utils.Success(c, fiber.StatusCreated, "Sale created", "बिक्री रिकॉर्ड की गई", fiber.Map{"sale": sale})
}

// HandleExportSales downloads the ledger as CSV.
// GET /api/v1/sales/export
func (h *Handler) HandleExportSales(c *fiber.Ctx) error {
	sales := h.store.ListSales()

	rows := make([]*saleCSVRow, 0, len(sales))
	for _, s := range sales {
		row := &saleCSVRow{
			ID:           s.ID,
			BillNumber:   s.BillNumber,
			Date:         s.Date.UTC().Format(time.RFC3339),
			CustomerName: s.CustomerName,
			TotalAmount:  s.TotalAmount,
			PaidAmount:   s.PaidAmount,
			CreditAmount: s.CreditAmount,
			PaymentMode:  s.PaymentMode,
			ItemsCount:   s.ItemsCount,
		}
		if s.CustomerID != nil {
			row.CustomerID = *s.CustomerID
		}
		rows = append(rows, row)
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return err
	}

	c.Attachment("sales.csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(out)
}
