// Package reports computes the summaries and canned reports served under
// /api/v1/reports. Daily figures are derived from the sales passed in; the
// profit and seasonal reports are fixed demo content and never read the
// store.
package reports

import (
	"math/rand"
	"time"

	"munshiji/models"
	"munshiji/utils"
)

// DateLayout is the format of report dates.
const DateLayout = "2006-01-02"

const topProductCount = 5

// Random is the source of the simulated top-product quantities.
type Random interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// DefaultRandom draws from math/rand's shared, goroutine-safe source.
var DefaultRandom Random = globalRand{}

// SummarizeSales totals the given sales. Cash sales count only the paid
// amount of CASH bills; credit sales count every bill's credit amount.
func SummarizeSales(sales []models.Sale) models.SalesSummary {
	summary := models.SalesSummary{TotalBills: len(sales)}
	for _, s := range sales {
		summary.TotalSales += s.TotalAmount
		summary.CreditSales += s.CreditAmount
		if s.PaymentMode == models.PaymentModeCash {
			summary.CashSales += s.PaidAmount
		}
	}
	return summary
}

// SummarizeCustomers totals outstanding balances and counts customers more
// than 15 days overdue.
func SummarizeCustomers(customers []models.Customer) models.CustomersSummary {
	summary := models.CustomersSummary{TotalCustomers: len(customers)}
	for _, c := range customers {
		summary.TotalOutstanding += c.TotalOutstanding
		if c.DaysOverdue > 15 {
			summary.OverdueCustomers++
		}
	}
	return summary
}

// SalesOnDay keeps the sales whose timestamp falls on day's calendar date in
// loc.
func SalesOnDay(sales []models.Sale, day time.Time, loc *time.Location) []models.Sale {
	y, m, d := day.In(loc).Date()
	out := make([]models.Sale, 0, len(sales))
	for _, s := range sales {
		sy, sm, sd := s.Date.In(loc).Date()
		if sy == y && sm == m && sd == d {
			out = append(out, s)
		}
	}
	return out
}

// DailySales builds the report for day. Top products are the first five
// catalog entries with a simulated quantity in [5, 25); there is no per-item
// sales history to rank by.
func DailySales(sales []models.Sale, catalog []models.Product, day time.Time, loc *time.Location, rnd Random) models.DailySalesReport {
	if rnd == nil {
		rnd = DefaultRandom
	}
	summary := SummarizeSales(SalesOnDay(sales, day, loc))

	n := topProductCount
	if len(catalog) < n {
		n = len(catalog)
	}
	top := make([]models.TopProduct, 0, n)
	for _, p := range catalog[:n] {
		top = append(top, models.TopProduct{Name: p.NameHindi, QuantitySold: rnd.Intn(20) + 5})
	}

	return models.DailySalesReport{
		Date:        day.In(loc).Format(DateLayout),
		TotalSales:  summary.TotalSales,
		TotalBills:  summary.TotalBills,
		CashSales:   summary.CashSales,
		CreditSales: summary.CreditSales,
		TopProducts: top,
	}
}

// ParseDay parses a YYYY-MM-DD report date in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// marginString formats a percentage with two decimals.
func marginString(revenue, cost float64) string {
	if revenue == 0 {
		return "0.00"
	}
	return formatFixed2(utils.Round((revenue-cost)/revenue*100, 2))
}
