package models

import "time"

// Payment modes recorded on a sale. Any other value is accepted and treated
// like cash.
const (
	PaymentModeCash   = "CASH"
	PaymentModeUPI    = "UPI"
	PaymentModeCredit = "CREDIT"
)

// WalkInCustomer is the customer label for sales without a named customer.
const WalkInCustomer = "Walk-in"

// --- Core Models ---

// Product is a catalog entry with bilingual display names.
type Product struct {
	ID            string  `json:"id"`
	NameHindi     string  `json:"name_hindi"`
	NameEnglish   string  `json:"name_english"`
	Category      string  `json:"category"`
	PurchasePrice float64 `json:"purchase_price"`
	MRP           float64 `json:"mrp"`
	SellingPrice  float64 `json:"selling_price"`
	CurrentStock  int     `json:"current_stock"`
	MinStock      int     `json:"min_stock"`
	MarginPercent float64 `json:"margin_percent"`
	GSTRate       float64 `json:"gst_rate"`
}

// IsLowStock reports whether the product is at or below its minimum stock.
func (p Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStock
}

// Customer is a registered credit customer of the shop.
type Customer struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	Address          string  `json:"address"`
	TotalOutstanding float64 `json:"total_outstanding"`
	CreditLimit      float64 `json:"credit_limit"`
	DaysOverdue      int     `json:"days_overdue"`
	TotalVisits      int     `json:"total_visits"`
}

// Sale represents a single bill.
type Sale struct {
	ID           string    `json:"id"`
	BillNumber   string    `json:"bill_number"`
	Date         time.Time `json:"date"`
	CustomerName string    `json:"customer_name"`
	CustomerID   *string   `json:"customer_id"`
	TotalAmount  float64   `json:"total_amount"`
	PaidAmount   float64   `json:"paid_amount"`
	CreditAmount float64   `json:"credit_amount"`
	PaymentMode  string    `json:"payment_mode"`
	ItemsCount   int       `json:"items_count"`
}

// SaleItem is one line of a bill being created.
type SaleItem struct {
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// --- API Request/Response Structs ---

// CreateSaleInput defines the expected input for creating a new sale.
type CreateSaleInput struct {
	Items        []SaleItem `json:"items"`
	CustomerName string     `json:"customer_name"`
	PaymentMode  string     `json:"payment_mode"`
}

// ProductFilter holds the optional product list filters. Empty fields match
// everything.
type ProductFilter struct {
	Search   string
	Category string
	LowStock bool
}

// SalesSummary aggregates a set of sales.
type SalesSummary struct {
	TotalSales  float64 `json:"total_sales"`
	TotalBills  int     `json:"total_bills"`
	CashSales   float64 `json:"cash_sales"`
	CreditSales float64 `json:"credit_sales"`
}

// CustomersSummary aggregates the customer directory.
type CustomersSummary struct {
	TotalCustomers   int     `json:"total_customers"`
	TotalOutstanding float64 `json:"total_outstanding"`
	OverdueCustomers int     `json:"overdue_customers"`
}
