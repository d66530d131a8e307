package models

// TopProduct is a product line in the daily sales report.
type TopProduct struct {
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
}

// DailySalesReport holds the aggregates for a single calendar day.
type DailySalesReport struct {
	Date        string       `json:"date"`
	TotalSales  float64      `json:"total_sales"`
	TotalBills  int          `json:"total_bills"`
	CashSales   float64      `json:"cash_sales"`
	CreditSales float64      `json:"credit_sales"`
	TopProducts []TopProduct `json:"top_products"`
}

// CategoryMargin is one row of the category-wise profit breakdown.
type CategoryMargin struct {
	Category string  `json:"category"`
	Margin   float64 `json:"margin"`
	Revenue  float64 `json:"revenue"`
}

// ProfitAnalysis is the profit report. Its figures are fixed demo content.
type ProfitAnalysis struct {
	TotalRevenue       float64          `json:"total_revenue"`
	TotalCost          float64          `json:"total_cost"`
	GrossProfit        float64          `json:"gross_profit"`
	GrossMarginPercent string           `json:"gross_margin_percent"`
	CategoryWise       []CategoryMargin `json:"category_wise"`
	Recommendations    []string         `json:"recommendations"`
}

// RestockRecommendation suggests a stock level ahead of a festival.
type RestockRecommendation struct {
	Product      string `json:"product"`
	CurrentStock int    `json:"current_stock"`
	Recommended  int    `json:"recommended"`
	Increase     string `json:"increase"`
}

type Festival struct {
	Name            string                  `json:"name"`
	Date            string                  `json:"date"`
	DaysAway        int                     `json:"days_away"`
	Recommendations []RestockRecommendation `json:"recommendations"`
}

// SeasonalInsights is the seasonal report. Its figures are fixed demo content.
type SeasonalInsights struct {
	UpcomingFestival Festival                     `json:"upcoming_festival"`
	SeasonalTrends   map[string]map[string]string `json:"seasonal_trends"`
}
