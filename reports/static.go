package reports

import (
	"strconv"

	"munshiji/models"
)

const (
	demoRevenue = 345200
	demoCost    = 298400
)

// ProfitAnalysis returns the fixed demo profit report.
func ProfitAnalysis() models.ProfitAnalysis {
	return models.ProfitAnalysis{
		TotalRevenue:       demoRevenue,
		TotalCost:          demoCost,
		GrossProfit:        demoRevenue - demoCost,
		GrossMarginPercent: marginString(demoRevenue, demoCost),
		CategoryWise: []models.CategoryMargin{
			{Category: "व्यक्तिगत देखभाल", Margin: 22, Revenue: 54300},
			{Category: "घर की देखभाल", Margin: 18, Revenue: 38200},
			{Category: "पैक खाद्य", Margin: 12, Revenue: 76200},
			{Category: "अनाज", Margin: 4, Revenue: 98400},
		},
		Recommendations: []string{
			"व्यक्तिगत देखभाल में ज्यादा स्टॉक रखें - सबसे ज्यादा मार्जिन",
			"अनाज पर मार्जिन बढ़ाएं या volume बढ़ाएं",
		},
	}
}

// SeasonalInsights returns the fixed demo seasonal report.
func SeasonalInsights() models.SeasonalInsights {
	return models.SeasonalInsights{
		UpcomingFestival: models.Festival{
			Name:     "होली",
			Date:     "2024-03-25",
			DaysAway: 42,
			Recommendations: []models.RestockRecommendation{
				{Product: "नमकीन", CurrentStock: 25, Recommended: 75, Increase: "200%"},
				{Product: "कोल्ड ड्रिंक", CurrentStock: 48, Recommended: 96, Increase: "100%"},
				{Product: "गुलाल/रंग", CurrentStock: 0, Recommended: 100, Increase: "नया"},
			},
		},
		SeasonalTrends: map[string]map[string]string{
			"गर्मी": {"कोल्ड ड्रिंक": "+120%", "आइसक्रीम": "+200%"},
			"सर्दी": {"चाय": "+80%", "कॉफी": "+60%"},
			"बरसात": {"स्नैक्स": "+40%", "छाता": "+300%"},
		},
	}
}

func formatFixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
