package utils

import "math"

// MarginPercent is the markup of sellingPrice over purchasePrice, rounded to
// one decimal. A non-positive purchase price yields zero.
func MarginPercent(purchasePrice, sellingPrice float64) float64 {
	if purchasePrice <= 0 {
		return 0
	}
	return Round((sellingPrice-purchasePrice)/purchasePrice*100, 1)
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
