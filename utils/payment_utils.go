package utils

import "munshiji/models"

var KnownPaymentModes = map[string]bool{
	models.PaymentModeCash:   true,
	models.PaymentModeUPI:    true,
	models.PaymentModeCredit: true,
}

// IsCreditPayment reports whether the whole bill goes on credit. The match is
// exact; "credit" in lower case is paid up front like any other mode.
func IsCreditPayment(mode string) bool {
	return mode == models.PaymentModeCredit
}

// IsKnownPaymentMode checks the mode against the recognised set.
func IsKnownPaymentMode(mode string) bool {
	return KnownPaymentModes[mode]
}
