package utils

import "fmt"

// BillPrefix starts every bill number.
const BillPrefix = "BILL-"

// FormatBillNumber formats a sale sequence number as BILL-NNN. Sequences
// past 999 keep all their digits.
func FormatBillNumber(seq int) string {
	return fmt.Sprintf("%s%03d", BillPrefix, seq)
}
