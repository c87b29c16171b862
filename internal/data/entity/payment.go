package entity

import "time"

// PaymentReceipt is the upstream confirmation for a submitted payment.
// Write-only from the console's perspective: nothing is kept after the
// confirmation has been shown.
type PaymentReceipt struct {
	PaymentID   int64     `json:"paymentID"`
	InvoiceID   int64     `json:"invoiceID"`
	AmountPaid  float64   `json:"amountPaid"`
	PaymentDate time.Time `json:"paymentDate"`
}
