package entity

import "time"

type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "Unpaid"
	InvoiceStatusPaid   InvoiceStatus = "Paid"
)

// Invoice is the payable document derived from a billing. The upstream API
// returns the full Billing→Booking→Room/Guest graph nested inside it.
type Invoice struct {
	InvoiceID     int64         `json:"invoiceID"`
	Billing       Billing       `json:"billing"`
	IssuedDate    time.Time     `json:"issuedDate"`
	DueDate       time.Time     `json:"dueDate"`
	TotalAmount   float64       `json:"totalAmount"`
	InvoiceStatus InvoiceStatus `json:"invoiceStatus"`
}
