package response

import (
	"time"

	"hotel-console/internal/data/entity"
)

// InvoiceRow is the flat shape the payments screen renders per invoice.
type InvoiceRow struct {
	InvoiceID     int64     `json:"invoiceID"`
	BookingID     int64     `json:"bookingID"`
	RoomNo        int       `json:"roomNo"`
	GuestName     string    `json:"guestName"`
	IssuedDate    time.Time `json:"issuedDate"`
	DueDate       time.Time `json:"dueDate"`
	TotalAmount   float64   `json:"totalAmount"`
	InvoiceStatus string    `json:"invoiceStatus"`
}

func InvoicesToRows(invoices []entity.Invoice) []InvoiceRow {
	rows := make([]InvoiceRow, 0, len(invoices))
	for i := range invoices {
		invoice := &invoices[i]
		booking := invoice.Billing.Booking
		rows = append(rows, InvoiceRow{
			InvoiceID:     invoice.InvoiceID,
			BookingID:     booking.BookingID,
			RoomNo:        booking.Room.RoomNo,
			GuestName:     booking.Guest.Name,
			IssuedDate:    invoice.IssuedDate,
			DueDate:       invoice.DueDate,
			TotalAmount:   invoice.TotalAmount,
			InvoiceStatus: string(invoice.InvoiceStatus),
		})
	}
	return rows
}
