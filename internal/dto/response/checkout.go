package response

import (
	"time"

	"hotel-console/internal/data/entity"
)

// ServiceLine is one room-service row on the invoice view. Display only:
// the invoice total never depends on these lines being present.
type ServiceLine struct {
	ServiceName   string  `json:"serviceName"`
	ServicePrice  float64 `json:"servicePrice"`
	ServiceStatus string  `json:"serviceStatus"`
}

// InvoiceView flattens the upstream Invoice→Billing→Booking→Room/Guest
// graph into the shape the invoice screen renders.
type InvoiceView struct {
	InvoiceID         int64     `json:"invoiceID"`
	BillingID         int64     `json:"billingID"`
	BookingID         int64     `json:"bookingID"`
	RoomID            int64     `json:"roomID"`
	RoomNo            int       `json:"roomNo"`
	RoomType          string    `json:"roomType"`
	PricePerNight     float64   `json:"pricePerNight"`
	GuestID           int64     `json:"guestID"`
	GuestName         string    `json:"guestName"`
	CheckIn           time.Time `json:"checkIn"`
	CheckOut          time.Time `json:"checkOut"`
	TotalDaysSpent    int       `json:"totalDaysSpent"`
	BillingStatus     string    `json:"billingStatus"`
	BillingDate       time.Time `json:"billingDate"`
	InvoiceIssuedDate time.Time `json:"invoiceIssuedDate"`
	DueDate           time.Time `json:"dueDate"`
	TotalAmount       float64   `json:"totalAmount"`
	InvoiceStatus     string    `json:"invoiceStatus"`
}

// CheckoutAggregate is the full result of one checkout run. PaymentDue
// tells the UI whether the payment control is reachable; Warnings carry
// non-fatal step failures (checkout initiation, room-service fetch).
type CheckoutAggregate struct {
	BookingID  int64         `json:"bookingId"`
	State      string        `json:"state"`
	Invoice    *InvoiceView  `json:"invoice,omitempty"`
	Services   []ServiceLine `json:"services"`
	Warnings   []string      `json:"warnings,omitempty"`
	PaymentDue bool          `json:"paymentDue"`
}

func InvoiceToView(invoice *entity.Invoice) *InvoiceView {
	booking := invoice.Billing.Booking
	return &InvoiceView{
		InvoiceID:         invoice.InvoiceID,
		BillingID:         invoice.Billing.BillingID,
		BookingID:         booking.BookingID,
		RoomID:            booking.Room.RoomID,
		RoomNo:            booking.Room.RoomNo,
		RoomType:          booking.Room.RoomType,
		PricePerNight:     booking.Room.PricePerNight,
		GuestID:           booking.Guest.GuestID,
		GuestName:         booking.Guest.Name,
		CheckIn:           booking.CheckIn,
		CheckOut:          booking.CheckOut,
		TotalDaysSpent:    booking.TotalDays,
		BillingStatus:     invoice.Billing.BillingStatus,
		BillingDate:       invoice.Billing.BillingDate,
		InvoiceIssuedDate: invoice.IssuedDate,
		DueDate:           invoice.DueDate,
		TotalAmount:       invoice.TotalAmount,
		InvoiceStatus:     string(invoice.InvoiceStatus),
	}
}

func RoomServicesToLines(services []entity.RoomService) []ServiceLine {
	lines := make([]ServiceLine, 0, len(services))
	for _, service := range services {
		lines = append(lines, ServiceLine{
			ServiceName:   service.ServiceType.ServiceName,
			ServicePrice:  service.ServiceType.ServicePrice,
			ServiceStatus: string(service.ServiceRoomStatus),
		})
	}
	return lines
}
