package gateway

import (
	"hotel-console/pkg/hmsapi"

	"go.uber.org/zap"
)

// Gateway groups all upstream API access behind one struct, mirroring how
// the console's services consume it. Every method performs exactly one
// request; retry policy is "the staff presses the button again".
type Gateway struct {
	Booking     BookingGateway
	Billing     BillingGateway
	Invoice     InvoiceGateway
	RoomService RoomServiceGateway
	Payment     PaymentGateway
	Directory   DirectoryGateway
}

func NewGateway(client *hmsapi.Client, log *zap.Logger) *Gateway {
	return &Gateway{
		Booking:     NewBookingGateway(client, log),
		Billing:     NewBillingGateway(client, log),
		Invoice:     NewInvoiceGateway(client, log),
		RoomService: NewRoomServiceGateway(client, log),
		Payment:     NewPaymentGateway(client, log),
		Directory:   NewDirectoryGateway(client, log),
	}
}
