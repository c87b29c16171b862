package usecase

import (
	"hotel-console/internal/data/gateway"

	"go.uber.org/zap"
)

// Service bundles every use case the console exposes.
type Service struct {
	Checkout    CheckoutService
	Payment     PaymentService
	Booking     BookingService
	RoomService RoomServiceService
	Directory   DirectoryService
}

func NewService(gw *gateway.Gateway, cache ListCache, log *zap.Logger) *Service {
	return &Service{
		Checkout:    NewCheckoutService(gw, log),
		Payment:     NewPaymentService(gw, log),
		Booking:     NewBookingService(gw, log),
		RoomService: NewRoomServiceService(gw, log),
		Directory:   NewDirectoryService(gw, cache, log),
	}
}
