package adaptor

import (
	"hotel-console/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Checkout    *CheckoutHandler
	Payment     *PaymentHandler
	Booking     *BookingHandler
	RoomService *RoomServiceHandler
	Directory   *DirectoryHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Checkout:    NewCheckoutHandler(service.Checkout, log),
		Payment:     NewPaymentHandler(service.Payment, log),
		Booking:     NewBookingHandler(service.Booking, log),
		RoomService: NewRoomServiceHandler(service.RoomService, log),
		Directory:   NewDirectoryHandler(service.Directory, log),
	}
}
