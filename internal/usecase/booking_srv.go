package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-console/internal/data/gateway"
	"hotel-console/internal/dto/request"
	"hotel-console/internal/dto/response"
	"hotel-console/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	List(ctx context.Context) ([]response.BookingRow, error)
	ListByRoom(ctx context.Context, roomNo int) ([]response.BookingRow, error)
	BookedDates(ctx context.Context, roomNo int) ([]string, error)
	Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingRow, error)
	Cancel(ctx context.Context, bookingID int64) error
	ExtendCheckout(ctx context.Context, bookingID int64, req *request.ExtendCheckoutRequest) (*response.BookingRow, error)
}

type bookingService struct {
	bookings gateway.BookingGateway
	log      *zap.Logger
}

func NewBookingService(gw *gateway.Gateway, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: gw.Booking,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) List(ctx context.Context) ([]response.BookingRow, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	return response.BookingsToRows(bookings), nil
}

func (s *bookingService) ListByRoom(ctx context.Context, roomNo int) ([]response.BookingRow, error) {
	if roomNo <= 0 {
		return nil, fmt.Errorf("%w: invalid room number %d", ErrValidation, roomNo)
	}

	bookings, err := s.bookings.ListByRoom(ctx, roomNo)
	if err != nil {
		return nil, err
	}
	return response.BookingsToRows(bookings), nil
}

func (s *bookingService) BookedDates(ctx context.Context, roomNo int) ([]string, error) {
	if roomNo <= 0 {
		return nil, fmt.Errorf("%w: invalid room number %d", ErrValidation, roomNo)
	}
	return s.bookings.BookedDates(ctx, roomNo)
}

func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingRow, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-in date %q", ErrValidation, req.CheckIn)
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-out date %q", ErrValidation, req.CheckOut)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	}

	booking, err := s.bookings.Create(ctx, req.RoomID, req.GuestID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.BookingID),
		zap.Int64("room_id", req.RoomID),
		zap.Int64("guest_id", req.GuestID),
	)

	row := response.BookingToRow(booking)
	return &row, nil
}

func (s *bookingService) Cancel(ctx context.Context, bookingID int64) error {
	if bookingID <= 0 {
		return ErrInvalidBookingReference
	}

	if err := s.bookings.Cancel(ctx, bookingID); err != nil {
		return err
	}

	s.log.Info("Booking cancelled", zap.Int64("booking_id", bookingID))
	return nil
}

func (s *bookingService) ExtendCheckout(ctx context.Context, bookingID int64, req *request.ExtendCheckoutRequest) (*response.BookingRow, error) {
	if bookingID <= 0 {
		return nil, ErrInvalidBookingReference
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	booking, err := s.bookings.ExtendCheckout(ctx, bookingID, req.Days)
	if err != nil {
		return nil, err
	}

	s.log.Info("Checkout date extended",
		zap.Int64("booking_id", bookingID),
		zap.Int("days", req.Days),
	)

	row := response.BookingToRow(booking)
	return &row, nil
}
