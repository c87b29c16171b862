package gateway

import (
	"context"
	"fmt"
	"net/http"

	"hotel-console/internal/data/entity"
	"hotel-console/pkg/hmsapi"

	"go.uber.org/zap"
)

type BookingGateway interface {
	List(ctx context.Context) ([]entity.Booking, error)
	ListByRoom(ctx context.Context, roomNo int) ([]entity.Booking, error)
	BookedDates(ctx context.Context, roomNo int) ([]string, error)
	Create(ctx context.Context, roomID, guestID int64, checkIn, checkOut string) (*entity.Booking, error)
	Cancel(ctx context.Context, bookingID int64) error
	ExtendCheckout(ctx context.Context, bookingID int64, days int) (*entity.Booking, error)
	InitiateCheckout(ctx context.Context, bookingID int64) error
}

type bookingGateway struct {
	client *hmsapi.Client
	log    *zap.Logger
}

func NewBookingGateway(client *hmsapi.Client, log *zap.Logger) BookingGateway {
	return &bookingGateway{
		client: client,
		log:    log.With(zap.String("gateway", "booking")),
	}
}

func (g *bookingGateway) List(ctx context.Context) ([]entity.Booking, error) {
	var bookings []entity.Booking
	if err := g.client.Do(ctx, http.MethodGet, "/booking", nil, &bookings); err != nil {
		g.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (g *bookingGateway) ListByRoom(ctx context.Context, roomNo int) ([]entity.Booking, error) {
	var bookings []entity.Booking
	path := fmt.Sprintf("/booking/by-room/%d", roomNo)
	if err := g.client.Do(ctx, http.MethodGet, path, nil, &bookings); err != nil {
		g.log.Error("Failed to list bookings of room",
			zap.Error(err),
			zap.Int("room_no", roomNo),
		)
		return nil, fmt.Errorf("list bookings of room %d: %w", roomNo, err)
	}
	return bookings, nil
}

func (g *bookingGateway) BookedDates(ctx context.Context, roomNo int) ([]string, error) {
	var dates []string
	path := fmt.Sprintf("/booking/booked-dates/%d", roomNo)
	if err := g.client.Do(ctx, http.MethodGet, path, nil, &dates); err != nil {
		g.log.Error("Failed to fetch booked dates",
			zap.Error(err),
			zap.Int("room_no", roomNo),
		)
		return nil, fmt.Errorf("booked dates of room %d: %w", roomNo, err)
	}
	return dates, nil
}

func (g *bookingGateway) Create(ctx context.Context, roomID, guestID int64, checkIn, checkOut string) (*entity.Booking, error) {
	body := map[string]any{
		"roomId":   roomID,
		"guestId":  guestID,
		"checkIn":  checkIn,
		"checkOut": checkOut,
	}

	var booking entity.Booking
	if err := g.client.Do(ctx, http.MethodPost, "/booking", body, &booking); err != nil {
		g.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("room_id", roomID),
			zap.Int64("guest_id", guestID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &booking, nil
}

func (g *bookingGateway) Cancel(ctx context.Context, bookingID int64) error {
	path := fmt.Sprintf("/booking/%d/cancel", bookingID)
	if err := g.client.Do(ctx, http.MethodPatch, path, nil, nil); err != nil {
		g.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking %d: %w", bookingID, err)
	}
	return nil
}

func (g *bookingGateway) ExtendCheckout(ctx context.Context, bookingID int64, days int) (*entity.Booking, error) {
	path := fmt.Sprintf("/booking/%d/extend-checkout?days=%d", bookingID, days)

	var booking entity.Booking
	if err := g.client.Do(ctx, http.MethodPatch, path, nil, &booking); err != nil {
		g.log.Error("Failed to extend checkout date",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
			zap.Int("days", days),
		)
		return nil, fmt.Errorf("extend checkout of booking %d: %w", bookingID, err)
	}
	return &booking, nil
}

func (g *bookingGateway) InitiateCheckout(ctx context.Context, bookingID int64) error {
	path := fmt.Sprintf("/booking/%d/initiate-checkout", bookingID)
	if err := g.client.Do(ctx, http.MethodPatch, path, nil, nil); err != nil {
		return fmt.Errorf("initiate checkout of booking %d: %w", bookingID, err)
	}
	return nil
}
