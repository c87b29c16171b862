package gateway

import (
	"context"
	"fmt"
	"net/http"

	"hotel-console/internal/data/entity"
	"hotel-console/pkg/hmsapi"

	"go.uber.org/zap"
)

// DirectoryGateway serves the read-mostly reference screens: guests, rooms,
// staff and feedback.
type DirectoryGateway interface {
	Guests(ctx context.Context) ([]entity.Guest, error)
	Rooms(ctx context.Context) ([]entity.Room, error)
	CreateRoom(ctx context.Context, roomNo int, roomType string, pricePerNight float64, status entity.RoomStatus, description string) (*entity.Room, error)
	Staff(ctx context.Context) ([]entity.Staff, error)
	Feedbacks(ctx context.Context) ([]entity.Feedback, error)
	DeleteFeedback(ctx context.Context, feedbackID int64) error
}

type directoryGateway struct {
	client *hmsapi.Client
	log    *zap.Logger
}

func NewDirectoryGateway(client *hmsapi.Client, log *zap.Logger) DirectoryGateway {
	return &directoryGateway{
		client: client,
		log:    log.With(zap.String("gateway", "directory")),
	}
}

func (g *directoryGateway) Guests(ctx context.Context) ([]entity.Guest, error) {
	var guests []entity.Guest
	if err := g.client.Do(ctx, http.MethodGet, "/guest", nil, &guests); err != nil {
		g.log.Error("Failed to list guests", zap.Error(err))
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return guests, nil
}

func (g *directoryGateway) Rooms(ctx context.Context) ([]entity.Room, error) {
	var rooms []entity.Room
	if err := g.client.Do(ctx, http.MethodGet, "/room", nil, &rooms); err != nil {
		g.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (g *directoryGateway) CreateRoom(ctx context.Context, roomNo int, roomType string, pricePerNight float64, status entity.RoomStatus, description string) (*entity.Room, error) {
	body := map[string]any{
		"roomNo":          roomNo,
		"roomType":        roomType,
		"pricePerNight":   pricePerNight,
		"roomStatus":      status,
		"roomDescription": description,
	}

	var room entity.Room
	if err := g.client.Do(ctx, http.MethodPost, "/room", body, &room); err != nil {
		g.log.Error("Failed to create room",
			zap.Error(err),
			zap.Int("room_no", roomNo),
		)
		return nil, fmt.Errorf("create room %d: %w", roomNo, err)
	}
	return &room, nil
}

func (g *directoryGateway) Staff(ctx context.Context) ([]entity.Staff, error) {
	var staff []entity.Staff
	if err := g.client.Do(ctx, http.MethodGet, "/staff", nil, &staff); err != nil {
		g.log.Error("Failed to list staff", zap.Error(err))
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return staff, nil
}

func (g *directoryGateway) Feedbacks(ctx context.Context) ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	if err := g.client.Do(ctx, http.MethodGet, "/feedback", nil, &feedbacks); err != nil {
		g.log.Error("Failed to list feedbacks", zap.Error(err))
		return nil, fmt.Errorf("list feedbacks: %w", err)
	}
	return feedbacks, nil
}

func (g *directoryGateway) DeleteFeedback(ctx context.Context, feedbackID int64) error {
	path := fmt.Sprintf("/feedback/%d", feedbackID)
	if err := g.client.Do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		g.log.Error("Failed to delete feedback",
			zap.Error(err),
			zap.Int64("feedback_id", feedbackID),
		)
		return fmt.Errorf("delete feedback %d: %w", feedbackID, err)
	}
	return nil
}
