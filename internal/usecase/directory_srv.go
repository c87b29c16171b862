package usecase

import (
	"context"
	"fmt"

	"hotel-console/internal/data/entity"
	"hotel-console/internal/data/gateway"
	"hotel-console/internal/dto/request"
	"hotel-console/internal/dto/response"
	"hotel-console/pkg/utils"

	"go.uber.org/zap"
)

// ListCache is a read-through cache for the directory listings. A nil
// ListCache disables caching; a failing one degrades to direct upstream
// reads.
type ListCache interface {
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type DirectoryService interface {
	Guests(ctx context.Context) ([]entity.Guest, error)
	Rooms(ctx context.Context) ([]entity.Room, error)
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*entity.Room, error)
	Staff(ctx context.Context) ([]entity.Staff, error)
	Invoices(ctx context.Context) ([]response.InvoiceRow, error)
	Feedbacks(ctx context.Context) ([]entity.Feedback, error)
	DeleteFeedback(ctx context.Context, feedbackID int64) error
}

type directoryService struct {
	directory gateway.DirectoryGateway
	invoices  gateway.InvoiceGateway
	cache     ListCache
	log       *zap.Logger
}

func NewDirectoryService(gw *gateway.Gateway, cache ListCache, log *zap.Logger) DirectoryService {
	return &directoryService{
		directory: gw.Directory,
		invoices:  gw.Invoice,
		cache:     cache,
		log:       log.With(zap.String("service", "directory")),
	}
}

func (s *directoryService) cachedGet(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, out)
	if err != nil {
		s.log.Warn("Cache read failed", zap.Error(err), zap.String("key", key))
		return false
	}
	return hit
}

func (s *directoryService) cachedSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.log.Warn("Cache write failed", zap.Error(err), zap.String("key", key))
	}
}

func (s *directoryService) Guests(ctx context.Context) ([]entity.Guest, error) {
	const key = "console:guests"

	var guests []entity.Guest
	if s.cachedGet(ctx, key, &guests) {
		return guests, nil
	}

	guests, err := s.directory.Guests(ctx)
	if err != nil {
		return nil, err
	}

	s.cachedSet(ctx, key, guests)
	return guests, nil
}

func (s *directoryService) Rooms(ctx context.Context) ([]entity.Room, error) {
	const key = "console:rooms"

	var rooms []entity.Room
	if s.cachedGet(ctx, key, &rooms) {
		return rooms, nil
	}

	rooms, err := s.directory.Rooms(ctx)
	if err != nil {
		return nil, err
	}

	s.cachedSet(ctx, key, rooms)
	return rooms, nil
}

func (s *directoryService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*entity.Room, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	room, err := s.directory.CreateRoom(ctx, req.RoomNo, req.RoomType, req.PricePerNight, entity.RoomStatus(req.RoomStatus), req.RoomDescription)
	if err != nil {
		return nil, err
	}

	s.log.Info("Room created",
		zap.Int64("room_id", room.RoomID),
		zap.Int("room_no", room.RoomNo),
	)
	return room, nil
}

func (s *directoryService) Staff(ctx context.Context) ([]entity.Staff, error) {
	const key = "console:staff"

	var staff []entity.Staff
	if s.cachedGet(ctx, key, &staff) {
		return staff, nil
	}

	staff, err := s.directory.Staff(ctx)
	if err != nil {
		return nil, err
	}

	s.cachedSet(ctx, key, staff)
	return staff, nil
}

func (s *directoryService) Invoices(ctx context.Context) ([]response.InvoiceRow, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	return response.InvoicesToRows(invoices), nil
}

func (s *directoryService) Feedbacks(ctx context.Context) ([]entity.Feedback, error) {
	return s.directory.Feedbacks(ctx)
}

func (s *directoryService) DeleteFeedback(ctx context.Context, feedbackID int64) error {
	if feedbackID <= 0 {
		return fmt.Errorf("%w: invalid feedback %d", ErrValidation, feedbackID)
	}

	if err := s.directory.DeleteFeedback(ctx, feedbackID); err != nil {
		return err
	}

	s.log.Info("Feedback deleted", zap.Int64("feedback_id", feedbackID))
	return nil
}
