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

type RoomServiceService interface {
	List(ctx context.Context) ([]response.RoomServiceRow, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]response.RoomServiceRow, error)
	Order(ctx context.Context, req *request.OrderRoomServiceRequest) (*response.RoomServiceRow, error)
	Complete(ctx context.Context, serviceRoomID int64) error
	Cancel(ctx context.Context, serviceRoomID int64) error
	AssignStaff(ctx context.Context, serviceRoomID int64, req *request.AssignStaffRequest) error
	Delete(ctx context.Context, serviceRoomID int64) error

	ServiceTypes(ctx context.Context) ([]entity.ServiceType, error)
	CreateServiceType(ctx context.Context, req *request.ServiceTypeRequest) (*entity.ServiceType, error)
	UpdateServiceType(ctx context.Context, serviceTypeID int64, req *request.ServiceTypeRequest) error
	DeleteServiceType(ctx context.Context, serviceTypeID int64) error
}

type roomServiceService struct {
	services gateway.RoomServiceGateway
	log      *zap.Logger
}

func NewRoomServiceService(gw *gateway.Gateway, log *zap.Logger) RoomServiceService {
	return &roomServiceService{
		services: gw.RoomService,
		log:      log.With(zap.String("service", "room_service")),
	}
}

func (s *roomServiceService) List(ctx context.Context) ([]response.RoomServiceRow, error) {
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	return response.RoomServicesToRows(services), nil
}

func (s *roomServiceService) ListByBooking(ctx context.Context, bookingID int64) ([]response.RoomServiceRow, error) {
	if bookingID <= 0 {
		return nil, ErrInvalidBookingReference
	}

	services, err := s.services.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return response.RoomServicesToRows(services), nil
}

func (s *roomServiceService) Order(ctx context.Context, req *request.OrderRoomServiceRequest) (*response.RoomServiceRow, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Order room service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	service, err := s.services.Order(ctx, req.BookingID, req.ServiceTypeID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Room service ordered",
		zap.Int64("service_room_id", service.ServiceRoomID),
		zap.Int64("booking_id", req.BookingID),
		zap.Int64("service_type_id", req.ServiceTypeID),
	)

	row := response.RoomServiceToRow(service)
	return &row, nil
}

func (s *roomServiceService) Complete(ctx context.Context, serviceRoomID int64) error {
	if serviceRoomID <= 0 {
		return fmt.Errorf("%w: invalid room service %d", ErrValidation, serviceRoomID)
	}
	return s.services.Complete(ctx, serviceRoomID)
}

func (s *roomServiceService) Cancel(ctx context.Context, serviceRoomID int64) error {
	if serviceRoomID <= 0 {
		return fmt.Errorf("%w: invalid room service %d", ErrValidation, serviceRoomID)
	}
	return s.services.Cancel(ctx, serviceRoomID)
}

func (s *roomServiceService) AssignStaff(ctx context.Context, serviceRoomID int64, req *request.AssignStaffRequest) error {
	if serviceRoomID <= 0 {
		return fmt.Errorf("%w: invalid room service %d", ErrValidation, serviceRoomID)
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	return s.services.AssignStaff(ctx, serviceRoomID, req.StaffID)
}

func (s *roomServiceService) Delete(ctx context.Context, serviceRoomID int64) error {
	if serviceRoomID <= 0 {
		return fmt.Errorf("%w: invalid room service %d", ErrValidation, serviceRoomID)
	}
	return s.services.Delete(ctx, serviceRoomID)
}

func (s *roomServiceService) ServiceTypes(ctx context.Context) ([]entity.ServiceType, error) {
	return s.services.ServiceTypes(ctx)
}

func (s *roomServiceService) CreateServiceType(ctx context.Context, req *request.ServiceTypeRequest) (*entity.ServiceType, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service type validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	serviceType, err := s.services.CreateServiceType(ctx, req.ServiceName, req.ServicePrice, req.ServiceDescription)
	if err != nil {
		return nil, err
	}

	s.log.Info("Service type created",
		zap.Int64("service_type_id", serviceType.ServiceTypeID),
		zap.String("service_name", serviceType.ServiceName),
	)
	return serviceType, nil
}

func (s *roomServiceService) UpdateServiceType(ctx context.Context, serviceTypeID int64, req *request.ServiceTypeRequest) error {
	if serviceTypeID <= 0 {
		return fmt.Errorf("%w: invalid service type %d", ErrValidation, serviceTypeID)
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	return s.services.UpdateServiceType(ctx, serviceTypeID, req.ServiceName, req.ServicePrice, req.ServiceDescription)
}

func (s *roomServiceService) DeleteServiceType(ctx context.Context, serviceTypeID int64) error {
	if serviceTypeID <= 0 {
		return fmt.Errorf("%w: invalid service type %d", ErrValidation, serviceTypeID)
	}
	return s.services.DeleteServiceType(ctx, serviceTypeID)
}
