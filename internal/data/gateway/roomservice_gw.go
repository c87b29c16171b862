package gateway

import (
	"context"
	"fmt"
	"net/http"

	"hotel-console/internal/data/entity"
	"hotel-console/pkg/hmsapi"

	"go.uber.org/zap"
)

type RoomServiceGateway interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]entity.RoomService, error)
	List(ctx context.Context) ([]entity.RoomService, error)
	Order(ctx context.Context, bookingID, serviceTypeID int64) (*entity.RoomService, error)
	Complete(ctx context.Context, serviceRoomID int64) error
	Cancel(ctx context.Context, serviceRoomID int64) error
	AssignStaff(ctx context.Context, serviceRoomID, staffID int64) error
	Delete(ctx context.Context, serviceRoomID int64) error

	ServiceTypes(ctx context.Context) ([]entity.ServiceType, error)
	CreateServiceType(ctx context.Context, name string, price float64, description string) (*entity.ServiceType, error)
	UpdateServiceType(ctx context.Context, serviceTypeID int64, name string, price float64, description string) error
	DeleteServiceType(ctx context.Context, serviceTypeID int64) error
}

type roomServiceGateway struct {
	client *hmsapi.Client
	log    *zap.Logger
}

func NewRoomServiceGateway(client *hmsapi.Client, log *zap.Logger) RoomServiceGateway {
	return &roomServiceGateway{
		client: client,
		log:    log.With(zap.String("gateway", "room_service")),
	}
}

func (g *roomServiceGateway) ListByBooking(ctx context.Context, bookingID int64) ([]entity.RoomService, error) {
	var services []entity.RoomService
	path := fmt.Sprintf("/room-service/by-booking/%d", bookingID)
	if err := g.client.Do(ctx, http.MethodGet, path, nil, &services); err != nil {
		return nil, fmt.Errorf("list room services of booking %d: %w", bookingID, err)
	}
	return services, nil
}

func (g *roomServiceGateway) List(ctx context.Context) ([]entity.RoomService, error) {
	var services []entity.RoomService
	if err := g.client.Do(ctx, http.MethodGet, "/room-service", nil, &services); err != nil {
		g.log.Error("Failed to list room services", zap.Error(err))
		return nil, fmt.Errorf("list room services: %w", err)
	}
	return services, nil
}

func (g *roomServiceGateway) Order(ctx context.Context, bookingID, serviceTypeID int64) (*entity.RoomService, error) {
	body := map[string]any{
		"bookingId":     bookingID,
		"serviceTypeId": serviceTypeID,
	}

	var service entity.RoomService
	if err := g.client.Do(ctx, http.MethodPost, "/room-service", body, &service); err != nil {
		g.log.Error("Failed to order room service",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
			zap.Int64("service_type_id", serviceTypeID),
		)
		return nil, fmt.Errorf("order room service for booking %d: %w", bookingID, err)
	}
	return &service, nil
}

func (g *roomServiceGateway) Complete(ctx context.Context, serviceRoomID int64) error {
	path := fmt.Sprintf("/room-service/%d/complete", serviceRoomID)
	if err := g.client.Do(ctx, http.MethodPatch, path, nil, nil); err != nil {
		g.log.Error("Failed to complete room service",
			zap.Error(err),
			zap.Int64("service_room_id", serviceRoomID),
		)
		return fmt.Errorf("complete room service %d: %w", serviceRoomID, err)
	}
	return nil
}

func (g *roomServiceGateway) Cancel(ctx context.Context, serviceRoomID int64) error {
	path := fmt.Sprintf("/room-service/%d/cancel", serviceRoomID)
	if err := g.client.Do(ctx, http.MethodPatch, path, nil, nil); err != nil {
		g.log.Error("Failed to cancel room service",
			zap.Error(err),
			zap.Int64("service_room_id", serviceRoomID),
		)
		return fmt.Errorf("cancel room service %d: %w", serviceRoomID, err)
	}
	return nil
}

func (g *roomServiceGateway) AssignStaff(ctx context.Context, serviceRoomID, staffID int64) error {
	path := fmt.Sprintf("/room-service/%d/assign/%d", serviceRoomID, staffID)
	if err := g.client.Do(ctx, http.MethodPatch, path, nil, nil); err != nil {
		g.log.Error("Failed to assign staff to room service",
			zap.Error(err),
			zap.Int64("service_room_id", serviceRoomID),
			zap.Int64("staff_id", staffID),
		)
		return fmt.Errorf("assign staff %d to room service %d: %w", staffID, serviceRoomID, err)
	}
	return nil
}

func (g *roomServiceGateway) Delete(ctx context.Context, serviceRoomID int64) error {
	path := fmt.Sprintf("/room-service/%d", serviceRoomID)
	if err := g.client.Do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		g.log.Error("Failed to delete room service",
			zap.Error(err),
			zap.Int64("service_room_id", serviceRoomID),
		)
		return fmt.Errorf("delete room service %d: %w", serviceRoomID, err)
	}
	return nil
}

func (g *roomServiceGateway) ServiceTypes(ctx context.Context) ([]entity.ServiceType, error) {
	var types []entity.ServiceType
	if err := g.client.Do(ctx, http.MethodGet, "/service-type", nil, &types); err != nil {
		g.log.Error("Failed to list service types", zap.Error(err))
		return nil, fmt.Errorf("list service types: %w", err)
	}
	return types, nil
}

func (g *roomServiceGateway) CreateServiceType(ctx context.Context, name string, price float64, description string) (*entity.ServiceType, error) {
	body := map[string]any{
		"serviceName":        name,
		"servicePrice":       price,
		"serviceDescription": description,
	}

	var serviceType entity.ServiceType
	if err := g.client.Do(ctx, http.MethodPost, "/service-type", body, &serviceType); err != nil {
		g.log.Error("Failed to create service type",
			zap.Error(err),
			zap.String("service_name", name),
		)
		return nil, fmt.Errorf("create service type %q: %w", name, err)
	}
	return &serviceType, nil
}

func (g *roomServiceGateway) UpdateServiceType(ctx context.Context, serviceTypeID int64, name string, price float64, description string) error {
	body := map[string]any{
		"serviceName":        name,
		"servicePrice":       price,
		"serviceDescription": description,
	}

	path := fmt.Sprintf("/service-type/%d", serviceTypeID)
	if err := g.client.Do(ctx, http.MethodPut, path, body, nil); err != nil {
		g.log.Error("Failed to update service type",
			zap.Error(err),
			zap.Int64("service_type_id", serviceTypeID),
		)
		return fmt.Errorf("update service type %d: %w", serviceTypeID, err)
	}
	return nil
}

func (g *roomServiceGateway) DeleteServiceType(ctx context.Context, serviceTypeID int64) error {
	path := fmt.Sprintf("/service-type/%d", serviceTypeID)
	if err := g.client.Do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		g.log.Error("Failed to delete service type",
			zap.Error(err),
			zap.Int64("service_type_id", serviceTypeID),
		)
		return fmt.Errorf("delete service type %d: %w", serviceTypeID, err)
	}
	return nil
}
