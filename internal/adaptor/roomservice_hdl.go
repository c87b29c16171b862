package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-console/internal/dto/request"
	"hotel-console/internal/usecase"
	"hotel-console/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomServiceHandler struct {
	service usecase.RoomServiceService
	log     *zap.Logger
}

func NewRoomServiceHandler(service usecase.RoomServiceService, log *zap.Logger) *RoomServiceHandler {
	return &RoomServiceHandler{
		service: service,
		log:     log.With(zap.String("handler", "room_service")),
	}
}

// ListRoomServices handles GET /api/room-service
func (h *RoomServiceHandler) ListRoomServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list room services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// ListByBooking handles GET /api/room-service/booking/{bookingId}
func (h *RoomServiceHandler) ListByBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseID(chi.URLParam(r, "bookingId"))
	if err != nil {
		utils.ResponseBadRequest(w, "A valid booking ID is required", nil)
		return
	}

	services, err := h.service.ListByBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "list room services by booking")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// OrderRoomService handles POST /api/room-service
func (h *RoomServiceHandler) OrderRoomService(w http.ResponseWriter, r *http.Request) {
	var req request.OrderRoomServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	service, err := h.service.Order(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "order room service")
		return
	}

	utils.ResponseCreated(w, "success", service)
}

// CompleteRoomService handles PUT /api/room-service/{serviceRoomId}/complete
func (h *RoomServiceHandler) CompleteRoomService(w http.ResponseWriter, r *http.Request) {
	serviceRoomID, err := utils.ParseID(chi.URLParam(r, "serviceRoomId"))
	if err != nil {
		utils.ResponseBadRequest(w, "A valid room service ID is required", nil)
		return
	}

	if err := h.service.Complete(r.Context(), serviceRoomID); err != nil {
		handleServiceError(h.log, w, err, "complete room service")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CancelRoomService handles PUT /api/room-service/{serviceRoomId}/cancel
func (h *RoomServiceHandler) CancelRoomService(w http.ResponseWriter, r *http.Request) {
	serviceRoomID, err := utils.ParseID(chi.URLParam(r, "serviceRoomId"))
	if err != nil {
		utils.ResponseBadRequest(w, "A valid room service ID is required", nil)
		return
	}

	if err := h.service.Cancel(r.Context(), serviceRoomID); err != nil {
		handleServiceError(h.log, w, err, "cancel room service")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// AssignStaff handles PUT /api/room-service/{serviceRoomId}/assign
func (h *RoomServiceHandler) AssignStaff(w http.ResponseWriter, r *http.Request) {
	serviceRoomID, err := utils.ParseID(chi.URLParam(r, "serviceRoomId"))
	if err != nil {
		utils.ResponseBadRequest(w, "A valid room service ID is required", nil)
		return
	}

	var req request.AssignStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.AssignStaff(r.Context(), serviceRoomID, &req); err != nil {
		handleServiceError(h.log, w, err, "assign staff")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// DeleteRoomService handles DELETE /api/room-service/{serviceRoomId}
func (h *RoomServiceHandler) DeleteRoomService(w http.ResponseWriter, r *http.Request) {
	serviceRoomID, err := utils.ParseID(chi.URLParam(r, "serviceRoomId"))
	if err != nil {
		utils.ResponseBadRequest(w, "A valid room service ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), serviceRoomID); err != nil {
		handleServiceError(h.log, w, err, "delete room service")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ListServiceTypes handles GET /api/service-type
func (h *RoomServiceHandler) ListServiceTypes(w http.ResponseWriter, r *http.Request) {
	serviceTypes, err := h.service.ServiceTypes(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list service types")
		return
	}

	utils.ResponseSuccess(w, "success", serviceTypes)
}

// CreateServiceType handles POST /api/service-type
func (h *RoomServiceHandler) CreateServiceType(w http.ResponseWriter, r *http.Request) {
	var req request.ServiceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	serviceType, err := h.service.CreateServiceType(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create service type")
		return
	}

	utils.ResponseCreated(w, "success", serviceType)
}

// UpdateServiceType handles PUT /api/service-type/{serviceTypeId}
func (h *RoomServiceHandler) UpdateServiceType(w http.ResponseWriter, r *http.Request) {
	serviceTypeID, err := utils.ParseID(chi.URLParam(r, "serviceTypeId"))
	if err != nil {
		utils.ResponseBadRequest(w, "A valid service type ID is required", nil)
		return
	}

	var req request.ServiceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateServiceType(r.Context(), serviceTypeID, &req); err != nil {
		handleServiceError(h.log, w, err, "update service type")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// DeleteServiceType handles DELETE /api/service-type/{serviceTypeId}
func (h *RoomServiceHandler) DeleteServiceType(w http.ResponseWriter, r *http.Request) {
	serviceTypeID, err := utils.ParseID(chi.URLParam(r, "serviceTypeId"))
	if err != nil {
		utils.ResponseBadRequest(w, "A valid service type ID is required", nil)
		return
	}

	if err := h.service.DeleteServiceType(r.Context(), serviceTypeID); err != nil {
		handleServiceError(h.log, w, err, "delete service type")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
