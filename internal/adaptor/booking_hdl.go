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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ListBookings handles GET /api/booking
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ListBookingsByRoom handles GET /api/booking/room/{roomNo}
func (h *BookingHandler) ListBookingsByRoom(w http.ResponseWriter, r *http.Request) {
	roomNo := utils.ParseInt(chi.URLParam(r, "roomNo"), 0)

	bookings, err := h.service.ListByRoom(r.Context(), roomNo)
	if err != nil {
		handleServiceError(h.log, w, err, "list bookings by room")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookedDates handles GET /api/booking/room/{roomNo}/dates
func (h *BookingHandler) GetBookedDates(w http.ResponseWriter, r *http.Request) {
	roomNo := utils.ParseInt(chi.URLParam(r, "roomNo"), 0)

	dates, err := h.service.BookedDates(r.Context(), roomNo)
	if err != nil {
		handleServiceError(h.log, w, err, "get booked dates")
		return
	}

	utils.ResponseSuccess(w, "success", dates)
}

// CreateBooking handles POST /api/booking
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// CancelBooking handles PUT /api/booking/{bookingId}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseID(chi.URLParam(r, "bookingId"))
	if err != nil {
		utils.ResponseBadRequest(w, "A valid booking ID is required", nil)
		return
	}

	if err := h.service.Cancel(r.Context(), bookingID); err != nil {
		handleServiceError(h.log, w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ExtendCheckout handles PATCH /api/booking/{bookingId}/extend
func (h *BookingHandler) ExtendCheckout(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseID(chi.URLParam(r, "bookingId"))
	if err != nil {
		utils.ResponseBadRequest(w, "A valid booking ID is required", nil)
		return
	}

	var req request.ExtendCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.ExtendCheckout(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "extend checkout")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
