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

type DirectoryHandler struct {
	service usecase.DirectoryService
	log     *zap.Logger
}

func NewDirectoryHandler(service usecase.DirectoryService, log *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "directory")),
	}
}

// ListGuests handles GET /api/guest
func (h *DirectoryHandler) ListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := h.service.Guests(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list guests")
		return
	}

	utils.ResponseSuccess(w, "success", guests)
}

// ListRooms handles GET /api/room
func (h *DirectoryHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.Rooms(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// CreateRoom handles POST /api/room
func (h *DirectoryHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// ListStaff handles GET /api/staff
func (h *DirectoryHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.service.Staff(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list staff")
		return
	}

	utils.ResponseSuccess(w, "success", staff)
}

// ListInvoices handles GET /api/invoice
func (h *DirectoryHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.Invoices(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list invoices")
		return
	}

	utils.ResponseSuccess(w, "success", invoices)
}

// ListFeedbacks handles GET /api/feedback
func (h *DirectoryHandler) ListFeedbacks(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.service.Feedbacks(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list feedbacks")
		return
	}

	utils.ResponseSuccess(w, "success", feedbacks)
}

// DeleteFeedback handles DELETE /api/feedback/{feedbackId}
func (h *DirectoryHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	feedbackID, err := utils.ParseID(chi.URLParam(r, "feedbackId"))
	if err != nil {
		utils.ResponseBadRequest(w, "A valid feedback ID is required", nil)
		return
	}

	if err := h.service.DeleteFeedback(r.Context(), feedbackID); err != nil {
		handleServiceError(h.log, w, err, "delete feedback")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
