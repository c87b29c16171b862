package adaptor

import (
	"net/http"

	"hotel-console/internal/usecase"
	"hotel-console/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	service usecase.CheckoutService
	log     *zap.Logger
}

func NewCheckoutHandler(service usecase.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		log:     log.With(zap.String("handler", "checkout")),
	}
}

// RunCheckout handles POST /api/checkout/{bookingId}
func (h *CheckoutHandler) RunCheckout(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseID(chi.URLParam(r, "bookingId"))
	if err != nil {
		utils.ResponseBadRequest(w, "A valid booking ID is required", nil)
		return
	}

	aggregate, err := h.service.Run(r.Context(), bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "run checkout")
		return
	}

	utils.ResponseSuccess(w, "success", aggregate)
}

// GetCheckoutSession handles GET /api/checkout/{bookingId}
func (h *CheckoutHandler) GetCheckoutSession(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseID(chi.URLParam(r, "bookingId"))
	if err != nil {
		utils.ResponseBadRequest(w, "A valid booking ID is required", nil)
		return
	}

	aggregate, ok := h.service.Session(bookingID)
	if !ok {
		utils.ResponseNotFound(w, "No checkout session for this booking")
		return
	}

	utils.ResponseSuccess(w, "success", aggregate)
}
