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

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// SubmitPayment handles POST /api/invoice/{invoiceId}/payment
func (h *PaymentHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := utils.ParseID(chi.URLParam(r, "invoiceId"))
	if err != nil {
		utils.ResponseBadRequest(w, "A valid invoice ID is required", nil)
		return
	}

	var req request.SubmitPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	receipt, err := h.service.Submit(r.Context(), invoiceID, req.Amount)
	if err != nil {
		handleServiceError(h.log, w, err, "submit payment")
		return
	}

	utils.ResponseCreated(w, "success", receipt)
}
