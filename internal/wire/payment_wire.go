package wire

import (
	"hotel-console/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	// POST /api/invoice/{invoiceId}/payment - submit a payment
	r.Post("/api/invoice/{invoiceId}/payment", paymentHandler.SubmitPayment)
}
