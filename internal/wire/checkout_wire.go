package wire

import (
	"hotel-console/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCheckout(r chi.Router, checkoutHandler *adaptor.CheckoutHandler) {
	// POST /api/checkout/{bookingId} - run the checkout workflow
	r.Post("/api/checkout/{bookingId}", checkoutHandler.RunCheckout)

	// GET /api/checkout/{bookingId} - current session aggregate
	r.Get("/api/checkout/{bookingId}", checkoutHandler.GetCheckoutSession)
}
