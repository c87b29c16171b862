package wire

import (
	"hotel-console/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/booking", func(r chi.Router) {
		// GET /api/booking - list all bookings
		r.Get("/", bookingHandler.ListBookings)

		// POST /api/booking - create a booking
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/booking/room/{roomNo} - bookings for one room
		r.Get("/room/{roomNo}", bookingHandler.ListBookingsByRoom)

		// GET /api/booking/room/{roomNo}/dates - occupied dates for one room
		r.Get("/room/{roomNo}/dates", bookingHandler.GetBookedDates)

		// PUT /api/booking/{bookingId}/cancel - cancel a booking
		r.Put("/{bookingId}/cancel", bookingHandler.CancelBooking)

		// PATCH /api/booking/{bookingId}/extend - push the checkout date
		r.Patch("/{bookingId}/extend", bookingHandler.ExtendCheckout)
	})
}
