package wire

import (
	"hotel-console/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoomService(r chi.Router, roomServiceHandler *adaptor.RoomServiceHandler) {
	r.Route("/api/room-service", func(r chi.Router) {
		// GET /api/room-service - list all room service orders
		r.Get("/", roomServiceHandler.ListRoomServices)

		// POST /api/room-service - order room service for a booking
		r.Post("/", roomServiceHandler.OrderRoomService)

		// GET /api/room-service/booking/{bookingId} - orders for one booking
		r.Get("/booking/{bookingId}", roomServiceHandler.ListByBooking)

		// PUT /api/room-service/{serviceRoomId}/complete - mark completed
		r.Put("/{serviceRoomId}/complete", roomServiceHandler.CompleteRoomService)

		// PUT /api/room-service/{serviceRoomId}/cancel - cancel an order
		r.Put("/{serviceRoomId}/cancel", roomServiceHandler.CancelRoomService)

		// PUT /api/room-service/{serviceRoomId}/assign - assign staff
		r.Put("/{serviceRoomId}/assign", roomServiceHandler.AssignStaff)

		// DELETE /api/room-service/{serviceRoomId} - remove an order
		r.Delete("/{serviceRoomId}", roomServiceHandler.DeleteRoomService)
	})

	r.Route("/api/service-type", func(r chi.Router) {
		// GET /api/service-type - list the service catalog
		r.Get("/", roomServiceHandler.ListServiceTypes)

		// POST /api/service-type - add a catalog entry
		r.Post("/", roomServiceHandler.CreateServiceType)

		// PUT /api/service-type/{serviceTypeId} - update a catalog entry
		r.Put("/{serviceTypeId}", roomServiceHandler.UpdateServiceType)

		// DELETE /api/service-type/{serviceTypeId} - remove a catalog entry
		r.Delete("/{serviceTypeId}", roomServiceHandler.DeleteServiceType)
	})
}
