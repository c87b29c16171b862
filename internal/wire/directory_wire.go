package wire

import (
	"hotel-console/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDirectory(r chi.Router, directoryHandler *adaptor.DirectoryHandler) {
	// GET /api/guest - guest directory
	r.Get("/api/guest", directoryHandler.ListGuests)

	// GET /api/room - room directory
	r.Get("/api/room", directoryHandler.ListRooms)

	// POST /api/room - add a room
	r.Post("/api/room", directoryHandler.CreateRoom)

	// GET /api/staff - staff directory
	r.Get("/api/staff", directoryHandler.ListStaff)

	// GET /api/invoice - invoice history
	r.Get("/api/invoice", directoryHandler.ListInvoices)

	// GET /api/feedback - guest feedback
	r.Get("/api/feedback", directoryHandler.ListFeedbacks)

	// DELETE /api/feedback/{feedbackId} - remove feedback
	r.Delete("/api/feedback/{feedbackId}", directoryHandler.DeleteFeedback)
}
