package wire

import (
	"net/http"

	"hotel-console/internal/adaptor"
	"hotel-console/internal/data/gateway"
	"hotel-console/internal/usecase"
	"hotel-console/pkg/middleware"
	"hotel-console/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(gw *gateway.Gateway, cache usecase.ListCache, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(gw, cache, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireCheckout(r, handler.Checkout)
	wirePayment(r, handler.Payment)
	wireBooking(r, handler.Booking)
	wireRoomService(r, handler.RoomService)
	wireDirectory(r, handler.Directory)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
