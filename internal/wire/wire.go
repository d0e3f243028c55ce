package wire

import (
	"net/http"

	"campus-venue-booking/internal/adaptor"
	"campus-venue-booking/internal/data/repository"
	"campus-venue-booking/internal/usecase"
	"campus-venue-booking/pkg/database"
	"campus-venue-booking/pkg/middleware"
	"campus-venue-booking/pkg/storage"
	"campus-venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled router
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers, and routes
func Wiring(repo *repository.Repository, locker database.VenueDateLocker, blobs storage.BlobStore, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, locker, blobs, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireVenue(r, handler.Venue, handler.Booking, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireDocument(r, handler.Document, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
