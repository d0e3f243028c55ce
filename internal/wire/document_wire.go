package wire

import (
	"campus-venue-booking/internal/adaptor"
	"campus-venue-booking/internal/data/repository"
	"campus-venue-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDocument(
	r chi.Router,
	documentHandler *adaptor.DocumentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// All document routes require auth; ownership checks live in the service.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Profile, log))

		// POST /api/bookings/{id}/documents - Attach an approval document
		r.Post("/api/bookings/{id}/documents", documentHandler.Upload)

		// GET /api/bookings/{id}/documents - List a booking's documents
		r.Get("/api/bookings/{id}/documents", documentHandler.ListByBooking)

		// GET /api/documents/{id}/download - Stream a document
		r.Get("/api/documents/{id}/download", documentHandler.Download)

		// DELETE /api/documents/{id} - Remove a document
		r.Delete("/api/documents/{id}", documentHandler.Delete)
	})
}
