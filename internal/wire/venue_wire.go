package wire

import (
	"campus-venue-booking/internal/adaptor"
	"campus-venue-booking/internal/data/repository"
	"campus-venue-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVenue(
	r chi.Router,
	venueHandler *adaptor.VenueHandler,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/venues - List venues (optionally ?available=true)
	r.Get("/api/venues", venueHandler.ListVenues)

	// GET /api/venues/{id} - Venue details
	r.Get("/api/venues/{id}", venueHandler.GetVenue)

	// GET /api/venues/{id}/conflicts - Availability check against a candidate slot
	r.Get("/api/venues/{id}/conflicts", bookingHandler.GetVenueConflicts)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/venues", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Profile, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/venues - Register a venue
		r.Post("/", venueHandler.CreateVenue)

		// PUT /api/admin/venues/{id} - Edit venue attributes
		r.Put("/{id}", venueHandler.UpdateVenue)

		// PUT /api/admin/venues/{id}/disable - Disable a venue for new bookings
		r.Put("/{id}/disable", venueHandler.DisableVenue)
	})
}
