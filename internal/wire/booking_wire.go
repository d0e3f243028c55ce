package wire

import (
	"campus-venue-booking/internal/adaptor"
	"campus-venue-booking/internal/data/repository"
	"campus-venue-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Profile, log))

		// POST /api/bookings - Submit a booking request
		r.Post("/api/bookings", bookingHandler.Submit)

		// GET /api/user/bookings - Caller's own booking history
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// GET /api/bookings/{id} - Booking details (owner or approver)
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

		// PUT /api/bookings/{id} - Edit a still-pending booking (owner)
		r.Put("/api/bookings/{id}", bookingHandler.UpdateBooking)

		// DELETE /api/bookings/{id} - Withdraw a still-pending booking (owner)
		r.Delete("/api/bookings/{id}", bookingHandler.Withdraw)

		// Approval routes are open to any authenticated caller; the service's
		// role policy admits faculty and admins only.
		// PUT /api/bookings/{id}/approve - Approve a pending booking
		r.Put("/api/bookings/{id}/approve", bookingHandler.Approve)

		// PUT /api/bookings/{id}/reject - Reject a pending booking
		r.Put("/api/bookings/{id}/reject", bookingHandler.Reject)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Profile, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/bookings - All bookings (?status=&priority=)
		r.Get("/", bookingHandler.ListAllBookings)

		// GET /api/admin/bookings/stats - Dashboard counters
		r.Get("/stats", bookingHandler.Stats)
	})
}
