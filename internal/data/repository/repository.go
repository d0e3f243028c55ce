package repository

import (
	"campus-venue-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Profile  ProfileRepository
	Session  SessionRepository
	Venue    VenueRepository
	Booking  BookingRepository
	Document BookingDocumentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Profile:  NewProfileRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Venue:    NewVenueRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Document: NewBookingDocumentRepository(db, log),
	}
}
