package adaptor

import (
	"campus-venue-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Venue    *VenueHandler
	Booking  *BookingHandler
	Document *DocumentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Venue:    NewVenueHandler(service.Venue, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Document: NewDocumentHandler(service.Document, log),
	}
}
