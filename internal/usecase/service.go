package usecase

import (
	"campus-venue-booking/internal/data/repository"
	"campus-venue-booking/pkg/database"
	"campus-venue-booking/pkg/storage"
	"campus-venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Venue    VenueService
	Booking  BookingService
	Document DocumentService
}

func NewService(repo *repository.Repository, locker database.VenueDateLocker, blobs storage.BlobStore, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Venue:    NewVenueService(repo, log),
		Booking:  NewBookingService(repo, locker, blobs, config, log),
		Document: NewDocumentService(repo, blobs, log),
	}
}
