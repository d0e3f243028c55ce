package usecase

import (
	"context"
	"fmt"
	"time"

	"campus-venue-booking/internal/data/entity"
	"campus-venue-booking/internal/data/repository"
	"campus-venue-booking/internal/dto/request"
	"campus-venue-booking/internal/dto/response"
	"campus-venue-booking/internal/scheduling"
	"campus-venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VenueService interface {
	// Public reads
	GetVenue(ctx context.Context, venueID string) (*response.VenueResponse, error)
	ListVenues(ctx context.Context, availableOnly bool) ([]response.VenueResponse, error)

	// Admin operations
	CreateVenue(ctx context.Context, actorID string, req *request.CreateVenueRequest) (*response.VenueResponse, error)
	UpdateVenue(ctx context.Context, actorID, venueID string, req *request.UpdateVenueRequest) (*response.VenueResponse, error)
	DisableVenue(ctx context.Context, actorID, venueID string) error
}

type venueService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVenueService(repo *repository.Repository, log *zap.Logger) VenueService {
	return &venueService{
		repo: repo,
		log:  log.With(zap.String("service", "venue")),
	}
}

func (s *venueService) GetVenue(ctx context.Context, venueID string) (*response.VenueResponse, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid venue ID %s", ErrValidation, venueID)
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if venue == nil {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

func (s *venueService) ListVenues(ctx context.Context, availableOnly bool) ([]response.VenueResponse, error) {
	venues, err := s.repo.Venue.FindAll(ctx, availableOnly)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	responses := make([]response.VenueResponse, len(venues))
	for i, venue := range venues {
		responses[i] = response.VenueToResponse(venue)
	}

	return responses, nil
}

func (s *venueService) CreateVenue(ctx context.Context, actorID string, req *request.CreateVenueRequest) (*response.VenueResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if err := s.requireVenueManager(ctx, actorID); err != nil {
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	equipment := req.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	now := time.Now()
	venue := &entity.Venue{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Equipment:   equipment,
		Available:   available,
		Description: req.Description,
	}

	if err := s.repo.Venue.Create(ctx, venue); err != nil {
		s.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("venue_name", req.Name),
		)
		return nil, fmt.Errorf("create venue: %w", err)
	}

	s.log.Info("Venue created",
		zap.String("venue_id", venue.ID.String()),
		zap.String("venue_name", venue.Name),
		zap.Int("capacity", venue.Capacity),
	)

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, actorID, venueID string, req *request.UpdateVenueRequest) (*response.VenueResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if err := s.requireVenueManager(ctx, actorID); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid venue ID %s", ErrValidation, venueID)
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}
	if venue == nil {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	venue.Name = req.Name
	venue.Type = req.Type
	// Capacity changes apply to future approvals only, never retroactively.
	venue.Capacity = req.Capacity
	if req.Equipment != nil {
		venue.Equipment = req.Equipment
	}
	if req.Available != nil {
		venue.Available = *req.Available
	}
	venue.Description = req.Description
	venue.UpdatedAt = time.Now()

	if err := s.repo.Venue.Update(ctx, venue); err != nil {
		s.log.Error("Failed to update venue",
			zap.Error(err),
			zap.String("venue_id", venueID),
		)
		return nil, fmt.Errorf("update venue: %w", err)
	}

	s.log.Info("Venue updated",
		zap.String("venue_id", venueID),
		zap.Int("capacity", venue.Capacity),
		zap.Bool("available", venue.Available),
	)

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

// DisableVenue blocks new submissions against the venue. Existing approved
// bookings stay valid historical records.
func (s *venueService) DisableVenue(ctx context.Context, actorID, venueID string) error {
	if err := s.requireVenueManager(ctx, actorID); err != nil {
		return err
	}

	id, err := uuid.Parse(venueID)
	if err != nil {
		return fmt.Errorf("%w: invalid venue ID %s", ErrValidation, venueID)
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("disable venue: %w", err)
	}
	if venue == nil {
		return fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	if err := s.repo.Venue.SetAvailable(ctx, id, false); err != nil {
		s.log.Error("Failed to disable venue",
			zap.Error(err),
			zap.String("venue_id", venueID),
		)
		return fmt.Errorf("disable venue: %w", err)
	}

	s.log.Info("Venue disabled", zap.String("venue_id", venueID))
	return nil
}

func (s *venueService) requireVenueManager(ctx context.Context, actorID string) error {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("%w: invalid actor ID %s", ErrValidation, actorID)
	}

	actor, err := s.repo.Profile.FindByID(ctx, actorUUID)
	if err != nil {
		return fmt.Errorf("load actor profile: %w", err)
	}
	if actor == nil || !scheduling.Allowed(actor.Role, scheduling.ActionManageVenue) {
		return fmt.Errorf("%w: venue management", ErrPermissionDenied)
	}

	return nil
}
