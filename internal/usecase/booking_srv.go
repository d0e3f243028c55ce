package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-venue-booking/internal/data/entity"
	"campus-venue-booking/internal/data/repository"
	"campus-venue-booking/internal/dto/request"
	"campus-venue-booking/internal/dto/response"
	"campus-venue-booking/internal/scheduling"
	"campus-venue-booking/pkg/database"
	"campus-venue-booking/pkg/storage"
	"campus-venue-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type BookingService interface {
	// Requester operations
	Submit(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, userID, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	Withdraw(ctx context.Context, userID, bookingID string) error
	GetBooking(ctx context.Context, actorID, bookingID string) (*response.BookingResponse, error)
	ListUserBookings(ctx context.Context, userID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	// Approver operations
	Approve(ctx context.Context, actorID, bookingID string) (*response.BookingResponse, error)
	Reject(ctx context.Context, actorID, bookingID string, req *request.RejectBookingRequest) (*response.BookingResponse, error)

	// Reads
	ListConflicts(ctx context.Context, venueID string, req *request.ListConflictsRequest) ([]response.BookingResponse, error)
	ListAllBookings(ctx context.Context, filter repository.BookingFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	Stats(ctx context.Context) (*response.BookingStatsResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	locker database.VenueDateLocker
	blobs  storage.BlobStore
	config *utils.Config
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, locker database.VenueDateLocker, blobs storage.BlobStore, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		locker: locker,
		blobs:  blobs,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

// Submit validates a booking request, then decides it inside the venue-date
// critical section: conflict detection, priority arbitration, and the
// resulting state transitions commit as one transaction.
func (s *bookingService) Submit(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid venue ID %s", ErrValidation, req.VenueID)
	}

	interval, err := scheduling.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %s", ErrValidation, req.StartDate)
	}

	// The priority flag is a faculty/admin capability; a student request
	// carrying it is refused rather than silently cleared.
	if req.Priority {
		requester, err := s.repo.Profile.FindByID(ctx, userUUID)
		if err != nil {
			return nil, fmt.Errorf("load requester profile: %w", err)
		}
		if requester == nil || !scheduling.Allowed(requester.Role, scheduling.ActionSetPriority) {
			return nil, fmt.Errorf("%w: priority flag", ErrPermissionDenied)
		}
	}

	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("submit booking: %w", err)
	}
	if venue == nil {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, req.VenueID)
	}
	if !venue.Available {
		return nil, fmt.Errorf("%w: %s", ErrVenueDisabled, venue.Name)
	}
	if req.ExpectedAttendees > venue.Capacity {
		return nil, fmt.Errorf("%w: %d > %d", ErrCapacityExceeded, req.ExpectedAttendees, venue.Capacity)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:            userUUID,
		VenueID:           venueID,
		EventName:         req.EventName,
		EventType:         entity.EventType(req.EventType),
		Description:       req.Description,
		StartDate:         startDate,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		ExpectedAttendees: req.ExpectedAttendees,
		Status:            entity.BookingStatusPending,
		Priority:          req.Priority,
	}

	var decision scheduling.Decision
	err = s.withVenueDateRetry(ctx, venueID, booking.DateKey(), func(tx pgx.Tx) error {
		bookings := s.repo.Booking.WithTx(tx)

		existing, err := bookings.FindForVenueDate(ctx, venueID, startDate)
		if err != nil {
			return err
		}

		conflicts := scheduling.FindConflicts(interval, existing, uuid.Nil)
		decision = scheduling.Resolve(booking.Priority, conflicts)

		switch decision.Outcome {
		case scheduling.OutcomeClear:
			return bookings.Create(ctx, booking)

		case scheduling.OutcomeBlocked:
			if s.config.Booking.BlockedPolicy == utils.BlockedPolicyAutoReject {
				reason := "conflicts with an existing booking"
				booking.Status = entity.BookingStatusRejected
				booking.RejectionReason = &reason
			}
			return bookings.Create(ctx, booking)

		case scheduling.OutcomeBump:
			// Losers fall and the winner is approved in the same
			// transaction; no observer sees one without the other.
			approvedAt := time.Now()
			for _, loserID := range decision.Losers {
				if err := bookings.MarkRejected(ctx, loserID, nil, entity.RejectionReasonSuperseded, approvedAt); err != nil {
					return err
				}
			}
			booking.Status = entity.BookingStatusApproved
			booking.ApprovedAt = &approvedAt
			return bookings.Create(ctx, booking)
		}

		return fmt.Errorf("unknown arbitration outcome %q", decision.Outcome)
	})
	if err != nil {
		return nil, fmt.Errorf("submit booking: %w", err)
	}

	s.log.Info("Booking submitted",
		zap.String("booking_id", booking.ID.String()),
		zap.String("venue_id", venueID.String()),
		zap.String("date", booking.DateKey()),
		zap.String("interval", interval.String()),
		zap.Bool("priority", booking.Priority),
		zap.String("decision", string(decision.Outcome)),
		zap.Int("bumped", len(decision.Losers)),
		zap.String("status", string(booking.Status)),
	)

	resp := response.BookingToResponse(booking, venue)
	return &resp, nil
}

// Approve re-validates inside the critical section: submission-time state
// may be stale by the time a human decides.
func (s *bookingService) Approve(ctx context.Context, actorID, bookingID string) (*response.BookingResponse, error) {
	actor, err := s.requireApprover(ctx, actorID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("approve booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	venue, err := s.repo.Venue.FindByID(ctx, booking.VenueID)
	if err != nil {
		return nil, fmt.Errorf("approve booking: %w", err)
	}
	if venue == nil {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, booking.VenueID.String())
	}

	interval, err := scheduling.NewInterval(booking.StartTime, booking.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	err = s.withVenueDateRetry(ctx, booking.VenueID, booking.DateKey(), func(tx pgx.Tx) error {
		bookings := s.repo.Booking.WithTx(tx)

		current, err := bookings.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
		}
		if current.Status.IsTerminal() {
			return fmt.Errorf("%w: status is %s", ErrTerminalState, current.Status)
		}

		// Capacity is authoritative at approval time.
		if current.ExpectedAttendees > venue.Capacity {
			return fmt.Errorf("%w: %d > %d", ErrCapacityExceeded, current.ExpectedAttendees, venue.Capacity)
		}

		existing, err := bookings.FindForVenueDate(ctx, booking.VenueID, booking.StartDate)
		if err != nil {
			return err
		}

		conflicts := scheduling.FindConflicts(interval, existing, id)
		for _, c := range conflicts {
			if c.Status == entity.BookingStatusApproved {
				return fmt.Errorf("%w: overlaps booking %s", ErrConflictAtApproval, c.ID.String())
			}
		}

		approvedAt := time.Now()
		if err := bookings.MarkApproved(ctx, id, &actor.ID, approvedAt); err != nil {
			return err
		}

		booking = current
		booking.Status = entity.BookingStatusApproved
		booking.ApprovedBy = &actor.ID
		booking.ApprovedAt = &approvedAt
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("approve booking: %w", err)
	}

	s.log.Info("Booking approved",
		zap.String("booking_id", bookingID),
		zap.String("approved_by", actor.ID.String()),
		zap.String("venue_id", booking.VenueID.String()),
	)

	resp := response.BookingToResponse(booking, venue)
	return &resp, nil
}

func (s *bookingService) Reject(ctx context.Context, actorID, bookingID string, req *request.RejectBookingRequest) (*response.BookingResponse, error) {
	if req != nil {
		if errs := utils.ValidateStruct(req); len(errs) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
		}
	}

	actor, err := s.requireApprover(ctx, actorID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reject booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}
	if booking.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: status is %s", ErrTerminalState, booking.Status)
	}

	reason := ""
	if req != nil {
		reason = req.Reason
	}

	rejectedAt := time.Now()
	if err := s.repo.Booking.MarkRejected(ctx, id, &actor.ID, reason, rejectedAt); err != nil {
		return nil, fmt.Errorf("reject booking: %w", err)
	}

	booking.Status = entity.BookingStatusRejected
	booking.RejectionReason = &reason
	booking.ApprovedBy = &actor.ID
	booking.ApprovedAt = &rejectedAt

	s.log.Info("Booking rejected",
		zap.String("booking_id", bookingID),
		zap.String("rejected_by", actor.ID.String()),
		zap.String("reason", reason),
	)

	venue, _ := s.repo.Venue.FindByID(ctx, booking.VenueID)
	resp := response.BookingToResponse(booking, venue)
	return &resp, nil
}

// UpdateBooking lets the owner edit a still-pending request. The edit is
// serialized on the venue-date so the conflict picture it is saved under
// cannot race a concurrent decision.
func (s *bookingService) UpdateBooking(ctx context.Context, userID, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	interval, err := scheduling.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %s", ErrValidation, req.StartDate)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}
	if booking.UserID != userUUID {
		return nil, fmt.Errorf("%w", ErrNotOwner)
	}
	if booking.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: status is %s", ErrTerminalState, booking.Status)
	}

	venue, err := s.repo.Venue.FindByID(ctx, booking.VenueID)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	if venue == nil {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, booking.VenueID.String())
	}
	if req.ExpectedAttendees > venue.Capacity {
		return nil, fmt.Errorf("%w: %d > %d", ErrCapacityExceeded, req.ExpectedAttendees, venue.Capacity)
	}

	err = s.withVenueDateRetry(ctx, booking.VenueID, startDate.Format(dateLayout), func(tx pgx.Tx) error {
		bookings := s.repo.Booking.WithTx(tx)

		current, err := bookings.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
		}
		if current.Status.IsTerminal() {
			return fmt.Errorf("%w: status is %s", ErrTerminalState, current.Status)
		}

		existing, err := bookings.FindForVenueDate(ctx, booking.VenueID, startDate)
		if err != nil {
			return err
		}

		// The booking stays pending either way; conflicts found here are
		// for the approver to weigh, but they are worth surfacing now.
		if conflicts := scheduling.FindConflicts(interval, existing, id); len(conflicts) > 0 {
			s.log.Warn("Edited booking overlaps existing bookings",
				zap.String("booking_id", bookingID),
				zap.Int("conflicts", len(conflicts)),
			)
		}

		current.EventName = req.EventName
		current.EventType = entity.EventType(req.EventType)
		current.Description = req.Description
		current.StartDate = startDate
		current.StartTime = req.StartTime
		current.EndTime = req.EndTime
		current.ExpectedAttendees = req.ExpectedAttendees
		current.UpdatedAt = time.Now()

		booking = current
		return bookings.Update(ctx, current)
	})
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", bookingID),
		zap.String("date", booking.DateKey()),
		zap.String("interval", interval.String()),
	)

	resp := response.BookingToResponse(booking, venue)
	return &resp, nil
}

// Withdraw deletes an owner's still-pending booking along with its
// documents.
func (s *bookingService) Withdraw(ctx context.Context, userID, bookingID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("withdraw booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}
	if booking.UserID != userUUID {
		return fmt.Errorf("%w", ErrNotOwner)
	}
	if booking.Status.IsTerminal() {
		return fmt.Errorf("%w: status is %s", ErrTerminalState, booking.Status)
	}

	docs, err := s.repo.Document.FindByBookingID(ctx, id)
	if err != nil {
		return fmt.Errorf("withdraw booking: %w", err)
	}

	if err := s.repo.Document.DeleteByBookingID(ctx, id); err != nil {
		return fmt.Errorf("withdraw booking: %w", err)
	}
	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		return fmt.Errorf("withdraw booking: %w", err)
	}

	// Blob cleanup is best-effort; orphaned blobs are harmless.
	for _, doc := range docs {
		if err := s.blobs.Delete(ctx, doc.FilePath); err != nil {
			s.log.Warn("Failed to delete document blob",
				zap.Error(err),
				zap.String("file_path", doc.FilePath),
			)
		}
	}

	s.log.Info("Booking withdrawn",
		zap.String("booking_id", bookingID),
		zap.Int("documents_removed", len(docs)),
	)

	return nil
}

func (s *bookingService) GetBooking(ctx context.Context, actorID, bookingID string) (*response.BookingResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid actor ID %s", ErrValidation, actorID)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	// Owners see their own bookings; approvers see all.
	if booking.UserID != actorUUID {
		actor, err := s.repo.Profile.FindByID(ctx, actorUUID)
		if err != nil {
			return nil, fmt.Errorf("get booking: %w", err)
		}
		if actor == nil || !scheduling.Allowed(actor.Role, scheduling.ActionApprove) {
			return nil, fmt.Errorf("%w", ErrNotOwner)
		}
	}

	venue, _ := s.repo.Venue.FindByID(ctx, booking.VenueID)
	resp := response.BookingToResponse(booking, venue)
	return &resp, nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), page.Page, page.PerPage, total), nil
}

// ListConflicts is a lock-free availability check; the approval path
// re-validates under the lock, so slight staleness here is acceptable.
func (s *bookingService) ListConflicts(ctx context.Context, venueID string, req *request.ListConflictsRequest) ([]response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid venue ID %s", ErrValidation, venueID)
	}

	interval, err := scheduling.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %s", ErrValidation, req.Date)
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list conflicts: %w", err)
	}
	if venue == nil {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	existing, err := s.repo.Booking.FindForVenueDate(ctx, id, date)
	if err != nil {
		return nil, fmt.Errorf("list conflicts: %w", err)
	}

	conflicts := scheduling.FindConflicts(interval, existing, uuid.Nil)
	responses := make([]response.BookingResponse, len(conflicts))
	for i, c := range conflicts {
		responses[i] = response.BookingToResponse(c, venue)
	}

	return responses, nil
}

func (s *bookingService) ListAllBookings(ctx context.Context, filter repository.BookingFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), page.Page, page.PerPage, total), nil
}

func (s *bookingService) Stats(ctx context.Context) (*response.BookingStatsResponse, error) {
	stats, err := s.repo.Booking.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("booking stats: %w", err)
	}

	return &response.BookingStatsResponse{
		Total:    stats.Total,
		Pending:  stats.Pending,
		Approved: stats.Approved,
		Priority: stats.Priority,
	}, nil
}

// withVenueDateRetry runs fn under the venue-date lock, retrying bounded
// times with backoff when the lock cannot be acquired in time.
func (s *bookingService) withVenueDateRetry(ctx context.Context, venueID uuid.UUID, date string, fn func(tx pgx.Tx) error) error {
	attempts := s.config.Booking.LockRetries
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = s.locker.WithVenueDateLock(ctx, venueID, date, fn)
		if err == nil || !errors.Is(err, database.ErrLockTimeout) {
			return err
		}

		s.log.Warn("Venue-date lock contention",
			zap.String("venue_id", venueID.String()),
			zap.String("date", date),
			zap.Int("attempt", attempt),
		)

		if attempt < attempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
			}
		}
	}

	return fmt.Errorf("%w: %v", ErrContention, err)
}

func (s *bookingService) requireApprover(ctx context.Context, actorID string) (*entity.Profile, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid actor ID %s", ErrValidation, actorID)
	}

	actor, err := s.repo.Profile.FindByID(ctx, actorUUID)
	if err != nil {
		return nil, fmt.Errorf("load actor profile: %w", err)
	}
	if actor == nil || !scheduling.Allowed(actor.Role, scheduling.ActionApprove) {
		return nil, fmt.Errorf("%w: approval", ErrPermissionDenied)
	}

	return actor, nil
}

func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	// Venue rows are small and repeat across a page; a per-call cache
	// avoids refetching the same venue.
	venues := make(map[uuid.UUID]*entity.Venue)

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		venue, ok := venues[booking.VenueID]
		if !ok {
			venue, _ = s.repo.Venue.FindByID(ctx, booking.VenueID)
			venues[booking.VenueID] = venue
		}
		responses[i] = response.BookingToResponse(booking, venue)
	}

	return responses
}
