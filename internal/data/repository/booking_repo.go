package repository

import (
	"context"
	"fmt"
	"time"

	"campus-venue-booking/internal/data/entity"
	"campus-venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const bookingColumns = `id, user_id, venue_id, event_name, event_type, description,
	start_date, start_time, end_time, expected_attendees, status, priority,
	rejection_reason, approved_by, approved_at, created_at, updated_at`

// BookingFilter narrows admin listings.
type BookingFilter struct {
	Status       entity.BookingStatus
	PriorityOnly bool
}

type BookingStats struct {
	Total    int64
	Pending  int64
	Approved int64
	Priority int64
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*BookingStats, error)

	// Business queries
	FindForVenueDate(ctx context.Context, venueID uuid.UUID, date time.Time) ([]*entity.Booking, error)
	MarkApproved(ctx context.Context, id uuid.UUID, approvedBy *uuid.UUID, at time.Time) error
	MarkRejected(ctx context.Context, id uuid.UUID, rejectedBy *uuid.UUID, reason string, at time.Time) error

	// WithTx rebinds the repository to an open transaction so state
	// transitions commit atomically with the arbitration that chose them.
	WithTx(tx pgx.Tx) BookingRepository
}

type bookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) WithTx(tx pgx.Tx) BookingRepository {
	return &bookingRepository{db: tx, log: r.log}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.VenueID,
		booking.EventName,
		booking.EventType,
		booking.Description,
		booking.StartDate,
		booking.StartTime,
		booking.EndTime,
		booking.ExpectedAttendees,
		booking.Status,
		booking.Priority,
		booking.RejectionReason,
		booking.ApprovedBy,
		booking.ApprovedAt,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("venue_id", booking.VenueID.String()),
		)
		return fmt.Errorf("create booking for venue %s: %w", booking.VenueID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := r.scanRow(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.PriorityOnly {
		query += " AND priority = TRUE"
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("status", string(filter.Status)),
			zap.Bool("priority_only", filter.PriorityOnly),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *bookingRepository) Count(ctx context.Context, filter BookingFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.PriorityOnly {
		query += " AND priority = TRUE"
	}

	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET venue_id = $2, event_name = $3, event_type = $4, description = $5,
		    start_date = $6, start_time = $7, end_time = $8, expected_attendees = $9,
		    priority = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.VenueID,
		booking.EventName,
		booking.EventType,
		booking.Description,
		booking.StartDate,
		booking.StartTime,
		booking.EndTime,
		booking.ExpectedAttendees,
		booking.Priority,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) Stats(ctx context.Context) (*BookingStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'approved'),
		       COUNT(*) FILTER (WHERE priority = TRUE)
		FROM bookings
	`

	var stats BookingStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.Total,
		&stats.Pending,
		&stats.Approved,
		&stats.Priority,
	)
	if err != nil {
		r.log.Error("Failed to load booking stats", zap.Error(err))
		return nil, fmt.Errorf("load booking stats: %w", err)
	}

	return &stats, nil
}

func (r *bookingRepository) FindForVenueDate(ctx context.Context, venueID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	// Rejected bookings are permanently out of conflict detection.
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE venue_id = $1 AND start_date = $2 AND status IN ('pending', 'approved')
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, venueID, date)
	if err != nil {
		r.log.Error("Failed to find bookings for venue date",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
			zap.String("date", date.Format("2006-01-02")),
		)
		return nil, fmt.Errorf("find bookings for venue %s: %w", venueID.String(), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *bookingRepository) MarkApproved(ctx context.Context, id uuid.UUID, approvedBy *uuid.UUID, at time.Time) error {
	query := `
		UPDATE bookings
		SET status = 'approved', approved_by = $2, approved_at = $3, updated_at = $3
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.Exec(ctx, query, id, approvedBy, at)
	if err != nil {
		r.log.Error("Failed to mark booking approved",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("mark booking %s approved: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s is not pending", id.String())
	}

	return nil
}

func (r *bookingRepository) MarkRejected(ctx context.Context, id uuid.UUID, rejectedBy *uuid.UUID, reason string, at time.Time) error {
	query := `
		UPDATE bookings
		SET status = 'rejected', rejection_reason = $2, approved_by = $3, approved_at = $4, updated_at = $4
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.Exec(ctx, query, id, reason, rejectedBy, at)
	if err != nil {
		r.log.Error("Failed to mark booking rejected",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("mark booking %s rejected: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s is not pending", id.String())
	}

	return nil
}

func (r *bookingRepository) scanRow(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.VenueID,
		&booking.EventName,
		&booking.EventType,
		&booking.Description,
		&booking.StartDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.ExpectedAttendees,
		&booking.Status,
		&booking.Priority,
		&booking.RejectionReason,
		&booking.ApprovedBy,
		&booking.ApprovedAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) scanRows(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanRow(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}
