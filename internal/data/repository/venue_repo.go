package repository

import (
	"context"
	"fmt"

	"campus-venue-booking/internal/data/entity"
	"campus-venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *entity.Venue) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	FindAll(ctx context.Context, availableOnly bool) ([]*entity.Venue, error)
	Update(ctx context.Context, venue *entity.Venue) error
	SetAvailable(ctx context.Context, id uuid.UUID, available bool) error

	// WithTx rebinds the repository to an open transaction.
	WithTx(tx pgx.Tx) VenueRepository
}

type venueRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewVenueRepository(db database.PgxIface, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

func (r *venueRepository) WithTx(tx pgx.Tx) VenueRepository {
	return &venueRepository{db: tx, log: r.log}
}

func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	query := `
		INSERT INTO venues (id, name, type, capacity, equipment, available, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.Type,
		venue.Capacity,
		venue.Equipment,
		venue.Available,
		venue.Description,
		venue.CreatedAt,
		venue.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("venue_name", venue.Name),
		)
		return fmt.Errorf("create venue %s: %w", venue.Name, err)
	}

	return nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	query := `
		SELECT id, name, type, capacity, equipment, available, description, created_at, updated_at
		FROM venues
		WHERE id = $1
	`

	var venue entity.Venue
	err := r.db.QueryRow(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.Type,
		&venue.Capacity,
		&venue.Equipment,
		&venue.Available,
		&venue.Description,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by ID",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return nil, fmt.Errorf("find venue by ID %s: %w", id.String(), err)
	}

	return &venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context, availableOnly bool) ([]*entity.Venue, error) {
	query := `
		SELECT id, name, type, capacity, equipment, available, description, created_at, updated_at
		FROM venues
	`
	if availableOnly {
		query += ` WHERE available = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list venues",
			zap.Error(err),
			zap.Bool("available_only", availableOnly),
		)
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var venues []*entity.Venue
	for rows.Next() {
		var venue entity.Venue
		err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.Type,
			&venue.Capacity,
			&venue.Equipment,
			&venue.Available,
			&venue.Description,
			&venue.CreatedAt,
			&venue.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan venue row", zap.Error(err))
			return nil, fmt.Errorf("scan venue row: %w", err)
		}
		venues = append(venues, &venue)
	}

	return venues, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	query := `
		UPDATE venues
		SET name = $2, type = $3, capacity = $4, equipment = $5,
		    available = $6, description = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.Type,
		venue.Capacity,
		venue.Equipment,
		venue.Available,
		venue.Description,
		venue.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update venue",
			zap.Error(err),
			zap.String("venue_id", venue.ID.String()),
		)
		return fmt.Errorf("update venue %s: %w", venue.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("venue %s not found", venue.ID.String())
	}

	return nil
}

func (r *venueRepository) SetAvailable(ctx context.Context, id uuid.UUID, available bool) error {
	query := `UPDATE venues SET available = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, available)
	if err != nil {
		r.log.Error("Failed to set venue availability",
			zap.Error(err),
			zap.String("venue_id", id.String()),
			zap.Bool("available", available),
		)
		return fmt.Errorf("set venue %s availability: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("venue %s not found", id.String())
	}

	return nil
}
