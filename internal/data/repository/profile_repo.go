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

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
}

type profileRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewProfileRepository(db database.PgxIface, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	query := `
		SELECT id, full_name, email, role, student_id, department, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var profile entity.Profile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.Role,
		&profile.StudentID,
		&profile.Department,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile by ID",
			zap.Error(err),
			zap.String("profile_id", id.String()),
		)
		return nil, fmt.Errorf("find profile by ID %s: %w", id.String(), err)
	}

	return &profile, nil
}
