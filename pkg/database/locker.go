package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrLockTimeout is returned when the venue-date lock could not be acquired
// within the configured timeout. Callers may retry with backoff.
var ErrLockTimeout = errors.New("venue-date lock timeout")

// VenueDateLocker serializes decision-making per (venue, date). fn runs
// inside a transaction holding an exclusive advisory lock on that pair;
// bookings on other venues or dates never contend.
type VenueDateLocker interface {
	WithVenueDateLock(ctx context.Context, venueID uuid.UUID, date string, fn func(tx pgx.Tx) error) error
}

type venueDateLocker struct {
	db            PgxIface
	lockTimeoutMS int
}

func NewVenueDateLocker(db PgxIface, lockTimeoutMS int) VenueDateLocker {
	if lockTimeoutMS <= 0 {
		lockTimeoutMS = 3000
	}
	return &venueDateLocker{db: db, lockTimeoutMS: lockTimeoutMS}
}

func (l *venueDateLocker) WithVenueDateLock(ctx context.Context, venueID uuid.UUID, date string, fn func(tx pgx.Tx) error) error {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin venue-date transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// lock_timeout is transaction-local, so a stuck peer cannot block us
	// past the configured bound.
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", l.lockTimeoutMS)); err != nil {
		return fmt.Errorf("set lock timeout: %w", err)
	}

	// Advisory lock scoped to the transaction; released on commit/rollback.
	lockKey := venueID.String() + ":" + date
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", lockKey); err != nil {
		if isLockNotAvailable(err) {
			return fmt.Errorf("lock venue %s on %s: %w", venueID.String(), date, ErrLockTimeout)
		}
		return fmt.Errorf("acquire venue-date lock: %w", err)
	}

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit venue-date transaction: %w", err)
	}

	return nil
}

// isLockNotAvailable matches postgres 55P03 (lock_not_available).
func isLockNotAvailable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "55P03"
}
