package scheduling

import (
	"campus-venue-booking/internal/data/entity"

	"github.com/google/uuid"
)

type Outcome string

const (
	// OutcomeClear: no conflicts, the candidate proceeds to normal approval.
	OutcomeClear Outcome = "clear"
	// OutcomeBlocked: conflicts exist that the candidate may not displace.
	OutcomeBlocked Outcome = "blocked"
	// OutcomeBump: the candidate displaces the listed pending bookings.
	OutcomeBump Outcome = "bump"
)

type Decision struct {
	Outcome Outcome
	Losers  []uuid.UUID
}

// Resolve arbitrates a candidate against its conflicts.
//
// A priority candidate may never bump an approved booking: approval is a
// hard commitment. If any conflict is approved the candidate is blocked
// regardless of its own flag. When only pending non-priority conflicts
// remain, a priority candidate bumps all of them. Partial bumping is
// never performed: the venue slot can hold one approved booking, and
// rejecting only some losers would leave an inconsistent state.
func Resolve(priority bool, conflicts []*entity.Booking) Decision {
	if len(conflicts) == 0 {
		return Decision{Outcome: OutcomeClear}
	}

	if !priority {
		return Decision{Outcome: OutcomeBlocked}
	}

	losers := make([]uuid.UUID, 0, len(conflicts))
	for _, c := range conflicts {
		if c.Status == entity.BookingStatusApproved {
			return Decision{Outcome: OutcomeBlocked}
		}
		if c.Priority {
			// A pending priority booking is a peer, not a loser.
			return Decision{Outcome: OutcomeBlocked}
		}
		losers = append(losers, c.ID)
	}

	return Decision{Outcome: OutcomeBump, Losers: losers}
}
