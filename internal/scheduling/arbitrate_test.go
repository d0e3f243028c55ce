package scheduling

import (
	"testing"

	"campus-venue-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_NoConflictsIsClear(t *testing.T) {
	decision := Resolve(true, nil)

	assert.Equal(t, OutcomeClear, decision.Outcome)
	assert.Empty(t, decision.Losers)
}

func TestResolve_NonPriorityWithConflictsIsBlocked(t *testing.T) {
	conflicts := []*entity.Booking{
		makeBooking("14:00", "16:00", entity.BookingStatusPending, false),
	}

	decision := Resolve(false, conflicts)

	assert.Equal(t, OutcomeBlocked, decision.Outcome)
}

func TestResolve_PriorityBumpsPendingNonPriority(t *testing.T) {
	loser := makeBooking("14:00", "16:00", entity.BookingStatusPending, false)

	decision := Resolve(true, []*entity.Booking{loser})

	assert.Equal(t, OutcomeBump, decision.Outcome)
	require.Len(t, decision.Losers, 1)
	assert.Equal(t, loser.ID, decision.Losers[0])
}

func TestResolve_PriorityNeverBumpsApproved(t *testing.T) {
	approved := makeBooking("10:00", "11:00", entity.BookingStatusApproved, false)

	decision := Resolve(true, []*entity.Booking{approved})

	assert.Equal(t, OutcomeBlocked, decision.Outcome)
	assert.Empty(t, decision.Losers)
}

func TestResolve_AnyApprovedConflictBlocksEverything(t *testing.T) {
	// One approved conflict blocks the candidate even when pending
	// non-priority conflicts could otherwise be bumped.
	conflicts := []*entity.Booking{
		makeBooking("13:00", "14:30", entity.BookingStatusPending, false),
		makeBooking("14:00", "15:00", entity.BookingStatusApproved, true),
		makeBooking("15:00", "16:00", entity.BookingStatusPending, false),
	}

	decision := Resolve(true, conflicts)

	assert.Equal(t, OutcomeBlocked, decision.Outcome)
	assert.Empty(t, decision.Losers)
}

func TestResolve_PendingPriorityPeerBlocks(t *testing.T) {
	peer := makeBooking("14:00", "16:00", entity.BookingStatusPending, true)

	decision := Resolve(true, []*entity.Booking{peer})

	assert.Equal(t, OutcomeBlocked, decision.Outcome)
}

func TestResolve_BumpsAllPendingLosers(t *testing.T) {
	// All-or-nothing: a slot holds one approved booking, so every
	// conflicting pending request is bumped together.
	first := makeBooking("13:00", "15:00", entity.BookingStatusPending, false)
	second := makeBooking("14:30", "16:00", entity.BookingStatusPending, false)
	third := makeBooking("15:30", "17:00", entity.BookingStatusPending, false)

	decision := Resolve(true, []*entity.Booking{first, second, third})

	assert.Equal(t, OutcomeBump, decision.Outcome)
	require.Len(t, decision.Losers, 3)
	assert.Contains(t, decision.Losers, first.ID)
	assert.Contains(t, decision.Losers, second.ID)
	assert.Contains(t, decision.Losers, third.ID)
}
