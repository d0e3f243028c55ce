package scheduling

import (
	"testing"

	"campus-venue-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBooking(start, end string, status entity.BookingStatus, priority bool) *entity.Booking {
	return &entity.Booking{
		Base:      entity.Base{ID: uuid.New()},
		StartTime: start,
		EndTime:   end,
		Status:    status,
		Priority:  priority,
	}
}

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	i, err := NewInterval(start, end)
	require.NoError(t, err)
	return i
}

func TestFindConflicts_OverlappingPendingAndApproved(t *testing.T) {
	pending := makeBooking("14:00", "16:00", entity.BookingStatusPending, false)
	approved := makeBooking("15:30", "17:00", entity.BookingStatusApproved, false)

	conflicts := FindConflicts(mustInterval(t, "15:00", "17:00"),
		[]*entity.Booking{pending, approved}, uuid.Nil)

	require.Len(t, conflicts, 2)
	assert.Equal(t, pending.ID, conflicts[0].ID)
	assert.Equal(t, approved.ID, conflicts[1].ID)
}

func TestFindConflicts_RejectedNeverConflicts(t *testing.T) {
	rejected := makeBooking("14:00", "16:00", entity.BookingStatusRejected, false)

	conflicts := FindConflicts(mustInterval(t, "14:00", "16:00"),
		[]*entity.Booking{rejected}, uuid.Nil)

	assert.Empty(t, conflicts)

	// Detection is idempotent: repeated calls stay empty.
	conflicts = FindConflicts(mustInterval(t, "14:00", "16:00"),
		[]*entity.Booking{rejected}, uuid.Nil)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_TouchingIntervalsDoNotConflict(t *testing.T) {
	morning := makeBooking("09:00", "10:00", entity.BookingStatusApproved, false)
	late := makeBooking("11:00", "12:00", entity.BookingStatusApproved, false)

	// 10:00-11:00 touches both neighbours but overlaps neither.
	conflicts := FindConflicts(mustInterval(t, "10:00", "11:00"),
		[]*entity.Booking{morning, late}, uuid.Nil)

	assert.Empty(t, conflicts)
}

func TestFindConflicts_ExcludesGivenBooking(t *testing.T) {
	existing := makeBooking("14:00", "16:00", entity.BookingStatusPending, false)

	// Edit-in-place: the booking must not conflict with itself.
	conflicts := FindConflicts(mustInterval(t, "14:30", "15:30"),
		[]*entity.Booking{existing}, existing.ID)

	assert.Empty(t, conflicts)
}

func TestFindConflicts_OrderedByStartThenPriority(t *testing.T) {
	late := makeBooking("15:00", "17:00", entity.BookingStatusPending, false)
	earlyPlain := makeBooking("13:00", "15:30", entity.BookingStatusPending, false)
	earlyPriority := makeBooking("13:00", "14:30", entity.BookingStatusPending, true)

	conflicts := FindConflicts(mustInterval(t, "13:00", "18:00"),
		[]*entity.Booking{late, earlyPlain, earlyPriority}, uuid.Nil)

	require.Len(t, conflicts, 3)
	assert.Equal(t, earlyPriority.ID, conflicts[0].ID)
	assert.Equal(t, earlyPlain.ID, conflicts[1].ID)
	assert.Equal(t, late.ID, conflicts[2].ID)
}
