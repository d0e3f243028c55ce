package scheduling

import (
	"sort"

	"campus-venue-booking/internal/data/entity"

	"github.com/google/uuid"
)

// FindConflicts returns the bookings among existing that overlap the
// candidate interval. Rejected bookings never conflict; a booking with id
// exclude is skipped so an edit-in-place does not conflict with itself.
//
// The result is ordered by start ascending, then priority bookings first,
// which is the order the arbitrator selects bump losers in.
func FindConflicts(candidate Interval, existing []*entity.Booking, exclude uuid.UUID) []*entity.Booking {
	var conflicts []*entity.Booking

	for _, b := range existing {
		if b.ID == exclude {
			continue
		}
		if b.Status != entity.BookingStatusPending && b.Status != entity.BookingStatusApproved {
			continue
		}

		interval, err := NewInterval(b.StartTime, b.EndTime)
		if err != nil {
			// Malformed rows cannot be reasoned about; skip rather than
			// block the whole venue.
			continue
		}

		if candidate.Overlaps(interval) {
			conflicts = append(conflicts, b)
		}
	}

	sort.SliceStable(conflicts, func(i, j int) bool {
		si, _ := parseClock(conflicts[i].StartTime)
		sj, _ := parseClock(conflicts[j].StartTime)
		if si != sj {
			return si < sj
		}
		return conflicts[i].Priority && !conflicts[j].Priority
	})

	return conflicts
}
