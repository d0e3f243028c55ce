package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

// IsTerminal reports whether no further status transition is permitted.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusApproved || s == BookingStatusRejected
}

type EventType string

const (
	EventTypeLecture       EventType = "lecture"
	EventTypeSeminar       EventType = "seminar"
	EventTypeConference    EventType = "conference"
	EventTypeMeeting       EventType = "meeting"
	EventTypeWorkshop      EventType = "workshop"
	EventTypeThesisDefense EventType = "thesis-defense"
	EventTypeClubActivity  EventType = "club-activity"
	EventTypeOther         EventType = "other"
)

// RejectionReasonSuperseded is recorded on bookings bumped by a priority
// submission.
const RejectionReasonSuperseded = "superseded by priority booking"

// Booking holds a reservation request for a venue on a calendar date.
// StartTime/EndTime are "15:04" clock strings forming the half-open
// interval [start, end).
type Booking struct {
	Base
	UserID            uuid.UUID     `db:"user_id"`
	VenueID           uuid.UUID     `db:"venue_id"`
	EventName         string        `db:"event_name"`
	EventType         EventType     `db:"event_type"`
	Description       string        `db:"description"`
	StartDate         time.Time     `db:"start_date"`
	StartTime         string        `db:"start_time"`
	EndTime           string        `db:"end_time"`
	ExpectedAttendees int           `db:"expected_attendees"`
	Status            BookingStatus `db:"status"`
	Priority          bool          `db:"priority"`
	RejectionReason   *string       `db:"rejection_reason"`
	ApprovedBy        *uuid.UUID    `db:"approved_by"`
	ApprovedAt        *time.Time    `db:"approved_at"`
}

// DateKey is the canonical date string used for the venue-date lock and
// date-scoped queries.
func (b *Booking) DateKey() string {
	return b.StartDate.Format("2006-01-02")
}
