package response

import (
	"time"

	"campus-venue-booking/internal/data/entity"
)

type BookingResponse struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	VenueID           string     `json:"venue_id"`
	VenueName         string     `json:"venue_name,omitempty"`
	VenueCapacity     int        `json:"venue_capacity,omitempty"`
	EventName         string     `json:"event_name"`
	EventType         string     `json:"event_type"`
	Description       string     `json:"description,omitempty"`
	StartDate         string     `json:"start_date"`
	StartTime         string     `json:"start_time"`
	EndTime           string     `json:"end_time"`
	ExpectedAttendees int        `json:"expected_attendees"`
	Status            string     `json:"status"`
	Priority          bool       `json:"priority"`
	RejectionReason   string     `json:"rejection_reason,omitempty"`
	ApprovedBy        string     `json:"approved_by,omitempty"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// BookingToResponse converts an entity; venue may be nil when the caller
// did not resolve it.
func BookingToResponse(booking *entity.Booking, venue *entity.Venue) BookingResponse {
	resp := BookingResponse{
		ID:                booking.ID.String(),
		UserID:            booking.UserID.String(),
		VenueID:           booking.VenueID.String(),
		EventName:         booking.EventName,
		EventType:         string(booking.EventType),
		Description:       booking.Description,
		StartDate:         booking.DateKey(),
		StartTime:         booking.StartTime,
		EndTime:           booking.EndTime,
		ExpectedAttendees: booking.ExpectedAttendees,
		Status:            string(booking.Status),
		Priority:          booking.Priority,
		ApprovedAt:        booking.ApprovedAt,
		CreatedAt:         booking.CreatedAt,
	}

	if booking.RejectionReason != nil {
		resp.RejectionReason = *booking.RejectionReason
	}
	if booking.ApprovedBy != nil {
		resp.ApprovedBy = booking.ApprovedBy.String()
	}
	if venue != nil {
		resp.VenueName = venue.Name
		resp.VenueCapacity = venue.Capacity
	}

	return resp
}

type BookingStatsResponse struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Priority int64 `json:"priority"`
}
