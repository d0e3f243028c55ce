package request

type CreateBookingRequest struct {
	VenueID           string `json:"venue_id" validate:"required,uuid"`
	EventName         string `json:"event_name" validate:"required,min=2,max=200"`
	EventType         string `json:"event_type" validate:"required,oneof=lecture seminar conference meeting workshop thesis-defense club-activity other"`
	Description       string `json:"description" validate:"max=1000"`
	StartDate         string `json:"start_date" validate:"required,datetime=2006-01-02"`
	StartTime         string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime           string `json:"end_time" validate:"required,datetime=15:04"`
	ExpectedAttendees int    `json:"expected_attendees" validate:"required,min=1"`
	Priority          bool   `json:"priority"`
}

type UpdateBookingRequest struct {
	EventName         string `json:"event_name" validate:"required,min=2,max=200"`
	EventType         string `json:"event_type" validate:"required,oneof=lecture seminar conference meeting workshop thesis-defense club-activity other"`
	Description       string `json:"description" validate:"max=1000"`
	StartDate         string `json:"start_date" validate:"required,datetime=2006-01-02"`
	StartTime         string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime           string `json:"end_time" validate:"required,datetime=15:04"`
	ExpectedAttendees int    `json:"expected_attendees" validate:"required,min=1"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type ListConflictsRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}
