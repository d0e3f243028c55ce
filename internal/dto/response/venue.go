package response

import (
	"time"

	"campus-venue-booking/internal/data/entity"
)

type VenueResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Capacity    int       `json:"capacity"`
	Equipment   []string  `json:"equipment"`
	Available   bool      `json:"available"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func VenueToResponse(venue *entity.Venue) VenueResponse {
	return VenueResponse{
		ID:          venue.ID.String(),
		Name:        venue.Name,
		Type:        venue.Type,
		Capacity:    venue.Capacity,
		Equipment:   venue.Equipment,
		Available:   venue.Available,
		Description: venue.Description,
		CreatedAt:   venue.CreatedAt,
		UpdatedAt:   venue.UpdatedAt,
	}
}
