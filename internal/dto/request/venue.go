package request

type CreateVenueRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Type        string   `json:"type" validate:"required,min=2,max=50"`
	Capacity    int      `json:"capacity" validate:"required,min=1"`
	Equipment   []string `json:"equipment"`
	Available   *bool    `json:"available"`
	Description string   `json:"description" validate:"max=1000"`
}

type UpdateVenueRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Type        string   `json:"type" validate:"required,min=2,max=50"`
	Capacity    int      `json:"capacity" validate:"required,min=1"`
	Equipment   []string `json:"equipment"`
	Available   *bool    `json:"available"`
	Description string   `json:"description" validate:"max=1000"`
}
