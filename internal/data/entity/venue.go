package entity

type Venue struct {
	Base
	Name        string   `db:"name"`
	Type        string   `db:"type"`
	Capacity    int      `db:"capacity"`
	Equipment   []string `db:"equipment"`
	Available   bool     `db:"available"`
	Description string   `db:"description"`
}
