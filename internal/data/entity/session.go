package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is identity-collaborator state: an opaque bearer token mapped to
// a user. Issuance lives outside this service; we only resolve tokens.
type Session struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Token     uuid.UUID `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}
