package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingDocument struct {
	ID         uuid.UUID `db:"id"`
	BookingID  uuid.UUID `db:"booking_id"`
	FileName   string    `db:"file_name"`
	FilePath   string    `db:"file_path"`
	FileSize   int64     `db:"file_size"`
	UploadedAt time.Time `db:"uploaded_at"`
}
