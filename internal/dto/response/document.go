package response

import (
	"time"

	"campus-venue-booking/internal/data/entity"
)

type DocumentResponse struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"booking_id"`
	FileName   string    `json:"file_name"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func DocumentToResponse(doc *entity.BookingDocument) DocumentResponse {
	return DocumentResponse{
		ID:         doc.ID.String(),
		BookingID:  doc.BookingID.String(),
		FileName:   doc.FileName,
		FileSize:   doc.FileSize,
		UploadedAt: doc.UploadedAt,
	}
}
