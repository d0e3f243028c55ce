package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"campus-venue-booking/internal/data/entity"
	"campus-venue-booking/internal/data/repository"
	"campus-venue-booking/internal/dto/response"
	"campus-venue-booking/internal/scheduling"
	"campus-venue-booking/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentService interface {
	Upload(ctx context.Context, actorID, bookingID, fileName string, content io.Reader) (*response.DocumentResponse, error)
	ListByBooking(ctx context.Context, actorID, bookingID string) ([]response.DocumentResponse, error)
	Download(ctx context.Context, actorID, documentID string) (*entity.BookingDocument, io.ReadCloser, error)
	Delete(ctx context.Context, actorID, documentID string) error
}

type documentService struct {
	repo  *repository.Repository
	blobs storage.BlobStore
	log   *zap.Logger
}

func NewDocumentService(repo *repository.Repository, blobs storage.BlobStore, log *zap.Logger) DocumentService {
	return &documentService{
		repo:  repo,
		blobs: blobs,
		log:   log.With(zap.String("service", "document")),
	}
}

// Upload stores the blob, then the metadata row. Documents are attached
// evidence only; they never affect scheduling.
func (s *documentService) Upload(ctx context.Context, actorID, bookingID, fileName string, content io.Reader) (*response.DocumentResponse, error) {
	if fileName == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrValidation)
	}

	booking, err := s.authorizeBookingAccess(ctx, actorID, bookingID, false)
	if err != nil {
		return nil, err
	}

	// Path mirrors the upload layout the dashboards expect:
	// <bookingID>/<timestamp>.<ext>
	path := fmt.Sprintf("%s/%d%s", booking.ID.String(), time.Now().UnixNano(), filepath.Ext(fileName))

	size, err := s.blobs.Save(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	doc := &entity.BookingDocument{
		ID:         uuid.New(),
		BookingID:  booking.ID,
		FileName:   fileName,
		FilePath:   path,
		FileSize:   size,
		UploadedAt: time.Now(),
	}

	if err := s.repo.Document.Create(ctx, doc); err != nil {
		// Roll back the blob so storage does not accumulate orphans.
		s.blobs.Delete(ctx, path)
		return nil, fmt.Errorf("record document: %w", err)
	}

	s.log.Info("Document uploaded",
		zap.String("booking_id", bookingID),
		zap.String("document_id", doc.ID.String()),
		zap.String("file_name", fileName),
		zap.Int64("file_size", size),
	)

	resp := response.DocumentToResponse(doc)
	return &resp, nil
}

func (s *documentService) ListByBooking(ctx context.Context, actorID, bookingID string) ([]response.DocumentResponse, error) {
	booking, err := s.authorizeBookingAccess(ctx, actorID, bookingID, true)
	if err != nil {
		return nil, err
	}

	docs, err := s.repo.Document.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	responses := make([]response.DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = response.DocumentToResponse(doc)
	}

	return responses, nil
}

func (s *documentService) Download(ctx context.Context, actorID, documentID string) (*entity.BookingDocument, io.ReadCloser, error) {
	doc, err := s.findDocument(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.authorizeBookingAccess(ctx, actorID, doc.BookingID.String(), true); err != nil {
		return nil, nil, err
	}

	r, err := s.blobs.Open(ctx, doc.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open document blob: %w", err)
	}

	return doc, r, nil
}

// Delete removes the blob first, then the row, matching the original
// upload site's teardown order.
func (s *documentService) Delete(ctx context.Context, actorID, documentID string) error {
	doc, err := s.findDocument(ctx, documentID)
	if err != nil {
		return err
	}

	if _, err := s.authorizeBookingAccess(ctx, actorID, doc.BookingID.String(), false); err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, doc.FilePath); err != nil {
		return fmt.Errorf("delete document blob: %w", err)
	}

	if err := s.repo.Document.Delete(ctx, doc.ID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	s.log.Info("Document deleted",
		zap.String("document_id", documentID),
		zap.String("booking_id", doc.BookingID.String()),
	)

	return nil
}

func (s *documentService) findDocument(ctx context.Context, documentID string) (*entity.BookingDocument, error) {
	id, err := uuid.Parse(documentID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid document ID %s", ErrValidation, documentID)
	}

	doc, err := s.repo.Document.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, documentID)
	}

	return doc, nil
}

// authorizeBookingAccess loads the booking and checks the actor may touch
// its documents: the owner always can, approvers can read, admins can do
// anything.
func (s *documentService) authorizeBookingAccess(ctx context.Context, actorID, bookingID string, readOnly bool) (*entity.Booking, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid actor ID %s", ErrValidation, actorID)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	if booking.UserID == actorUUID {
		return booking, nil
	}

	actor, err := s.repo.Profile.FindByID(ctx, actorUUID)
	if err != nil {
		return nil, fmt.Errorf("load actor profile: %w", err)
	}
	if actor == nil {
		return nil, fmt.Errorf("%w", ErrNotOwner)
	}

	if actor.Role == entity.RoleAdmin {
		return booking, nil
	}
	if readOnly && scheduling.Allowed(actor.Role, scheduling.ActionApprove) {
		return booking, nil
	}

	return nil, fmt.Errorf("%w", ErrNotOwner)
}
