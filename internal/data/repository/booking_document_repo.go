package repository

import (
	"context"
	"fmt"

	"campus-venue-booking/internal/data/entity"
	"campus-venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingDocumentRepository interface {
	Create(ctx context.Context, doc *entity.BookingDocument) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingDocument, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingDocument, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error

	// WithTx rebinds the repository to an open transaction.
	WithTx(tx pgx.Tx) BookingDocumentRepository
}

type bookingDocumentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingDocumentRepository(db database.PgxIface, log *zap.Logger) BookingDocumentRepository {
	return &bookingDocumentRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_document")),
	}
}

func (r *bookingDocumentRepository) WithTx(tx pgx.Tx) BookingDocumentRepository {
	return &bookingDocumentRepository{db: tx, log: r.log}
}

func (r *bookingDocumentRepository) Create(ctx context.Context, doc *entity.BookingDocument) error {
	query := `
		INSERT INTO booking_documents (id, booking_id, file_name, file_path, file_size, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		doc.ID,
		doc.BookingID,
		doc.FileName,
		doc.FilePath,
		doc.FileSize,
		doc.UploadedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking document",
			zap.Error(err),
			zap.String("booking_id", doc.BookingID.String()),
			zap.String("file_name", doc.FileName),
		)
		return fmt.Errorf("create document %s: %w", doc.FileName, err)
	}

	return nil
}

func (r *bookingDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingDocument, error) {
	query := `
		SELECT id, booking_id, file_name, file_path, file_size, uploaded_at
		FROM booking_documents
		WHERE id = $1
	`

	var doc entity.BookingDocument
	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.BookingID,
		&doc.FileName,
		&doc.FilePath,
		&doc.FileSize,
		&doc.UploadedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find document by ID",
			zap.Error(err),
			zap.String("document_id", id.String()),
		)
		return nil, fmt.Errorf("find document by ID %s: %w", id.String(), err)
	}

	return &doc, nil
}

func (r *bookingDocumentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingDocument, error) {
	query := `
		SELECT id, booking_id, file_name, file_path, file_size, uploaded_at
		FROM booking_documents
		WHERE booking_id = $1
		ORDER BY uploaded_at DESC
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find documents by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find documents for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var docs []*entity.BookingDocument
	for rows.Next() {
		var doc entity.BookingDocument
		err := rows.Scan(
			&doc.ID,
			&doc.BookingID,
			&doc.FileName,
			&doc.FilePath,
			&doc.FileSize,
			&doc.UploadedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan document row", zap.Error(err))
			return nil, fmt.Errorf("scan document row: %w", err)
		}
		docs = append(docs, &doc)
	}

	return docs, nil
}

func (r *bookingDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM booking_documents WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete document",
			zap.Error(err),
			zap.String("document_id", id.String()),
		)
		return fmt.Errorf("delete document %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("document %s not found", id.String())
	}

	return nil
}

func (r *bookingDocumentRepository) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	query := `DELETE FROM booking_documents WHERE booking_id = $1`

	_, err := r.db.Exec(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to delete documents for booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("delete documents for booking %s: %w", bookingID.String(), err)
	}

	return nil
}
