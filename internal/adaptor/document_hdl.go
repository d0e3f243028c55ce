package adaptor

import (
	"fmt"
	"io"
	"net/http"

	"campus-venue-booking/internal/usecase"
	"campus-venue-booking/pkg/apperror"
	"campus-venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxDocumentSize caps uploaded approval documents at 10 MB.
const maxDocumentSize = 10 << 20

type DocumentHandler struct {
	service usecase.DocumentService
	log     *zap.Logger
}

func NewDocumentHandler(service usecase.DocumentService, log *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		log:     log.With(zap.String("handler", "document")),
	}
}

// Upload handles POST /api/bookings/{id}/documents (protected, multipart)
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentSize)
	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form or file too large", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	doc, err := h.service.Upload(r.Context(), actorID.String(), bookingID, header.Filename, file)
	if err != nil {
		h.handleServiceError(w, err, "upload document")
		return
	}

	utils.ResponseCreated(w, "success", doc)
}

// ListByBooking handles GET /api/bookings/{id}/documents (protected)
func (h *DocumentHandler) ListByBooking(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	docs, err := h.service.ListByBooking(r.Context(), actorID.String(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "list documents")
		return
	}

	utils.ResponseSuccess(w, "success", docs)
}

// Download handles GET /api/documents/{id}/download (protected)
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	documentID := chi.URLParam(r, "id")
	if documentID == "" {
		utils.ResponseBadRequest(w, "Document ID is required", nil)
		return
	}

	doc, reader, err := h.service.Download(r.Context(), actorID.String(), documentID)
	if err != nil {
		h.handleServiceError(w, err, "download document")
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	if doc.FileSize > 0 {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", doc.FileSize))
	}

	if _, err := io.Copy(w, reader); err != nil {
		h.log.Error("Failed to stream document",
			zap.Error(err),
			zap.String("document_id", documentID))
	}
}

// Delete handles DELETE /api/documents/{id} (protected)
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	documentID := chi.URLParam(r, "id")
	if documentID == "" {
		utils.ResponseBadRequest(w, "Document ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actorID.String(), documentID); err != nil {
		h.handleServiceError(w, err, "delete document")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *DocumentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	status := apperror.StatusOf(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	h.log.Warn(operation+" failed",
		zap.Error(err),
		zap.Int("status", status),
		zap.String("operation", operation))
	utils.ResponseError(w, status, err.Error())
}
