package adaptor

import (
	"encoding/json"
	"net/http"

	"campus-venue-booking/internal/dto/request"
	"campus-venue-booking/internal/usecase"
	"campus-venue-booking/pkg/apperror"
	"campus-venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VenueHandler struct {
	service usecase.VenueService
	log     *zap.Logger
}

func NewVenueHandler(service usecase.VenueService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// ListVenues handles GET /api/venues (public)
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	availableOnly := utils.ParseBool(r.URL.Query().Get("available"), false)

	venues, err := h.service.ListVenues(r.Context(), availableOnly)
	if err != nil {
		h.handleServiceError(w, err, "list venues")
		return
	}

	utils.ResponseSuccess(w, "success", venues)
}

// GetVenue handles GET /api/venues/{id} (public)
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	venue, err := h.service.GetVenue(r.Context(), venueID)
	if err != nil {
		h.handleServiceError(w, err, "get venue")
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

// ==================== ADMIN METHODS ====================

// CreateVenue handles POST /api/admin/venues (admin only)
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	venue, err := h.service.CreateVenue(r.Context(), actorID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create venue")
		return
	}

	utils.ResponseCreated(w, "success", venue)
}

// UpdateVenue handles PUT /api/admin/venues/{id} (admin only)
func (h *VenueHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	var req request.UpdateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	venue, err := h.service.UpdateVenue(r.Context(), actorID.String(), venueID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update venue")
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

// DisableVenue handles PUT /api/admin/venues/{id}/disable (admin only)
func (h *VenueHandler) DisableVenue(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	if err := h.service.DisableVenue(r.Context(), actorID.String(), venueID); err != nil {
		h.handleServiceError(w, err, "disable venue")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *VenueHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
