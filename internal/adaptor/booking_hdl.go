package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"campus-venue-booking/internal/data/entity"
	"campus-venue-booking/internal/data/repository"
	"campus-venue-booking/internal/dto/request"
	"campus-venue-booking/internal/usecase"
	"campus-venue-booking/pkg/apperror"
	"campus-venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Submit handles POST /api/bookings (protected)
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.Submit(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "submit booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetUserBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.ListUserBookings(r.Context(), userID.String(), req)
	if err != nil {
		h.handleServiceError(w, err, "list user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBooking handles GET /api/bookings/{id} (protected)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.service.GetBooking(r.Context(), actorID.String(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdateBooking handles PUT /api/bookings/{id} (protected, owner only)
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.UpdateBooking(r.Context(), userID.String(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Withdraw handles DELETE /api/bookings/{id} (protected, owner only)
func (h *BookingHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.Withdraw(r.Context(), userID.String(), bookingID); err != nil {
		h.handleServiceError(w, err, "withdraw booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetVenueConflicts handles GET /api/venues/{id}/conflicts (public)
func (h *BookingHandler) GetVenueConflicts(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	query := r.URL.Query()
	req := &request.ListConflictsRequest{
		Date:      query.Get("date"),
		StartTime: query.Get("start_time"),
		EndTime:   query.Get("end_time"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	conflicts, err := h.service.ListConflicts(r.Context(), venueID, req)
	if err != nil {
		h.handleServiceError(w, err, "list conflicts")
		return
	}

	utils.ResponseSuccess(w, "success", conflicts)
}

// ==================== ADMIN METHODS ====================

// ListAllBookings handles GET /api/admin/bookings (admin only)
func (h *BookingHandler) ListAllBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	filter := repository.BookingFilter{
		Status:       entity.BookingStatus(query.Get("status")),
		PriorityOnly: utils.ParseBool(query.Get("priority"), false),
	}

	bookings, err := h.service.ListAllBookings(r.Context(), filter, req)
	if err != nil {
		h.handleServiceError(w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// Approve handles PUT /api/bookings/{id}/approve (faculty or admin, enforced by the service)
func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.service.Approve(r.Context(), actorID.String(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "approve booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Reject handles PUT /api/bookings/{id}/reject (faculty or admin, enforced by the service)
func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
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

	// Reason is optional; an empty body rejects without one.
	var req request.RejectBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = request.RejectBookingRequest{}
	}

	booking, err := h.service.Reject(r.Context(), actorID.String(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "reject booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Stats handles GET /api/admin/bookings/stats (admin only)
func (h *BookingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "booking stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	status := apperror.StatusOf(err)

	if apperror.IsRetryable(err) {
		// Contention resolves quickly; tell the client to try again.
		w.Header().Set("Retry-After", strconv.Itoa(1))
	}

	if status >= http.StatusInternalServerError && !apperror.IsRetryable(err) {
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
