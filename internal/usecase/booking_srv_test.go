package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-venue-booking/internal/data/entity"
	"campus-venue-booking/internal/data/repository"
	"campus-venue-booking/internal/dto/request"
	"campus-venue-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingEnv struct {
	profiles *fakeProfileRepo
	venues   *fakeVenueRepo
	bookings *fakeBookingRepo
	docs     *fakeDocumentRepo
	blobs    *fakeBlobStore
	locker   *fakeLocker
	config   *utils.Config
	svc      BookingService
}

func newBookingEnv() *bookingEnv {
	env := &bookingEnv{
		profiles: newFakeProfileRepo(),
		venues:   newFakeVenueRepo(),
		bookings: newFakeBookingRepo(),
		docs:     newFakeDocumentRepo(),
		blobs:    newFakeBlobStore(),
		locker:   &fakeLocker{},
		config: &utils.Config{
			Booking: utils.BookingConfig{
				BlockedPolicy: utils.BlockedPolicyHold,
				LockTimeoutMS: 3000,
				LockRetries:   3,
			},
		},
	}

	repo := &repository.Repository{
		Profile:  env.profiles,
		Venue:    env.venues,
		Booking:  env.bookings,
		Document: env.docs,
	}
	env.svc = NewBookingService(repo, env.locker, env.blobs, env.config, zap.NewNop())
	return env
}

func (env *bookingEnv) seedBooking(userID, venueID uuid.UUID, status entity.BookingStatus, priority bool, start, end string) *entity.Booking {
	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:            userID,
		VenueID:           venueID,
		EventName:         "Existing Event",
		EventType:         entity.EventTypeSeminar,
		StartDate:         time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:         start,
		EndTime:           end,
		ExpectedAttendees: 20,
		Status:            status,
		Priority:          priority,
	}
	if status == entity.BookingStatusApproved {
		booking.ApprovedAt = &now
	}
	env.bookings.seed(booking)
	return booking
}

func submitRequest(venueID uuid.UUID, start, end string, priority bool) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		VenueID:           venueID.String(),
		EventName:         "Guest Lecture",
		EventType:         "lecture",
		StartDate:         "2026-09-15",
		StartTime:         start,
		EndTime:           end,
		ExpectedAttendees: 30,
		Priority:          priority,
	}
}

func TestSubmit_ClearIntervalStaysPending(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)

	resp, err := env.svc.Submit(context.Background(), student.String(), submitRequest(venueID, "09:00", "11:00", false))

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)
	assert.Equal(t, 1, env.locker.calls)
}

func TestSubmit_PrioritySupersedesPendingBooking(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	faculty := env.profiles.add(entity.RoleFaculty)
	venueID := env.venues.add(100, true)
	existing := env.seedBooking(student, venueID, entity.BookingStatusPending, false, "14:00", "16:00")

	resp, err := env.svc.Submit(context.Background(), faculty.String(), submitRequest(venueID, "15:00", "17:00", true))

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusApproved), resp.Status)
	require.NotNil(t, resp.ApprovedAt)

	bumped, err := env.bookings.FindByID(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusRejected, bumped.Status)
	require.NotNil(t, bumped.RejectionReason)
	assert.Equal(t, entity.RejectionReasonSuperseded, *bumped.RejectionReason)
	// A bump is the system's decision, not any admin's.
	assert.Nil(t, bumped.ApprovedBy)
}

func TestSubmit_PriorityBlockedByApprovedBooking(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	faculty := env.profiles.add(entity.RoleFaculty)
	venueID := env.venues.add(100, true)
	existing := env.seedBooking(student, venueID, entity.BookingStatusApproved, false, "10:00", "11:00")

	resp, err := env.svc.Submit(context.Background(), faculty.String(), submitRequest(venueID, "10:30", "11:30", true))

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)

	untouched, err := env.bookings.FindByID(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusApproved, untouched.Status)
}

func TestSubmit_PriorityBlockedByPendingPriorityPeer(t *testing.T) {
	env := newBookingEnv()
	facultyA := env.profiles.add(entity.RoleFaculty)
	facultyB := env.profiles.add(entity.RoleFaculty)
	venueID := env.venues.add(100, true)
	peer := env.seedBooking(facultyA, venueID, entity.BookingStatusPending, true, "13:00", "15:00")

	resp, err := env.svc.Submit(context.Background(), facultyB.String(), submitRequest(venueID, "14:00", "16:00", true))

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)

	untouched, err := env.bookings.FindByID(context.Background(), peer.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, untouched.Status)
}

func TestSubmit_BackToBackDoesNotConflict(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)
	existing := env.seedBooking(student, venueID, entity.BookingStatusApproved, false, "09:00", "10:00")

	resp, err := env.svc.Submit(context.Background(), student.String(), submitRequest(venueID, "10:00", "11:00", false))

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)

	untouched, err := env.bookings.FindByID(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusApproved, untouched.Status)
}

func TestSubmit_RejectedBookingsInvisibleToDetection(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)
	env.seedBooking(student, venueID, entity.BookingStatusRejected, false, "09:00", "12:00")

	resp, err := env.svc.Submit(context.Background(), student.String(), submitRequest(venueID, "10:00", "11:00", false))

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)
}

func TestSubmit_BlockedHoldKeepsPending(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	other := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)
	env.seedBooking(other, venueID, entity.BookingStatusPending, false, "10:00", "12:00")

	resp, err := env.svc.Submit(context.Background(), student.String(), submitRequest(venueID, "11:00", "13:00", false))

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)
}

func TestSubmit_BlockedAutoRejectPolicy(t *testing.T) {
	env := newBookingEnv()
	env.config.Booking.BlockedPolicy = utils.BlockedPolicyAutoReject
	student := env.profiles.add(entity.RoleStudent)
	other := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)
	env.seedBooking(other, venueID, entity.BookingStatusPending, false, "10:00", "12:00")

	resp, err := env.svc.Submit(context.Background(), student.String(), submitRequest(venueID, "11:00", "13:00", false))

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusRejected), resp.Status)
	assert.NotEmpty(t, resp.RejectionReason)
}

func TestSubmit_StudentPriorityRefused(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)

	_, err := env.svc.Submit(context.Background(), student.String(), submitRequest(venueID, "09:00", "10:00", true))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Empty(t, env.bookings.bookings)
}

func TestSubmit_DisabledVenueRefused(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, false)

	_, err := env.svc.Submit(context.Background(), student.String(), submitRequest(venueID, "09:00", "10:00", false))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVenueDisabled)
}

func TestSubmit_CapacityExceededRefused(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(10, true)

	_, err := env.svc.Submit(context.Background(), student.String(), submitRequest(venueID, "09:00", "10:00", false))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestSubmit_InvertedIntervalRefused(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)

	_, err := env.svc.Submit(context.Background(), student.String(), submitRequest(venueID, "11:00", "09:00", false))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestSubmit_LockContentionRetriesThenSucceeds(t *testing.T) {
	env := newBookingEnv()
	env.locker.failTimes = 2
	student := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)

	resp, err := env.svc.Submit(context.Background(), student.String(), submitRequest(venueID, "09:00", "10:00", false))

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)
	assert.Equal(t, 3, env.locker.calls)
}

func TestSubmit_LockContentionExhaustedReturnsContention(t *testing.T) {
	env := newBookingEnv()
	env.locker.failTimes = 10
	student := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)

	_, err := env.svc.Submit(context.Background(), student.String(), submitRequest(venueID, "09:00", "10:00", false))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContention)
	assert.Equal(t, env.config.Booking.LockRetries, env.locker.calls)
	assert.Empty(t, env.bookings.bookings)
}

func TestApprove_Success(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	admin := env.profiles.add(entity.RoleAdmin)
	venueID := env.venues.add(100, true)
	booking := env.seedBooking(student, venueID, entity.BookingStatusPending, false, "09:00", "10:00")

	resp, err := env.svc.Approve(context.Background(), admin.String(), booking.ID.String())

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusApproved), resp.Status)

	stored, err := env.bookings.FindByID(context.Background(), booking.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, admin, *stored.ApprovedBy)
	assert.NotNil(t, stored.ApprovedAt)
}

func TestApprove_NonPendingFailsWithoutMutation(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	admin := env.profiles.add(entity.RoleAdmin)
	venueID := env.venues.add(100, true)
	booking := env.seedBooking(student, venueID, entity.BookingStatusRejected, false, "09:00", "10:00")

	_, err := env.svc.Approve(context.Background(), admin.String(), booking.ID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTerminalState)

	stored, err := env.bookings.FindByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusRejected, stored.Status)
	assert.Nil(t, stored.ApprovedBy)
}

func TestApprove_ConflictWithApprovedBookingRefused(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	admin := env.profiles.add(entity.RoleAdmin)
	venueID := env.venues.add(100, true)
	pending := env.seedBooking(student, venueID, entity.BookingStatusPending, false, "14:00", "16:00")
	env.seedBooking(student, venueID, entity.BookingStatusApproved, false, "15:00", "17:00")

	_, err := env.svc.Approve(context.Background(), admin.String(), pending.ID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflictAtApproval)

	stored, err := env.bookings.FindByID(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, stored.Status)
}

func TestApprove_CapacityRecheckedAtApproval(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	admin := env.profiles.add(entity.RoleAdmin)
	venueID := env.venues.add(100, true)
	booking := env.seedBooking(student, venueID, entity.BookingStatusPending, false, "09:00", "10:00")

	// Capacity was lowered after submission.
	env.venues.venues[venueID].Capacity = 5

	_, err := env.svc.Approve(context.Background(), admin.String(), booking.ID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	stored, err := env.bookings.FindByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, stored.Status)
}

func TestApprove_StudentActorRefused(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)
	booking := env.seedBooking(student, venueID, entity.BookingStatusPending, false, "09:00", "10:00")

	_, err := env.svc.Approve(context.Background(), student.String(), booking.ID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestReject_RecordsActorAndReason(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	admin := env.profiles.add(entity.RoleAdmin)
	venueID := env.venues.add(100, true)
	booking := env.seedBooking(student, venueID, entity.BookingStatusPending, false, "09:00", "10:00")

	resp, err := env.svc.Reject(context.Background(), admin.String(), booking.ID.String(), &request.RejectBookingRequest{Reason: "venue under maintenance"})

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusRejected), resp.Status)

	stored, err := env.bookings.FindByID(context.Background(), booking.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RejectionReason)
	assert.Equal(t, "venue under maintenance", *stored.RejectionReason)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, admin, *stored.ApprovedBy)
}

func TestReject_TerminalStateRefused(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	admin := env.profiles.add(entity.RoleAdmin)
	venueID := env.venues.add(100, true)
	booking := env.seedBooking(student, venueID, entity.BookingStatusApproved, false, "09:00", "10:00")

	_, err := env.svc.Reject(context.Background(), admin.String(), booking.ID.String(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTerminalState)
}

func TestUpdateBooking_NotOwnerRefused(t *testing.T) {
	env := newBookingEnv()
	owner := env.profiles.add(entity.RoleStudent)
	other := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)
	booking := env.seedBooking(owner, venueID, entity.BookingStatusPending, false, "09:00", "10:00")

	_, err := env.svc.UpdateBooking(context.Background(), other.String(), booking.ID.String(), &request.UpdateBookingRequest{
		EventName:         "Edited Event",
		EventType:         "seminar",
		StartDate:         "2026-09-15",
		StartTime:         "10:00",
		EndTime:           "11:00",
		ExpectedAttendees: 15,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateBooking_OverlapStaysPending(t *testing.T) {
	env := newBookingEnv()
	owner := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)
	booking := env.seedBooking(owner, venueID, entity.BookingStatusPending, false, "09:00", "10:00")
	env.seedBooking(owner, venueID, entity.BookingStatusApproved, false, "10:30", "12:00")

	resp, err := env.svc.UpdateBooking(context.Background(), owner.String(), booking.ID.String(), &request.UpdateBookingRequest{
		EventName:         "Edited Event",
		EventType:         "seminar",
		StartDate:         "2026-09-15",
		StartTime:         "11:00",
		EndTime:           "13:00",
		ExpectedAttendees: 15,
	})

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)
	assert.Equal(t, "11:00", resp.StartTime)
}

func TestWithdraw_PendingRemovesBookingAndDocuments(t *testing.T) {
	env := newBookingEnv()
	owner := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)
	booking := env.seedBooking(owner, venueID, entity.BookingStatusPending, false, "09:00", "10:00")

	docPath := booking.ID.String() + "/letter.pdf"
	docID := uuid.New()
	env.blobs.blobs[docPath] = []byte("approval letter")
	env.docs.docs[docID] = &entity.BookingDocument{
		ID:        docID,
		BookingID: booking.ID,
		FileName:  "letter.pdf",
		FilePath:  docPath,
	}

	err := env.svc.Withdraw(context.Background(), owner.String(), booking.ID.String())

	require.NoError(t, err)
	stored, err := env.bookings.FindByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Empty(t, env.docs.docs)
	assert.Empty(t, env.blobs.blobs)
}

func TestWithdraw_ApprovedRefused(t *testing.T) {
	env := newBookingEnv()
	owner := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)
	booking := env.seedBooking(owner, venueID, entity.BookingStatusApproved, false, "09:00", "10:00")

	err := env.svc.Withdraw(context.Background(), owner.String(), booking.ID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTerminalState)

	stored, findErr := env.bookings.FindByID(context.Background(), booking.ID)
	require.NoError(t, findErr)
	require.NotNil(t, stored)
}

func TestListConflicts_ReturnsOverlapsOnly(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)
	overlap := env.seedBooking(student, venueID, entity.BookingStatusApproved, false, "10:00", "12:00")
	env.seedBooking(student, venueID, entity.BookingStatusApproved, false, "13:00", "14:00")
	env.seedBooking(student, venueID, entity.BookingStatusRejected, false, "10:30", "11:30")

	conflicts, err := env.svc.ListConflicts(context.Background(), venueID.String(), &request.ListConflictsRequest{
		Date:      "2026-09-15",
		StartTime: "11:00",
		EndTime:   "13:00",
	})

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, overlap.ID.String(), conflicts[0].ID)
}

func TestGetBooking_OwnerAndApproverAllowed(t *testing.T) {
	env := newBookingEnv()
	owner := env.profiles.add(entity.RoleStudent)
	stranger := env.profiles.add(entity.RoleStudent)
	admin := env.profiles.add(entity.RoleAdmin)
	venueID := env.venues.add(100, true)
	booking := env.seedBooking(owner, venueID, entity.BookingStatusPending, false, "09:00", "10:00")

	_, err := env.svc.GetBooking(context.Background(), owner.String(), booking.ID.String())
	require.NoError(t, err)

	_, err = env.svc.GetBooking(context.Background(), admin.String(), booking.ID.String())
	require.NoError(t, err)

	_, err = env.svc.GetBooking(context.Background(), stranger.String(), booking.ID.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestStats_CountsByStatusAndPriority(t *testing.T) {
	env := newBookingEnv()
	student := env.profiles.add(entity.RoleStudent)
	venueID := env.venues.add(100, true)
	env.seedBooking(student, venueID, entity.BookingStatusPending, false, "08:00", "09:00")
	env.seedBooking(student, venueID, entity.BookingStatusApproved, true, "09:00", "10:00")
	env.seedBooking(student, venueID, entity.BookingStatusRejected, false, "10:00", "11:00")

	stats, err := env.svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Approved)
	assert.Equal(t, int64(1), stats.Priority)
}

func TestStats_ErrorPropagates(t *testing.T) {
	env := newBookingEnv()
	repo := &repository.Repository{
		Profile:  env.profiles,
		Venue:    env.venues,
		Booking:  &failingStatsRepo{fakeBookingRepo: env.bookings},
		Document: env.docs,
	}
	svc := NewBookingService(repo, env.locker, env.blobs, env.config, zap.NewNop())

	_, err := svc.Stats(context.Background())
	require.Error(t, err)
}

type failingStatsRepo struct {
	*fakeBookingRepo
}

func (f *failingStatsRepo) Stats(ctx context.Context) (*repository.BookingStats, error) {
	return nil, errors.New("connection reset")
}
