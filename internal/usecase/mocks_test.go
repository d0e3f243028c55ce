package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"campus-venue-booking/internal/data/entity"
	"campus-venue-booking/internal/data/repository"
	"campus-venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// --- Fake ProfileRepository ---

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*entity.Profile)}
}

func (f *fakeProfileRepo) add(role entity.Role) uuid.UUID {
	id := uuid.New()
	f.profiles[id] = &entity.Profile{
		Base: entity.Base{ID: id},
		Role: role,
	}
	return id
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return f.profiles[id], nil
}

// --- Fake VenueRepository ---

type fakeVenueRepo struct {
	venues map[uuid.UUID]*entity.Venue
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{venues: make(map[uuid.UUID]*entity.Venue)}
}

func (f *fakeVenueRepo) add(capacity int, available bool) uuid.UUID {
	id := uuid.New()
	f.venues[id] = &entity.Venue{
		Base:      entity.Base{ID: id},
		Name:      "Main Auditorium",
		Type:      "auditorium",
		Capacity:  capacity,
		Equipment: []string{"projector"},
		Available: available,
	}
	return id
}

func (f *fakeVenueRepo) Create(ctx context.Context, venue *entity.Venue) error {
	f.venues[venue.ID] = venue
	return nil
}

func (f *fakeVenueRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	return f.venues[id], nil
}

func (f *fakeVenueRepo) FindAll(ctx context.Context, availableOnly bool) ([]*entity.Venue, error) {
	var venues []*entity.Venue
	for _, v := range f.venues {
		if availableOnly && !v.Available {
			continue
		}
		venues = append(venues, v)
	}
	sort.Slice(venues, func(i, j int) bool { return venues[i].Name < venues[j].Name })
	return venues, nil
}

func (f *fakeVenueRepo) Update(ctx context.Context, venue *entity.Venue) error {
	if _, ok := f.venues[venue.ID]; !ok {
		return fmt.Errorf("venue %s not found", venue.ID.String())
	}
	f.venues[venue.ID] = venue
	return nil
}

func (f *fakeVenueRepo) SetAvailable(ctx context.Context, id uuid.UUID, available bool) error {
	venue, ok := f.venues[id]
	if !ok {
		return fmt.Errorf("venue %s not found", id.String())
	}
	venue.Available = available
	return nil
}

func (f *fakeVenueRepo) WithTx(tx pgx.Tx) repository.VenueRepository { return f }

// --- Fake BookingRepository ---

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) seed(b *entity.Booking) {
	f.bookings[b.ID] = b
}

func (f *fakeBookingRepo) WithTx(tx pgx.Tx) repository.BookingRepository { return f }

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	bookings, _ := f.FindByUserID(ctx, userID, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, filter repository.BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, b := range f.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.PriorityOnly && !b.Priority {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Count(ctx context.Context, filter repository.BookingFilter) (int64, error) {
	bookings, _ := f.FindAll(ctx, filter, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.bookings[id]; !ok {
		return fmt.Errorf("booking %s not found", id.String())
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) Stats(ctx context.Context) (*repository.BookingStats, error) {
	stats := &repository.BookingStats{}
	for _, b := range f.bookings {
		stats.Total++
		if b.Status == entity.BookingStatusPending {
			stats.Pending++
		}
		if b.Status == entity.BookingStatusApproved {
			stats.Approved++
		}
		if b.Priority {
			stats.Priority++
		}
	}
	return stats, nil
}

func (f *fakeBookingRepo) FindForVenueDate(ctx context.Context, venueID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	key := date.Format("2006-01-02")
	var result []*entity.Booking
	for _, b := range f.bookings {
		if b.VenueID != venueID || b.DateKey() != key {
			continue
		}
		if b.Status != entity.BookingStatusPending && b.Status != entity.BookingStatusApproved {
			continue
		}
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime < result[j].StartTime })
	return result, nil
}

func (f *fakeBookingRepo) MarkApproved(ctx context.Context, id uuid.UUID, approvedBy *uuid.UUID, at time.Time) error {
	b, ok := f.bookings[id]
	if !ok || b.Status != entity.BookingStatusPending {
		return fmt.Errorf("booking %s is not pending", id.String())
	}
	b.Status = entity.BookingStatusApproved
	b.ApprovedBy = approvedBy
	b.ApprovedAt = &at
	return nil
}

func (f *fakeBookingRepo) MarkRejected(ctx context.Context, id uuid.UUID, rejectedBy *uuid.UUID, reason string, at time.Time) error {
	b, ok := f.bookings[id]
	if !ok || b.Status != entity.BookingStatusPending {
		return fmt.Errorf("booking %s is not pending", id.String())
	}
	b.Status = entity.BookingStatusRejected
	b.RejectionReason = &reason
	b.ApprovedBy = rejectedBy
	b.ApprovedAt = &at
	return nil
}

// --- Fake BookingDocumentRepository ---

type fakeDocumentRepo struct {
	docs map[uuid.UUID]*entity.BookingDocument
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[uuid.UUID]*entity.BookingDocument)}
}

func (f *fakeDocumentRepo) Create(ctx context.Context, doc *entity.BookingDocument) error {
	f.docs[doc.ID] = doc
	return nil
}

func (f *fakeDocumentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingDocument, error) {
	return f.docs[id], nil
}

func (f *fakeDocumentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingDocument, error) {
	var result []*entity.BookingDocument
	for _, d := range f.docs {
		if d.BookingID == bookingID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (f *fakeDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.docs[id]; !ok {
		return fmt.Errorf("document %s not found", id.String())
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeDocumentRepo) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	for id, d := range f.docs {
		if d.BookingID == bookingID {
			delete(f.docs, id)
		}
	}
	return nil
}

func (f *fakeDocumentRepo) WithTx(tx pgx.Tx) repository.BookingDocumentRepository { return f }

// --- Fake VenueDateLocker ---

// fakeLocker runs the critical section directly; failTimes simulates lock
// contention before eventually succeeding.
type fakeLocker struct {
	calls     int
	failTimes int
}

func (l *fakeLocker) WithVenueDateLock(ctx context.Context, venueID uuid.UUID, date string, fn func(tx pgx.Tx) error) error {
	l.calls++
	if l.calls <= l.failTimes {
		return database.ErrLockTimeout
	}
	return fn(nil)
}

// --- Fake BlobStore ---

type fakeBlobStore struct {
	blobs map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte)}
}

func (f *fakeBlobStore) Save(ctx context.Context, path string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	f.blobs[path] = data
	return int64(len(data)), nil
}

func (f *fakeBlobStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.blobs[path]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, path string) error {
	delete(f.blobs, path)
	return nil
}
