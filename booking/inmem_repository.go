package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemRepository is a mutex-guarded BookingRepository used by tests and
// local development. It honors the same atomicity contract as the SQL
// repository: InsertBookingIfAvailable performs its conflict check and insert
// under one lock, so concurrent creates on the same key cannot both succeed.
type InMemRepository struct {
	mu      sync.Mutex
	byID    map[string]Booking
	ordered []string
}

func NewInMemRepository() *InMemRepository {
	return &InMemRepository{byID: make(map[string]Booking)}
}

func dateKey(date time.Time) string {
	return date.Format(time.DateOnly)
}

func (r *InMemRepository) GetBookingsForDate(ctx context.Context, turfID string, date time.Time) ([]Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []Booking

	for _, id := range r.ordered {
		b := r.byID[id]

		if b.TurfID == turfID && dateKey(b.Date) == dateKey(date) {
			bookings = append(bookings, b)
		}
	}

	return bookings, nil
}

func (r *InMemRepository) GetBookingsPerTurf(ctx context.Context, turfID string) ([]Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []Booking

	for _, id := range r.ordered {
		if b := r.byID[id]; b.TurfID == turfID {
			bookings = append(bookings, b)
		}
	}

	return bookings, nil
}

func (r *InMemRepository) GetBookingsPerUser(ctx context.Context, userID string) ([]Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []Booking

	for _, id := range r.ordered {
		if b := r.byID[id]; b.UserID == userID {
			bookings = append(bookings, b)
		}
	}

	return bookings, nil
}

func (r *InMemRepository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]

	if !ok {
		return Booking{}, ErrBookingNotFound
	}

	return b, nil
}

func (r *InMemRepository) InsertBookingIfAvailable(ctx context.Context, booking Booking) (Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Status == StatusCancelled {
			continue
		}

		if existing.TurfID == booking.TurfID &&
			dateKey(existing.Date) == dateKey(booking.Date) &&
			existing.StartTime == booking.StartTime {
			return Booking{}, ErrSlotUnavailable
		}
	}

	booking.ID = uuid.NewString()
	booking.Status = StatusPending
	booking.CreatedAt = time.Now()

	r.byID[booking.ID] = booking
	r.ordered = append(r.ordered, booking.ID)

	return booking, nil
}

func (r *InMemRepository) SetBookingStatus(ctx context.Context, id string, status Status) (Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]

	if !ok {
		return Booking{}, fmt.Errorf("%w: %v", ErrBookingNotFound, id)
	}

	b.Status = status
	r.byID[id] = b

	return b, nil
}
