package booking

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/pitchside/turf-booking-backend/turf"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/booking_service_mocks.go -package=booking_mocks

type BookingRepository interface {
	GetBookingsForDate(ctx context.Context, turfID string, date time.Time) ([]Booking, error)
	GetBookingsPerTurf(ctx context.Context, turfID string) ([]Booking, error)
	GetBookingsPerUser(ctx context.Context, userID string) ([]Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	InsertBookingIfAvailable(ctx context.Context, booking Booking) (Booking, error)
	SetBookingStatus(ctx context.Context, id string, status Status) (Booking, error)
}

type TurfReader interface {
	GetTurfByID(ctx context.Context, id string) (turf.Turf, error)
}

type Service struct {
	repo  BookingRepository
	turfs TurfReader
	now   func() time.Time
}

// NewService wires the lifecycle engine to its collaborators. now is the
// wall-clock source used for past-slot exclusion; production callers pass
// time.Now.
func NewService(repo BookingRepository, turfs TurfReader, now func() time.Time) *Service {
	return &Service{repo: repo, turfs: turfs, now: now}
}

// ListAvailableSlots returns every hourly slot for the turf on date, each
// marked bookable or not against the current bookings and wall clock.
func (s *Service) ListAvailableSlots(ctx context.Context, turfID string, date time.Time) ([]SlotAvailability, error) {
	t, err := s.turfs.GetTurfByID(ctx, turfID)

	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.GetBookingsForDate(ctx, turfID, date)

	if err != nil {
		return nil, err
	}

	return ResolveAvailability(GenerateSlots(t, date), bookings, date, s.now()), nil
}

// CreateBooking inserts a pending booking for the requested slot. The slot
// must be one of the turf's generated hourly slots and still available at
// insert time; the final conflict check is atomic in the repository, so two
// racing creates on the same key cannot both succeed.
func (s *Service) CreateBooking(ctx context.Context, booking Booking) (Booking, error) {
	t, err := s.turfs.GetTurfByID(ctx, booking.TurfID)

	if err != nil {
		return Booking{}, err
	}

	slot := Slot{StartTime: booking.StartTime, EndTime: booking.EndTime}

	if !slices.Contains(GenerateSlots(t, booking.Date), slot) {
		return Booking{}, ErrInvalidSlot
	}

	// Re-read bookings here rather than trusting the listing the caller saw;
	// the slot may have been taken since.
	existing, err := s.repo.GetBookingsForDate(ctx, booking.TurfID, booking.Date)

	if err != nil {
		return Booking{}, err
	}

	for _, resolved := range ResolveAvailability([]Slot{slot}, existing, booking.Date, s.now()) {
		if !resolved.IsAvailable {
			return Booking{}, ErrSlotUnavailable
		}
	}

	booking.Status = StatusPending

	return s.repo.InsertBookingIfAvailable(ctx, booking)
}

// SetBookingStatus applies one lifecycle transition on behalf of userID.
// Transition legality is checked before authorization, so a terminal or
// backward move reports ErrInvalidTransition even for a user with no stake in
// the booking.
func (s *Service) SetBookingStatus(ctx context.Context, id string, target Status, userID string) (Booking, error) {
	if !ValidStatus(target) {
		return Booking{}, ErrInvalidTransition
	}

	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	t, err := s.turfs.GetTurfByID(ctx, booking.TurfID)

	if err != nil {
		return Booking{}, err
	}

	if !AllowedTransition(booking.Status, target) {
		return Booking{}, ErrInvalidTransition
	}

	if !CanTransition(booking, t, userID, target) {
		return Booking{}, ErrNotAllowed
	}

	return s.repo.SetBookingStatus(ctx, id, target)
}

// FindBookingsPerUser returns the user's bookings with their turfs attached.
func (s *Service) FindBookingsPerUser(ctx context.Context, userID string) ([]UserBooking, error) {
	bookings, err := s.repo.GetBookingsPerUser(ctx, userID)

	if err != nil {
		return nil, err
	}

	result := make([]UserBooking, 0, len(bookings))

	for _, b := range bookings {
		t, err := s.turfs.GetTurfByID(ctx, b.TurfID)

		if err != nil && !errors.Is(err, turf.ErrTurfNotFound) {
			return nil, err
		}

		result = append(result, UserBooking{Booking: b, Turf: t})
	}

	return result, nil
}

// FindBookingsPerTurf returns every booking ever made on the turf.
func (s *Service) FindBookingsPerTurf(ctx context.Context, turfID string) ([]Booking, error) {
	if _, err := s.turfs.GetTurfByID(ctx, turfID); err != nil {
		return nil, err
	}

	return s.repo.GetBookingsPerTurf(ctx, turfID)
}
