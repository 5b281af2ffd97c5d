package booking

import (
	"time"

	"github.com/pitchside/turf-booking-backend/turf"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports whether s is one of the known booking states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking is a player's reservation of one hourly slot on one calendar date.
// Date carries no time component; StartTime/EndTime are "HH:MM" facility-local
// times exactly one hour apart.
type Booking struct {
	ID        string    `json:"id"`
	TurfID    string    `json:"turfId"`
	UserID    string    `json:"userId"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserBooking is a booking joined with the turf it reserves, as returned to
// the booking player.
type UserBooking struct {
	Booking
	Turf turf.Turf `json:"turf"`
}

// Slot is a candidate one-hour reservation window.
type Slot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SlotAvailability is a slot annotated with whether it can currently be
// booked.
type SlotAvailability struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// SameDate reports whether a and b fall on the same calendar date, ignoring
// any time component.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
