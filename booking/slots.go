package booking

import (
	"time"

	"github.com/pitchside/turf-booking-backend/turf"
)

// GenerateSlots produces the ordered hourly slots for a turf on a calendar
// date. Slots sit on whole-hour boundaries; a partial closing hour is
// truncated (availableTo "21:30" yields a last slot ending "21:00"). An
// inverted window produces no slots rather than an error.
func GenerateSlots(t turf.Turf, date time.Time) []Slot {
	from, err := turf.ParseTimeOfDay(t.AvailableFrom)

	if err != nil {
		return nil
	}

	to, err := turf.ParseTimeOfDay(t.AvailableTo)

	if err != nil {
		return nil
	}

	var slots []Slot

	for hour := from / 60; hour < to/60; hour++ {
		slots = append(slots, Slot{
			StartTime: turf.FormatTimeOfDay(hour * 60),
			EndTime:   turf.FormatTimeOfDay((hour + 1) * 60),
		})
	}

	return slots
}

// ResolveAvailability annotates slots with whether they can be booked. A slot
// is unavailable when its start has already passed (only when date is the same
// calendar day as now) or when a pending or confirmed booking holds the same
// start hour on that date. Cancelled bookings never block. The caller supplies
// bookings already scoped to the turf and now explicitly, so the function is
// deterministic.
func ResolveAvailability(slots []Slot, bookings []Booking, date, now time.Time) []SlotAvailability {
	nowMinutes := now.Hour()*60 + now.Minute()
	today := SameDate(date, now)

	resolved := make([]SlotAvailability, 0, len(slots))

	for _, slot := range slots {
		start, err := turf.ParseTimeOfDay(slot.StartTime)

		if err != nil {
			continue
		}

		past := today && nowMinutes >= start

		booked := false

		for _, b := range bookings {
			if b.Status == StatusCancelled {
				continue
			}

			if !SameDate(b.Date, date) {
				continue
			}

			bookedStart, err := turf.ParseTimeOfDay(b.StartTime)

			// Matching is by start hour only; bookings are pinned to the
			// same one-hour grid as the slots.
			if err == nil && bookedStart/60 == start/60 {
				booked = true
				break
			}
		}

		resolved = append(resolved, SlotAvailability{
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			IsAvailable: !past && !booked,
		})
	}

	return resolved
}
