package turf

import (
	"fmt"
	"time"
)

// Turf is a bookable sports facility. AvailableFrom/AvailableTo are
// facility-local times of day in "HH:MM" form; PricePerHour is expressed in
// the smallest currency unit.
type Turf struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	SportType     string    `json:"sportType"`
	Location      string    `json:"location"`
	PricePerHour  int       `json:"pricePerHour"`
	ImageURL      string    `json:"imageUrl"`
	AvailableFrom string    `json:"availableFrom"`
	AvailableTo   string    `json:"availableTo"`
	OwnerID       string    `json:"ownerId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ParseTimeOfDay parses an "HH:MM" string into minutes from midnight.
// "24:00" is accepted as the end-of-day closing time.
func ParseTimeOfDay(s string) (int, error) {
	if s == "24:00" {
		return 24 * 60, nil
	}

	t, err := time.Parse("15:04", s)

	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}

	return t.Hour()*60 + t.Minute(), nil
}

// FormatTimeOfDay renders minutes from midnight as "HH:MM".
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Validate checks the field invariants that must hold before a turf is
// inserted or updated.
func (t Turf) Validate() error {
	if len(t.Name) == 0 || len(t.Location) == 0 || len(t.SportType) == 0 {
		return fmt.Errorf("%w: name, location and sportType are required", ErrInvalidTurf)
	}

	if t.PricePerHour <= 0 {
		return fmt.Errorf("%w: pricePerHour must be positive", ErrInvalidTurf)
	}

	from, err := ParseTimeOfDay(t.AvailableFrom)

	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTurf, err)
	}

	to, err := ParseTimeOfDay(t.AvailableTo)

	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTurf, err)
	}

	if from >= to {
		return fmt.Errorf("%w: availableFrom must be before availableTo", ErrInvalidTurf)
	}

	return nil
}
