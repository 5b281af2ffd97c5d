package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidSlot = errors.New("slot does not align to the turf's hourly grid")

var ErrSlotUnavailable = errors.New("slot is not available")

var ErrInvalidTransition = errors.New("invalid booking status transition")

var ErrNotAllowed = errors.New("not allowed to perform this operation")
