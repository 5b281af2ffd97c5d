package turf

import "errors"

var ErrTurfNotFound = errors.New("turf not found")

var ErrInvalidTurf = errors.New("invalid turf")

var ErrNotAllowed = errors.New("not allowed to perform this operation")
