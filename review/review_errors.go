package review

import "errors"

var ErrReviewExists = errors.New("turf already reviewed by this user")

var ErrInvalidRating = errors.New("rating must be between 1 and 5")
