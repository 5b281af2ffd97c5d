package review

import (
	"context"

	"github.com/pitchside/turf-booking-backend/turf"
)

//go:generate mockgen -source=review_service.go -destination=mocks/review_service_mocks.go -package=review_mocks

type ReviewRepository interface {
	InsertReview(ctx context.Context, review Review) (Review, error)
	GetReviewsPerTurf(ctx context.Context, turfID string) ([]Review, error)
}

type TurfReader interface {
	GetTurfByID(ctx context.Context, id string) (turf.Turf, error)
}

type Service struct {
	repo  ReviewRepository
	turfs TurfReader
}

func NewService(repo ReviewRepository, turfs TurfReader) *Service {
	return &Service{repo: repo, turfs: turfs}
}

// AddReview records userID's review of a turf. The uniqueness of
// (turf, user) is enforced by the repository.
func (s *Service) AddReview(ctx context.Context, review Review, userID string) (Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return Review{}, ErrInvalidRating
	}

	if _, err := s.turfs.GetTurfByID(ctx, review.TurfID); err != nil {
		return Review{}, err
	}

	review.UserID = userID

	return s.repo.InsertReview(ctx, review)
}

func (s *Service) FindReviewsPerTurf(ctx context.Context, turfID string) ([]Review, error) {
	if _, err := s.turfs.GetTurfByID(ctx, turfID); err != nil {
		return nil, err
	}

	return s.repo.GetReviewsPerTurf(ctx, turfID)
}
