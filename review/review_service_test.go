package review_test

import (
	"context"
	"testing"

	"github.com/pitchside/turf-booking-backend/review"
	review_mocks "github.com/pitchside/turf-booking-backend/review/mocks"
	"github.com/pitchside/turf-booking-backend/turf"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	repo    *review_mocks.MockReviewRepository
	turfs   *review_mocks.MockTurfReader
	service *review.Service
	ctx     context.Context
}

func newServiceDeps(t *testing.T) (*gomock.Controller, serviceDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := review_mocks.NewMockReviewRepository(ctrl)
	turfs := review_mocks.NewMockTurfReader(ctrl)

	return ctrl, serviceDeps{
		repo: repo, turfs: turfs, service: review.NewService(repo, turfs), ctx: context.Background(),
	}
}

func TestAddReview(t *testing.T) {
	theTurf := turf.Turf{ID: "turf-1", Name: "City Arena", OwnerID: "owner-1"}

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newServiceDeps(t)
		defer ctrl.Finish()

		toAdd := review.Review{TurfID: "turf-1", Rating: 4, Comment: "great pitch"}
		stamped := toAdd
		stamped.UserID = "player-1"
		inserted := stamped
		inserted.ID = "review-1"

		deps.turfs.EXPECT().GetTurfByID(deps.ctx, "turf-1").Return(theTurf, nil).Times(1)
		deps.repo.EXPECT().InsertReview(deps.ctx, stamped).Return(inserted, nil).Times(1)

		got, err := deps.service.AddReview(deps.ctx, toAdd, "player-1")

		require.Nil(t, err)
		require.Equal(t, inserted, got)
	})

	t.Run("rating out of range", func(t *testing.T) {
		ctrl, deps := newServiceDeps(t)
		defer ctrl.Finish()

		deps.turfs.EXPECT().GetTurfByID(gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().InsertReview(gomock.Any(), gomock.Any()).Times(0)

		for _, rating := range []int{0, 6, -1} {
			_, err := deps.service.AddReview(deps.ctx, review.Review{TurfID: "turf-1", Rating: rating}, "player-1")
			require.ErrorIs(t, err, review.ErrInvalidRating)
		}
	})

	t.Run("turf not found", func(t *testing.T) {
		ctrl, deps := newServiceDeps(t)
		defer ctrl.Finish()

		deps.turfs.EXPECT().GetTurfByID(deps.ctx, "nope").Return(turf.Turf{}, turf.ErrTurfNotFound).Times(1)
		deps.repo.EXPECT().InsertReview(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.AddReview(deps.ctx, review.Review{TurfID: "nope", Rating: 3}, "player-1")

		require.ErrorIs(t, err, turf.ErrTurfNotFound)
	})

	t.Run("second review of same turf", func(t *testing.T) {
		ctrl, deps := newServiceDeps(t)
		defer ctrl.Finish()

		deps.turfs.EXPECT().GetTurfByID(deps.ctx, "turf-1").Return(theTurf, nil).Times(1)
		deps.repo.EXPECT().InsertReview(deps.ctx, gomock.Any()).Return(review.Review{}, review.ErrReviewExists).Times(1)

		_, err := deps.service.AddReview(deps.ctx, review.Review{TurfID: "turf-1", Rating: 5}, "player-1")

		require.ErrorIs(t, err, review.ErrReviewExists)
	})
}

func TestFindReviewsPerTurf(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, deps := newServiceDeps(t)
		defer ctrl.Finish()

		reviews := []review.Review{{ID: "1", TurfID: "turf-1", UserID: "player-1", Rating: 4}}

		deps.turfs.EXPECT().GetTurfByID(deps.ctx, "turf-1").Return(turf.Turf{ID: "turf-1"}, nil).Times(1)
		deps.repo.EXPECT().GetReviewsPerTurf(deps.ctx, "turf-1").Return(reviews, nil).Times(1)

		got, err := deps.service.FindReviewsPerTurf(deps.ctx, "turf-1")

		require.Nil(t, err)
		require.Equal(t, reviews, got)
	})

	t.Run("turf not found", func(t *testing.T) {
		ctrl, deps := newServiceDeps(t)
		defer ctrl.Finish()

		deps.turfs.EXPECT().GetTurfByID(deps.ctx, "nope").Return(turf.Turf{}, turf.ErrTurfNotFound).Times(1)
		deps.repo.EXPECT().GetReviewsPerTurf(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.FindReviewsPerTurf(deps.ctx, "nope")

		require.ErrorIs(t, err, turf.ErrTurfNotFound)
	})
}
