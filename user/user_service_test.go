package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/pitchside/turf-booking-backend/user"
	user_mocks "github.com/pitchside/turf-booking-backend/user/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newServiceDeps(t *testing.T) (*gomock.Controller, *user_mocks.MockUserRepository, *user.Service, context.Context) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := user_mocks.NewMockUserRepository(ctrl)

	return ctrl, repo, user.NewService(repo, secret, time.Hour), context.Background()
}

func validParams() user.RegisterParams {
	return user.RegisterParams{
		Username: "john",
		Password: "hunter22",
		Email:    "john@example.com",
		Role:     user.RolePlayer,
	}
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().InsertUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u user.User) (user.User, error) {
				require.Equal(t, "john", u.Username)
				require.NotEqual(t, "hunter22", u.PasswordHash)
				require.Nil(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")))

				u.ID = "user-1"
				return u, nil
			}).Times(1)

		registered, token, err := svc.Register(ctx, validParams())

		require.Nil(t, err)
		require.Equal(t, "user-1", registered.ID)

		authUser, err := user.ParseToken(token, secret)
		require.Nil(t, err)
		require.Equal(t, user.AuthUser{ID: "user-1", Role: user.RolePlayer}, authUser)
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().InsertUser(gomock.Any(), gomock.Any()).Times(0)

		params := validParams()
		params.Password = ""

		_, _, err := svc.Register(ctx, params)

		require.ErrorIs(t, err, user.ErrInvalidUser)
	})

	t.Run("unknown role", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().InsertUser(gomock.Any(), gomock.Any()).Times(0)

		params := validParams()
		params.Role = user.Role("referee")

		_, _, err := svc.Register(ctx, params)

		require.ErrorIs(t, err, user.ErrInvalidUser)
	})

	t.Run("username taken", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().InsertUser(ctx, gomock.Any()).Return(user.User{}, user.ErrUserExists).Times(1)

		_, _, err := svc.Register(ctx, validParams())

		require.ErrorIs(t, err, user.ErrUserExists)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)

	stored := user.User{
		ID:           "user-1",
		Username:     "john",
		Role:         user.RolePlayer,
		PasswordHash: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().GetUserByUsername(ctx, "john").Return(stored, nil).Times(1)

		u, token, err := svc.Login(ctx, "john", "hunter22")

		require.Nil(t, err)
		require.Equal(t, stored, u)

		authUser, err := user.ParseToken(token, secret)
		require.Nil(t, err)
		require.Equal(t, "user-1", authUser.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().GetUserByUsername(ctx, "john").Return(stored, nil).Times(1)

		_, _, err := svc.Login(ctx, "john", "wrong")

		require.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("unknown user looks like bad credentials", func(t *testing.T) {
		ctrl, repo, svc, ctx := newServiceDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().GetUserByUsername(ctx, "ghost").Return(user.User{}, user.ErrUserNotFound).Times(1)

		_, _, err := svc.Login(ctx, "ghost", "hunter22")

		require.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}
