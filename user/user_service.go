package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mocks/user_service_mocks.go -package=user_mocks

type UserRepository interface {
	InsertUser(ctx context.Context, u User) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
}

type Service struct {
	repo     UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewService(repo UserRepository, secret string, tokenTTL time.Duration) *Service {
	return &Service{repo: repo, secret: secret, tokenTTL: tokenTTL}
}

// RegisterParams is the payload accepted by Register.
type RegisterParams struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      Role   `json:"role"`
}

// Register creates an account and immediately issues a token, matching the
// login-after-signup flow.
func (s *Service) Register(ctx context.Context, params RegisterParams) (User, string, error) {
	if len(params.Username) == 0 || len(params.Password) == 0 || len(params.Email) == 0 {
		return User{}, "", fmt.Errorf("%w: username, password and email are required", ErrInvalidUser)
	}

	if !ValidRole(params.Role) {
		return User{}, "", fmt.Errorf("%w: unknown role %q", ErrInvalidUser, params.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)

	if err != nil {
		return User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u := User{
		Username:     params.Username,
		Email:        params.Email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Phone:        params.Phone,
		Role:         params.Role,
		PasswordHash: string(hash),
	}

	inserted, err := s.repo.InsertUser(ctx, u)

	if err != nil {
		return User{}, "", err
	}

	token, err := IssueToken(inserted, s.secret, s.tokenTTL)

	if err != nil {
		return User{}, "", err
	}

	return inserted, token, nil
}

// Login checks the credentials and issues a token. A missing user and a wrong
// password both report ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (User, string, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)

	if errors.Is(err, ErrUserNotFound) {
		return User{}, "", ErrInvalidCredentials
	}

	if err != nil {
		return User{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := IssueToken(u, s.secret, s.tokenTTL)

	if err != nil {
		return User{}, "", err
	}

	return u, token, nil
}

func (s *Service) FindUserByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetUserByID(ctx, id)
}
