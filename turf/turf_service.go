package turf

import (
	"context"
)

//go:generate mockgen -source=turf_service.go -destination=mocks/turf_service_mocks.go -package=turf_mocks

type TurfRepository interface {
	GetTurfs(ctx context.Context) ([]Turf, error)
	GetTurfByID(ctx context.Context, id string) (Turf, error)
	GetTurfsPerOwner(ctx context.Context, ownerID string) ([]Turf, error)
	InsertTurf(ctx context.Context, t Turf) (Turf, error)
	UpdateTurf(ctx context.Context, t Turf) error
	DeleteTurf(ctx context.Context, id string) error
}

type Service struct {
	repo TurfRepository
}

func NewService(repo TurfRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetTurfs(ctx context.Context) ([]Turf, error) {
	return s.repo.GetTurfs(ctx)
}

func (s *Service) FindTurfByID(ctx context.Context, id string) (Turf, error) {
	return s.repo.GetTurfByID(ctx, id)
}

func (s *Service) FindTurfsPerOwner(ctx context.Context, ownerID string) ([]Turf, error) {
	return s.repo.GetTurfsPerOwner(ctx, ownerID)
}

// CreateTurf inserts a new turf owned by ownerID.
func (s *Service) CreateTurf(ctx context.Context, t Turf, ownerID string) (Turf, error) {
	t.OwnerID = ownerID

	if err := t.Validate(); err != nil {
		return Turf{}, err
	}

	return s.repo.InsertTurf(ctx, t)
}

// ModifyTurf updates a turf. Only the owning user may modify it; the owner
// reference itself is immutable.
func (s *Service) ModifyTurf(ctx context.Context, updated Turf, userID string) (Turf, error) {
	t, err := s.repo.GetTurfByID(ctx, updated.ID)

	if err != nil {
		return Turf{}, err
	}

	if t.OwnerID != userID {
		return Turf{}, ErrNotAllowed
	}

	t.Name = updated.Name
	t.Description = updated.Description
	t.SportType = updated.SportType
	t.Location = updated.Location
	t.PricePerHour = updated.PricePerHour
	t.ImageURL = updated.ImageURL
	t.AvailableFrom = updated.AvailableFrom
	t.AvailableTo = updated.AvailableTo

	if err := t.Validate(); err != nil {
		return Turf{}, err
	}

	if err := s.repo.UpdateTurf(ctx, t); err != nil {
		return Turf{}, err
	}

	return t, nil
}

func (s *Service) DeleteTurf(ctx context.Context, id, userID string) error {
	t, err := s.repo.GetTurfByID(ctx, id)

	if err != nil {
		return err
	}

	if t.OwnerID != userID {
		return ErrNotAllowed
	}

	return s.repo.DeleteTurf(ctx, id)
}
