package turf

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

const turfsListKey = "turfs:all"

// CachedRepository decorates a TurfRepository with a short-lived in-process
// cache. Turf records are read-mostly and safe to cache; booking state never
// goes through here. Mutations drop the affected entries.
type CachedRepository struct {
	inner TurfRepository
	cache *cache.Cache
}

func NewCachedRepository(inner TurfRepository) *CachedRepository {
	return &CachedRepository{
		inner: inner,
		cache: cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (r *CachedRepository) GetTurfs(ctx context.Context) ([]Turf, error) {
	if cached, found := r.cache.Get(turfsListKey); found {
		return cached.([]Turf), nil
	}

	turfs, err := r.inner.GetTurfs(ctx)

	if err != nil {
		return nil, err
	}

	r.cache.Set(turfsListKey, turfs, cache.DefaultExpiration)

	return turfs, nil
}

func (r *CachedRepository) GetTurfByID(ctx context.Context, id string) (Turf, error) {
	if cached, found := r.cache.Get(id); found {
		return cached.(Turf), nil
	}

	t, err := r.inner.GetTurfByID(ctx, id)

	if err != nil {
		return Turf{}, err
	}

	r.cache.Set(id, t, cache.DefaultExpiration)

	return t, nil
}

func (r *CachedRepository) GetTurfsPerOwner(ctx context.Context, ownerID string) ([]Turf, error) {
	return r.inner.GetTurfsPerOwner(ctx, ownerID)
}

func (r *CachedRepository) InsertTurf(ctx context.Context, t Turf) (Turf, error) {
	inserted, err := r.inner.InsertTurf(ctx, t)

	if err == nil {
		r.cache.Delete(turfsListKey)
	}

	return inserted, err
}

func (r *CachedRepository) UpdateTurf(ctx context.Context, t Turf) error {
	err := r.inner.UpdateTurf(ctx, t)

	if err == nil {
		r.cache.Delete(t.ID)
		r.cache.Delete(turfsListKey)
	}

	return err
}

func (r *CachedRepository) DeleteTurf(ctx context.Context, id string) error {
	err := r.inner.DeleteTurf(ctx, id)

	if err == nil {
		r.cache.Delete(id)
		r.cache.Delete(turfsListKey)
	}

	return err
}
