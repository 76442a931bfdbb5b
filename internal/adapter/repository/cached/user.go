package cached

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"qatest-api/internal/adapter/cache"
	domain "qatest-api/internal/domain/user"
	"qatest-api/internal/usecase/user"
)

// CachedUserRepository implements user.Repository with caching support.
// It wraps the in-memory store and a cache implementation.
type CachedUserRepository struct {
	store user.Repository
	cache cache.UserCache
	log   *zap.Logger
	group singleflight.Group
}

// NewCachedUserRepository creates a new instance of CachedUserRepository.
func NewCachedUserRepository(store user.Repository, cache cache.UserCache, log *zap.Logger) user.Repository {
	return &CachedUserRepository{
		store: store,
		cache: cache,
		log:   log,
	}
}

// Create delegates to the store. The created record is not pre-warmed into
// the cache; the first GetByID populates it.
func (r *CachedUserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return r.store.Create(ctx, u)
}

// GetByID retrieves a user by ID using the cache-aside pattern.
func (r *CachedUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if r.cache != nil {
		cachedUser, err := r.cache.Get(ctx, id)
		if err != nil {
			r.log.Warn("cache get error, falling back to store", zap.Int64("id", id), zap.Error(err))
		} else if cachedUser != nil {
			return cachedUser, nil
		}
	}

	// Cache miss - use single-flight so concurrent misses for the same id
	// resolve with one store lookup.
	key := fmt.Sprintf("user:%d", id)
	result, err, _ := r.group.Do(key, func() (any, error) {
		if r.cache != nil {
			cachedUser, err := r.cache.Get(ctx, id)
			if err == nil && cachedUser != nil {
				return cachedUser, nil
			}
		}

		u, err := r.store.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if r.cache != nil {
			if err := r.cache.Set(ctx, u); err != nil {
				r.log.Warn("failed to cache user", zap.Int64("id", id), zap.Error(err))
			}
		}

		return u, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*domain.User), nil
}

// GetByMSISDN delegates to the store; the cache is keyed by id only.
func (r *CachedUserRepository) GetByMSISDN(ctx context.Context, msisdn string) (*domain.User, error) {
	return r.store.GetByMSISDN(ctx, msisdn)
}

// Delete removes the user from the store and invalidates the cache entry.
func (r *CachedUserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, id); err != nil {
			r.log.Warn("failed to invalidate cache after delete", zap.Int64("id", id), zap.Error(err))
		}
	}

	return nil
}

// List delegates to the store; listings always read the live collection.
func (r *CachedUserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.store.List(ctx)
}

// Reset replaces the store contents and flushes the whole cache, so no entry
// from before the reset can be served afterwards.
func (r *CachedUserRepository) Reset(ctx context.Context) error {
	if err := r.store.Reset(ctx); err != nil {
		return err
	}

	if r.cache != nil {
		if err := r.cache.Flush(ctx); err != nil {
			r.log.Warn("failed to flush cache after reset", zap.Error(err))
		}
	}

	return nil
}
