package memory

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	domain "qatest-api/internal/domain/user"
	apperrors "qatest-api/pkg/errors"
)

// UserStore is the in-memory user collection. A single RWMutex guards the
// backing slice: every mutating operation (create, delete, reset) runs as one
// critical section, so the compute-next-id-then-append pair is atomic and
// reset is never observed half-replaced. All reads hand out deep copies.
type UserStore struct {
	mu    sync.RWMutex
	users []domain.User
	log   *zap.Logger
}

// NewUserStore creates an empty store. The collection stays empty until the
// first Reset populates it with the seed data.
func NewUserStore(log *zap.Logger) *UserStore {
	return &UserStore{
		users: []domain.User{},
		log:   log,
	}
}

// Create validates uniqueness, assigns the next id and appends the user, all
// under one lock. The returned record is a copy of what was stored.
func (s *UserStore) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !domain.IsUniqueMSISDN(u.MSISDN, s.users) {
		s.log.Warn("msisdn already exists", zap.String("msisdn", u.MSISDN))
		return nil, apperrors.NewConflictError("user",
			fmt.Sprintf("User with msisdn %s already exists", u.MSISDN))
	}

	stored := u.Clone()
	stored.ID = domain.NextID(s.users)
	s.users = append(s.users, stored)

	s.log.Debug("user created", zap.Int64("id", stored.ID))
	created := stored.Clone()
	return &created, nil
}

// GetByID retrieves a user by exact id match.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			found := u.Clone()
			return &found, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user",
		fmt.Sprintf("User with id %d not found", id))
}

// GetByMSISDN retrieves a user by exact msisdn match. A missing user is not
// an error: the caller uses nil to decide uniqueness.
func (s *UserStore) GetByMSISDN(ctx context.Context, msisdn string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.MSISDN == msisdn {
			found := u.Clone()
			return &found, nil
		}
	}
	return nil, nil
}

// Delete removes a user by exact id match.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			s.log.Debug("user deleted", zap.Int64("id", id))
			return nil
		}
	}
	return apperrors.NewNotFoundError("user",
		fmt.Sprintf("User with id %d not found", id))
}

// List returns a snapshot copy of the whole collection in insertion order.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CloneAll(s.users), nil
}

// Reset replaces the entire collection with fresh copies of the seed data in
// a single atomic swap.
func (s *UserStore) Reset(ctx context.Context) error {
	seeded := domain.SeedUsers()

	s.mu.Lock()
	s.users = seeded
	s.mu.Unlock()

	s.log.Info("collection reset to seed", zap.Int("users", len(seeded)))
	return nil
}
