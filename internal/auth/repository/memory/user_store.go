package memory

import (
	"context"
	"sync"

	"github.com/oz/live-bootcamp-project/internal/auth/domain"
)

// UserStore keeps credential records in a map guarded by a
// readers-writer lock. Hashing runs outside the lock so concurrent
// lookups are never blocked behind an expensive hash.
type UserStore struct {
	mu     sync.RWMutex
	users  map[domain.Email]domain.User
	hasher domain.PasswordHasher
}

func NewUserStore(hasher domain.PasswordHasher) *UserStore {
	return &UserStore{
		users:  make(map[domain.Email]domain.User),
		hasher: hasher,
	}
}

// AddUser hashes the password and check-and-inserts the record under the
// write lock. A duplicate email is rejected, never overwritten.
func (s *UserStore) AddUser(ctx context.Context, user domain.User, password domain.Password) error {
	hashed, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return domain.ErrUserAlreadyExists
	}
	s.users[user.Email] = user

	return nil
}

func (s *UserStore) GetUser(ctx context.Context, email domain.Email) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[email]
	if !exists {
		return domain.User{}, domain.ErrUserNotFound
	}

	return user, nil
}

// ValidateUser verifies the candidate password against the stored hash.
// The lock is released before verification runs.
func (s *UserStore) ValidateUser(ctx context.Context, email domain.Email, password domain.Password) error {
	user, err := s.GetUser(ctx, email)
	if err != nil {
		return err
	}

	return s.hasher.Compare(ctx, user.PasswordHash, password)
}
