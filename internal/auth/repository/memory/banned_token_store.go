package memory

import (
	"context"
	"sync"
	"time"
)

// BannedTokenStore keeps revoked tokens in a set guarded by a
// readers-writer lock. Entries carry an expiry equal to the remaining
// validity of the token they revoke and are purged lazily on writes, so
// the set never outgrows the live token population.
type BannedTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
	ttl    time.Duration
	now    func() time.Time
}

func NewBannedTokenStore(ttl time.Duration) *BannedTokenStore {
	return &BannedTokenStore{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
		now:    time.Now,
	}
}

// AddToken records token as revoked. Re-adding an already-banned token
// is not an error; it just refreshes the entry.
func (s *BannedTokenStore) AddToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for t, expiresAt := range s.tokens {
		if !expiresAt.After(now) {
			delete(s.tokens, t)
		}
	}

	s.tokens[token] = now.Add(s.ttl)

	return nil
}

func (s *BannedTokenStore) HasToken(ctx context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiresAt, exists := s.tokens[token]

	return exists && expiresAt.After(s.now()), nil
}
