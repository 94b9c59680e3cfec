package memory

import (
	"context"
	"sync"
	"time"

	"github.com/oz/live-bootcamp-project/internal/auth/domain"
)

type challenge struct {
	id        domain.LoginAttemptID
	code      domain.TwoFACode
	expiresAt time.Time
}

// TwoFACodeStore holds at most one live challenge per email. AddCode is
// last-writer-wins, which is how a re-login invalidates a stale code;
// expired entries are treated as absent.
type TwoFACodeStore struct {
	mu         sync.RWMutex
	challenges map[domain.Email]challenge
	ttl        time.Duration
	now        func() time.Time
}

func NewTwoFACodeStore(ttl time.Duration) *TwoFACodeStore {
	return &TwoFACodeStore{
		challenges: make(map[domain.Email]challenge),
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *TwoFACodeStore) AddCode(ctx context.Context, email domain.Email, id domain.LoginAttemptID, code domain.TwoFACode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for e, c := range s.challenges {
		if !c.expiresAt.After(now) {
			delete(s.challenges, e)
		}
	}

	s.challenges[email] = challenge{
		id:        id,
		code:      code,
		expiresAt: now.Add(s.ttl),
	}

	return nil
}

func (s *TwoFACodeStore) GetCode(ctx context.Context, email domain.Email) (domain.LoginAttemptID, domain.TwoFACode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.challenges[email]
	if !exists || !c.expiresAt.After(s.now()) {
		return domain.LoginAttemptID{}, domain.TwoFACode{}, domain.ErrLoginAttemptIDNotFound
	}

	return c.id, c.code, nil
}

func (s *TwoFACodeStore) RemoveCode(ctx context.Context, email domain.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.challenges[email]; !exists {
		return domain.ErrLoginAttemptIDNotFound
	}
	delete(s.challenges, email)

	return nil
}
