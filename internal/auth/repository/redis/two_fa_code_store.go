package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oz/live-bootcamp-project/internal/auth/domain"
	"github.com/redis/go-redis/v9"
)

const twoFACodeKeyPrefix = "two_fa_code:"

type challengeRecord struct {
	LoginAttemptID string `json:"loginAttemptId"`
	Code           string `json:"code"`
}

// TwoFACodeStore keeps the single live challenge per email under a TTL'd
// key. SET with expiry gives last-writer-wins supersession for free.
type TwoFACodeStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTwoFACodeStore(client *redis.Client, ttl time.Duration) *TwoFACodeStore {
	return &TwoFACodeStore{client: client, ttl: ttl}
}

func (s *TwoFACodeStore) AddCode(ctx context.Context, email domain.Email, id domain.LoginAttemptID, code domain.TwoFACode) error {
	value, err := json.Marshal(challengeRecord{
		LoginAttemptID: id.String(),
		Code:           code.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode challenge: %w", err)
	}

	if err := s.client.Set(ctx, twoFACodeKey(email), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set challenge: %w", err)
	}

	return nil
}

func (s *TwoFACodeStore) GetCode(ctx context.Context, email domain.Email) (domain.LoginAttemptID, domain.TwoFACode, error) {
	value, err := s.client.Get(ctx, twoFACodeKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.LoginAttemptID{}, domain.TwoFACode{}, domain.ErrLoginAttemptIDNotFound
		}

		return domain.LoginAttemptID{}, domain.TwoFACode{}, fmt.Errorf("failed to get challenge: %w", err)
	}

	var record challengeRecord
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return domain.LoginAttemptID{}, domain.TwoFACode{}, fmt.Errorf("failed to decode challenge: %w", err)
	}

	id, err := domain.ParseLoginAttemptID(record.LoginAttemptID)
	if err != nil {
		return domain.LoginAttemptID{}, domain.TwoFACode{}, fmt.Errorf("stored login attempt id is malformed: %w", err)
	}

	code, err := domain.ParseTwoFACode(record.Code)
	if err != nil {
		return domain.LoginAttemptID{}, domain.TwoFACode{}, fmt.Errorf("stored 2FA code is malformed: %w", err)
	}

	return id, code, nil
}

func (s *TwoFACodeStore) RemoveCode(ctx context.Context, email domain.Email) error {
	removed, err := s.client.Del(ctx, twoFACodeKey(email)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}
	if removed == 0 {
		return domain.ErrLoginAttemptIDNotFound
	}

	return nil
}

func twoFACodeKey(email domain.Email) string {
	return twoFACodeKeyPrefix + email.String()
}
