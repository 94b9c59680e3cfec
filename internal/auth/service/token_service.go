package service

//go:generate mockgen -source=token_service.go -destination=../../mocks/mock_token_manager.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oz/live-bootcamp-project/internal/auth/domain"
	autherror "github.com/oz/live-bootcamp-project/internal/errors"
)

// TokenManager issues and validates session tokens.
type TokenManager interface {
	Issue(email domain.Email) (string, error)
	Validate(ctx context.Context, token string) (*Claims, error)
}

// Claims is the signed claim set of a session token: subject (email)
// plus the registered time bounds.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues HS256-signed, time-bounded session tokens and
// validates them against signature, expiry and the revocation ledger. It
// holds no state of its own beyond the signing secret.
type TokenService struct {
	secret       domain.Secret
	ttl          time.Duration
	bannedTokens domain.BannedTokenStore
}

func NewTokenService(secret string, ttl time.Duration, bannedTokens domain.BannedTokenStore) *TokenService {
	return &TokenService{
		secret:       domain.NewSecret(secret),
		ttl:          ttl,
		bannedTokens: bannedTokens,
	}
}

// Issue signs a token for email expiring after the configured TTL.
func (s *TokenService) Issue(email domain.Email) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret.Expose()))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Validate checks the revocation ledger before touching the signature:
// a banned token is rejected even when structurally valid and unexpired.
// Every rejection kind (banned, bad signature, expired, wrong algorithm)
// surfaces as ErrInvalidToken so callers cannot tell them apart.
func (s *TokenService) Validate(ctx context.Context, token string) (*Claims, error) {
	banned, err := s.bannedTokens.HasToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to check banned tokens: %w", err)
	}
	if banned {
		return nil, autherror.ErrInvalidToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret.Expose()), nil
	})
	if err != nil || !parsed.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}
