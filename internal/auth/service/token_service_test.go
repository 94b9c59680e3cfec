package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/oz/live-bootcamp-project/internal/auth/domain"
	"github.com/oz/live-bootcamp-project/internal/auth/repository/memory"
	"github.com/oz/live-bootcamp-project/internal/auth/service"
	autherror "github.com/oz/live-bootcamp-project/internal/errors"
	"github.com/oz/live-bootcamp-project/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func mustEmail(t *testing.T, raw string) domain.Email {
	t.Helper()
	email, err := domain.ParseEmail(raw)
	require.NoError(t, err)
	return email
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	ctx := context.Background()
	banned := memory.NewBannedTokenStore(10 * time.Minute)
	ts := service.NewTokenService(testSecret, 10*time.Minute, banned)
	email := mustEmail(t, "test@example.com")

	token, err := ts.Issue(email)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := ts.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", claims.Subject)
	assert.True(t, claims.ExpiresAt.After(time.Now().Add(9*time.Minute)))
}

func TestTokenService_Validate_RevokedToken(t *testing.T) {
	ctx := context.Background()
	banned := memory.NewBannedTokenStore(10 * time.Minute)
	ts := service.NewTokenService(testSecret, 10*time.Minute, banned)

	token, err := ts.Issue(mustEmail(t, "test@example.com"))
	require.NoError(t, err)

	require.NoError(t, banned.AddToken(ctx, token))

	// Signature and expiry are still individually valid; revocation wins.
	_, err = ts.Validate(ctx, token)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_Validate_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	banned := memory.NewBannedTokenStore(10 * time.Minute)

	expired := service.NewTokenService(testSecret, -time.Minute, banned)
	token, err := expired.Issue(mustEmail(t, "test@example.com"))
	require.NoError(t, err)

	ts := service.NewTokenService(testSecret, 10*time.Minute, banned)
	_, err = ts.Validate(ctx, token)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_Validate_WrongSecret(t *testing.T) {
	ctx := context.Background()
	banned := memory.NewBannedTokenStore(10 * time.Minute)

	other := service.NewTokenService("a-different-secret", 10*time.Minute, banned)
	token, err := other.Issue(mustEmail(t, "test@example.com"))
	require.NoError(t, err)

	ts := service.NewTokenService(testSecret, 10*time.Minute, banned)
	_, err = ts.Validate(ctx, token)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_Validate_RejectsNonHMACAlg(t *testing.T) {
	ctx := context.Background()
	banned := memory.NewBannedTokenStore(10 * time.Minute)
	ts := service.NewTokenService(testSecret, 10*time.Minute, banned)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "test@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(10 * time.Minute)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.Validate(ctx, token)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_Validate_GarbageToken(t *testing.T) {
	ctx := context.Background()
	banned := memory.NewBannedTokenStore(10 * time.Minute)
	ts := service.NewTokenService(testSecret, 10*time.Minute, banned)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := ts.Validate(ctx, token)
		assert.ErrorIs(t, err, autherror.ErrInvalidToken, "token=%q", token)
	}
}

func TestTokenService_Validate_BannedStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	banned := mocks.NewMockBannedTokenStore(ctrl)
	ts := service.NewTokenService(testSecret, 10*time.Minute, banned)

	token, err := ts.Issue(mustEmail(t, "test@example.com"))
	require.NoError(t, err)

	banned.EXPECT().HasToken(gomock.Any(), token).Return(false, errors.New("backend down"))

	// A backend failure is not the same outcome as a rejected token.
	_, err = ts.Validate(context.Background(), token)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, autherror.ErrInvalidToken)
}
