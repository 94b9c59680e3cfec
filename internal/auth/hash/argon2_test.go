package hash_test

import (
	"context"
	"strings"
	"testing"

	"github.com/oz/live-bootcamp-project/internal/auth/domain"
	"github.com/oz/live-bootcamp-project/internal/auth/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Low-cost parameters keep the tests fast; correctness does not depend
// on the cost.
var testParams = hash.Params{Time: 1, MemoryKiB: 1024, Parallelism: 1}

func mustPassword(t *testing.T, raw string) domain.Password {
	t.Helper()
	password, err := domain.ParsePassword(raw)
	require.NoError(t, err)
	return password
}

func TestHasher_HashAndCompare(t *testing.T) {
	ctx := context.Background()
	h := hash.New(testParams, 2)
	password := mustPassword(t, "password123")

	hashed, err := h.Hash(ctx, password)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(hashed), "$argon2id$"))
	assert.NotContains(t, string(hashed), "password123")

	assert.NoError(t, h.Compare(ctx, hashed, password))
}

func TestHasher_Compare_WrongPassword(t *testing.T) {
	ctx := context.Background()
	h := hash.New(testParams, 2)

	hashed, err := h.Hash(ctx, mustPassword(t, "password123"))
	require.NoError(t, err)

	err = h.Compare(ctx, hashed, mustPassword(t, "wrong-password"))
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestHasher_Hash_Salted(t *testing.T) {
	ctx := context.Background()
	h := hash.New(testParams, 2)
	password := mustPassword(t, "password123")

	first, err := h.Hash(ctx, password)
	require.NoError(t, err)
	second, err := h.Hash(ctx, password)
	require.NoError(t, err)

	// Fresh salt per hash: same password never produces the same digest.
	assert.NotEqual(t, first, second)
	assert.NoError(t, h.Compare(ctx, first, password))
	assert.NoError(t, h.Compare(ctx, second, password))
}

func TestHasher_Compare_UsesEncodedParams(t *testing.T) {
	ctx := context.Background()
	password := mustPassword(t, "password123")

	hashed, err := hash.New(testParams, 2).Hash(ctx, password)
	require.NoError(t, err)

	// A hasher configured with different costs still verifies hashes
	// produced under the old parameters.
	other := hash.New(hash.Params{Time: 3, MemoryKiB: 2048, Parallelism: 2}, 2)
	assert.NoError(t, other.Compare(ctx, hashed, password))
}

func TestHasher_Compare_MalformedHash(t *testing.T) {
	ctx := context.Background()
	h := hash.New(testParams, 2)
	password := mustPassword(t, "password123")

	malformed := []domain.PasswordHash{
		"",
		"plaintext-left-over",
		"$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$not!base64$a2V5",
		"$argon2id$v=19$garbage$c2FsdA$a2V5",
	}

	for _, hashed := range malformed {
		err := h.Compare(ctx, hashed, password)
		assert.Error(t, err, "hash=%q", hashed)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials, "hash=%q", hashed)
	}
}

func TestHasher_CancelledContext(t *testing.T) {
	h := hash.New(testParams, 1)
	password := mustPassword(t, "password123")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Hash(ctx, password)
	assert.ErrorIs(t, err, context.Canceled)

	err = h.Compare(ctx, "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$a2V5", password)
	assert.ErrorIs(t, err, context.Canceled)
}
