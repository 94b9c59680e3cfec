package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannedTokenStore_AddAndHas(t *testing.T) {
	ctx := context.Background()
	store := NewBannedTokenStore(10 * time.Minute)

	banned, err := store.HasToken(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, banned)

	require.NoError(t, store.AddToken(ctx, "token-a"))

	banned, err = store.HasToken(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, banned)

	banned, err = store.HasToken(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestBannedTokenStore_AddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewBannedTokenStore(10 * time.Minute)

	require.NoError(t, store.AddToken(ctx, "token-a"))
	require.NoError(t, store.AddToken(ctx, "token-a"))

	banned, err := store.HasToken(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, banned)
}

func TestBannedTokenStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewBannedTokenStore(10 * time.Minute)

	current := time.Now()
	store.now = func() time.Time { return current }

	require.NoError(t, store.AddToken(ctx, "token-a"))

	current = current.Add(10*time.Minute + time.Second)

	banned, err := store.HasToken(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, banned)

	// The next write sweeps the expired entry out of the set.
	require.NoError(t, store.AddToken(ctx, "token-b"))
	assert.Len(t, store.tokens, 1)
}

func TestBannedTokenStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewBannedTokenStore(10 * time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := string(rune('a' + i%4))
			_ = store.AddToken(ctx, token)
			_, _ = store.HasToken(ctx, token)
		}(i)
	}
	wg.Wait()

	for _, token := range []string{"a", "b", "c", "d"} {
		banned, err := store.HasToken(ctx, token)
		require.NoError(t, err)
		assert.True(t, banned)
	}
}
