package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("fails without JWT secret", func(t *testing.T) {
		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "test-secret", cfg.JWTSecret)
		assert.Empty(t, cfg.RedisAddr)
		assert.Equal(t, 600, cfg.TokenTTLSeconds)
		assert.Equal(t, 600, cfg.TwoFATTLSeconds)
		assert.Equal(t, uint32(2), cfg.Hash.Time)
		assert.Equal(t, uint32(15360), cfg.Hash.MemoryKiB)
		assert.Equal(t, uint8(1), cfg.Hash.Parallelism)
		assert.Equal(t, int64(4), cfg.Hash.Workers)
	})

	t.Run("reads overrides from environment", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("PORT", "8081")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("TOKEN_TTL_SECONDS", "120")
		t.Setenv("ARGON2_TIME", "3")
		t.Setenv("ARGON2_MEMORY_KIB", "65536")
		t.Setenv("ARGON2_WORKERS", "8")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8081", cfg.Port)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, 120, cfg.TokenTTLSeconds)
		assert.Equal(t, uint32(3), cfg.Hash.Time)
		assert.Equal(t, uint32(65536), cfg.Hash.MemoryKiB)
		assert.Equal(t, int64(8), cfg.Hash.Workers)
	})

	t.Run("fails on malformed numeric value", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("TOKEN_TTL_SECONDS", "not-a-number")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestConfig_TTLHelpers(t *testing.T) {
	cfg := &Config{TokenTTLSeconds: 600, TwoFATTLSeconds: 300}

	assert.Equal(t, 10*time.Minute, cfg.TokenTTL())
	assert.Equal(t, 5*time.Minute, cfg.TwoFATTL())
}
