package hash

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/oz/live-bootcamp-project/internal/auth/domain"
	"golang.org/x/crypto/argon2"
	"golang.org/x/sync/semaphore"
)

const (
	saltLength = 16
	keyLength  = 32
)

var errMalformedHash = errors.New("malformed password hash")

// Params are the Argon2id cost parameters. They are recorded in every
// encoded hash, so they can be tuned without invalidating stored hashes.
type Params struct {
	Time        uint32
	MemoryKiB   uint32
	Parallelism uint8
}

// Hasher computes and verifies Argon2id password hashes in standard PHC
// encoding. The hash is intentionally expensive, so work is bounded by a
// weighted semaphore: at most workers hashes run at once and callers wait
// (respecting context cancellation) rather than saturating the process.
type Hasher struct {
	params  Params
	workers *semaphore.Weighted
}

func New(params Params, workers int64) *Hasher {
	if workers < 1 {
		workers = 1
	}

	return &Hasher{
		params:  params,
		workers: semaphore.NewWeighted(workers),
	}
}

// Hash derives a salted Argon2id digest of password and returns it in PHC
// string form.
func (h *Hasher) Hash(ctx context.Context, password domain.Password) (domain.PasswordHash, error) {
	if err := h.workers.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("failed to acquire hashing worker: %w", err)
	}
	defer h.workers.Release(1)

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password.Expose()), salt, h.params.Time, h.params.MemoryKiB, h.params.Parallelism, keyLength)

	return domain.PasswordHash(encode(h.params, salt, key)), nil
}

// Compare verifies candidate against an encoded hash, using the cost
// parameters recorded in the hash itself. A mismatch is reported as
// domain.ErrInvalidCredentials.
func (h *Hasher) Compare(ctx context.Context, hash domain.PasswordHash, candidate domain.Password) error {
	if err := h.workers.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("failed to acquire hashing worker: %w", err)
	}
	defer h.workers.Release(1)

	params, salt, key, err := decode(string(hash))
	if err != nil {
		return err
	}

	candidateKey := argon2.IDKey([]byte(candidate.Expose()), salt, params.Time, params.MemoryKiB, params.Parallelism, uint32(len(key)))

	if subtle.ConstantTimeCompare(key, candidateKey) != 1 {
		return domain.ErrInvalidCredentials
	}

	return nil
}

func encode(params Params, salt, key []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		params.MemoryKiB,
		params.Time,
		params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decode(hash string) (Params, []byte, []byte, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Params{}, nil, nil, errMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Params{}, nil, nil, errMalformedHash
	}
	if version != argon2.Version {
		return Params{}, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	var params Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.MemoryKiB, &params.Time, &params.Parallelism); err != nil {
		return Params{}, nil, nil, errMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, errMalformedHash
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return Params{}, nil, nil, errMalformedHash
	}

	return params, salt, key, nil
}
