package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oz/live-bootcamp-project/internal/auth/domain"
)

const uniqueViolationCode = "23505"

// DB is the subset of pgxpool.Pool the store needs; pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserStore persists credential records in the users table. Uniqueness
// on email is enforced by the primary key, so check-and-insert is a
// single INSERT.
type UserStore struct {
	db     DB
	hasher domain.PasswordHasher
}

func NewUserStore(db DB, hasher domain.PasswordHasher) *UserStore {
	return &UserStore{db: db, hasher: hasher}
}

func (s *UserStore) AddUser(ctx context.Context, user domain.User, password domain.Password) error {
	hashed, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO users (email, password_hash, requires_2fa)
		VALUES ($1, $2, $3)
	`, user.Email.String(), string(hashed), user.Requires2FA)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrUserAlreadyExists
		}

		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (s *UserStore) GetUser(ctx context.Context, email domain.Email) (domain.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT email, password_hash, requires_2fa
		FROM users
		WHERE email = $1
	`, email.String())

	var (
		storedEmail  string
		passwordHash string
		requires2FA  bool
	)
	if err := row.Scan(&storedEmail, &passwordHash, &requires2FA); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	parsedEmail, err := domain.ParseEmail(storedEmail)
	if err != nil {
		return domain.User{}, fmt.Errorf("stored email %q is malformed: %w", storedEmail, err)
	}

	return domain.User{
		Email:        parsedEmail,
		PasswordHash: domain.PasswordHash(passwordHash),
		Requires2FA:  requires2FA,
	}, nil
}

func (s *UserStore) ValidateUser(ctx context.Context, email domain.Email, password domain.Password) error {
	user, err := s.GetUser(ctx, email)
	if err != nil {
		return err
	}

	return s.hasher.Compare(ctx, user.PasswordHash, password)
}
