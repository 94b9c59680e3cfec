package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/oz/live-bootcamp-project/internal/auth/domain"
	"github.com/oz/live-bootcamp-project/internal/auth/dto"
	autherror "github.com/oz/live-bootcamp-project/internal/errors"
	"github.com/oz/live-bootcamp-project/internal/logger"
)

const twoFAEmailSubject = "Your verification code"

// LoginResult is the outcome of a successful Login call: either a session
// token, or a pending 2FA challenge identified by LoginAttemptID.
type LoginResult struct {
	TwoFARequired  bool
	LoginAttemptID string
	Token          string
}

// AuthService sequences credential verification, 2FA challenges and token
// issuance across the stores. Stores are independent; there is no
// cross-store transaction.
type AuthService struct {
	users        domain.UserStore
	twoFACodes   domain.TwoFACodeStore
	bannedTokens domain.BannedTokenStore
	tokens       TokenManager
	emailClient  domain.EmailClient
	logger       *logger.Logger
}

func NewAuthService(
	users domain.UserStore,
	twoFACodes domain.TwoFACodeStore,
	bannedTokens domain.BannedTokenStore,
	tokens TokenManager,
	emailClient domain.EmailClient,
	logger *logger.Logger,
) *AuthService {
	return &AuthService{
		users:        users,
		twoFACodes:   twoFACodes,
		bannedTokens: bannedTokens,
		tokens:       tokens,
		emailClient:  emailClient,
		logger:       logger,
	}
}

// Signup creates a credential record. Shape-invalid email or password
// fails before any store access.
func (s *AuthService) Signup(ctx context.Context, input dto.SignupInput) error {
	email, err := domain.ParseEmail(input.Email)
	if err != nil {
		return autherror.ErrInvalidCredentials
	}

	password, err := domain.ParsePassword(input.Password)
	if err != nil {
		return autherror.ErrInvalidCredentials
	}

	if err := s.users.AddUser(ctx, domain.NewUser(email, input.Requires2FA), password); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return autherror.ErrUserAlreadyExists
		}

		s.logger.Error("failed to add user", "error", err)
		return autherror.ErrUnexpected
	}

	return nil
}

// Login verifies credentials and branches on the user's 2FA
// configuration: either a token is issued directly, or a fresh challenge
// is stored (superseding any prior one for this email) and its code
// dispatched out-of-band.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (LoginResult, error) {
	email, err := domain.ParseEmail(input.Email)
	if err != nil {
		return LoginResult{}, autherror.ErrInvalidCredentials
	}

	password, err := domain.ParsePassword(input.Password)
	if err != nil {
		return LoginResult{}, autherror.ErrInvalidCredentials
	}

	if err := s.users.ValidateUser(ctx, email, password); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			return LoginResult{}, autherror.ErrIncorrectCredentials
		}

		s.logger.Error("failed to validate user", "error", err)
		return LoginResult{}, autherror.ErrUnexpected
	}

	user, err := s.users.GetUser(ctx, email)
	if err != nil {
		s.logger.Error("failed to get user", "error", err)
		return LoginResult{}, autherror.ErrUnexpected
	}

	if user.Requires2FA {
		return s.startTwoFAChallenge(ctx, email)
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		s.logger.Error("failed to issue token", "error", err)
		return LoginResult{}, autherror.ErrUnexpected
	}

	return LoginResult{Token: token}, nil
}

// startTwoFAChallenge must fully store the challenge before the code is
// dispatched; a send failure leaves a stored but undelivered challenge,
// which simply expires.
func (s *AuthService) startTwoFAChallenge(ctx context.Context, email domain.Email) (LoginResult, error) {
	id := domain.NewLoginAttemptID()
	code, err := domain.NewTwoFACode()
	if err != nil {
		s.logger.Error("failed to generate 2FA code", "error", err)
		return LoginResult{}, autherror.ErrUnexpected
	}

	if err := s.twoFACodes.AddCode(ctx, email, id, code); err != nil {
		s.logger.Error("failed to store 2FA challenge", "error", err)
		return LoginResult{}, autherror.ErrUnexpected
	}

	body := fmt.Sprintf("Your two-factor authentication code is %s. It expires shortly.", code.String())
	if err := s.emailClient.Send(ctx, email, twoFAEmailSubject, body); err != nil {
		s.logger.Error("failed to send 2FA code", "error", err)
		return LoginResult{}, autherror.ErrUnexpected
	}

	return LoginResult{TwoFARequired: true, LoginAttemptID: id.String()}, nil
}

// Verify2FA completes a pending challenge. Both the login attempt id and
// the code must match the stored pair; a mismatch does not reveal which
// field was wrong and does not consume the challenge, so a legitimate
// retry stays possible until the challenge expires. On a match the
// challenge is removed before a token is issued, making it single-use.
func (s *AuthService) Verify2FA(ctx context.Context, input dto.Verify2FAInput) (string, error) {
	email, err := domain.ParseEmail(input.Email)
	if err != nil {
		return "", autherror.ErrInvalidCredentials
	}

	id, err := domain.ParseLoginAttemptID(input.LoginAttemptID)
	if err != nil {
		return "", autherror.ErrInvalidCredentials
	}

	code, err := domain.ParseTwoFACode(input.TwoFACode)
	if err != nil {
		return "", autherror.ErrInvalidCredentials
	}

	storedID, storedCode, err := s.twoFACodes.GetCode(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrLoginAttemptIDNotFound) {
			return "", autherror.ErrIncorrectCredentials
		}

		s.logger.Error("failed to get 2FA challenge", "error", err)
		return "", autherror.ErrUnexpected
	}

	if storedID != id || storedCode != code {
		return "", autherror.ErrIncorrectCredentials
	}

	if err := s.twoFACodes.RemoveCode(ctx, email); err != nil {
		s.logger.Error("failed to remove 2FA challenge", "error", err)
		return "", autherror.ErrUnexpected
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		s.logger.Error("failed to issue token", "error", err)
		return "", autherror.ErrUnexpected
	}

	return token, nil
}

// VerifyToken reports whether token is a live session token.
func (s *AuthService) VerifyToken(ctx context.Context, token string) error {
	if token == "" {
		return autherror.ErrMissingToken
	}

	if _, err := s.tokens.Validate(ctx, token); err != nil {
		if errors.Is(err, autherror.ErrInvalidToken) {
			return autherror.ErrInvalidToken
		}

		s.logger.Error("failed to validate token", "error", err)
		return autherror.ErrUnexpected
	}

	return nil
}

// Logout validates the token before banning it, so an already-invalid
// (or already-banned) token is reported as invalid rather than logged
// out again.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.VerifyToken(ctx, token); err != nil {
		return err
	}

	if err := s.bannedTokens.AddToken(ctx, token); err != nil {
		s.logger.Error("failed to ban token", "error", err)
		return autherror.ErrUnexpected
	}

	return nil
}
