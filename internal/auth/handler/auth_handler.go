package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oz/live-bootcamp-project/internal/auth/dto"
	"github.com/oz/live-bootcamp-project/internal/auth/service"
	autherror "github.com/oz/live-bootcamp-project/internal/errors"
)

// JWTCookieName is the cookie carrying the session token.
const JWTCookieName = "jwt"

type AuthHandler struct {
	authService *service.AuthService
	tokenTTL    time.Duration
}

func NewAuthHandler(authService *service.AuthService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokenTTL:    tokenTTL,
	}
}

// Alive is the liveness endpoint.
func (h *AuthHandler) Alive(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return malformedBody(c)
	}

	if err := h.authService.Signup(c.UserContext(), input); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SignupResponse{
		Message: "User created successfully!",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return malformedBody(c)
	}

	result, err := h.authService.Login(c.UserContext(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	if result.TwoFARequired {
		return c.Status(fiber.StatusPartialContent).JSON(dto.TwoFactorAuthResponse{
			Message:        "2FA required",
			LoginAttemptID: result.LoginAttemptID,
		})
	}

	h.setAuthCookie(c, result.Token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "login successful",
	})
}

func (h *AuthHandler) Verify2FA(c *fiber.Ctx) error {
	var input dto.Verify2FAInput
	if err := c.BodyParser(&input); err != nil {
		return malformedBody(c)
	}

	token, err := h.authService.Verify2FA(c.UserContext(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	h.setAuthCookie(c, token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "2FA verified",
	})
}

func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	var input dto.VerifyTokenInput
	if err := c.BodyParser(&input); err != nil {
		return malformedBody(c)
	}

	if input.Token == "" {
		return errorResponse(c, autherror.ErrMissingToken)
	}

	if err := h.authService.VerifyToken(c.UserContext(), input.Token); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "token is valid",
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(JWTCookieName)
	if token == "" {
		return errorResponse(c, autherror.ErrMissingToken)
	}

	if err := h.authService.Logout(c.UserContext(), token); err != nil {
		return errorResponse(c, err)
	}

	h.clearAuthCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "logged out",
	})
}

func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     JWTCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     JWTCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func malformedBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error": "malformed request body",
	})
}

// errorResponse maps the service error taxonomy to status codes. Unknown
// errors collapse into a generic 500; internal causes never reach the
// client.
func errorResponse(c *fiber.Ctx, err error) error {
	var status int
	switch {
	case errors.Is(err, autherror.ErrInvalidCredentials):
		status = fiber.StatusBadRequest
	case errors.Is(err, autherror.ErrMissingToken):
		status = fiber.StatusBadRequest
	case errors.Is(err, autherror.ErrIncorrectCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrInvalidToken):
		status = fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrUserAlreadyExists):
		status = fiber.StatusConflict
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": autherror.ErrUnexpected.Error(),
		})
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
