package email

import (
	"context"

	"github.com/oz/live-bootcamp-project/internal/auth/domain"
	"github.com/oz/live-bootcamp-project/internal/logger"
)

// LogClient is an EmailClient that records deliveries in the application
// log instead of talking to a mail provider. It is the default wiring in
// environments without an outbound mail integration. The body is never
// logged; it carries the 2FA code.
type LogClient struct {
	logger *logger.Logger
}

func NewLogClient(logger *logger.Logger) *LogClient {
	return &LogClient{logger: logger}
}

func (c *LogClient) Send(ctx context.Context, recipient domain.Email, subject, body string) error {
	c.logger.Info("sending email",
		"recipient", recipient.String(),
		"subject", subject)

	return nil
}
