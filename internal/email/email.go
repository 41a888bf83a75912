package email

import (
	"context"

	"github.com/anshiiika/autoelite-dealership/internal/kafka"
	"go.uber.org/zap"
)

// Sender delivers test-drive confirmations. The current implementation only
// logs the outgoing message; SMTP delivery would slot in behind Send.
type Sender struct {
	logger *zap.Logger
}

func NewSender(logger *zap.Logger) *Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sender{logger: logger}
}

func (s *Sender) Send(_ context.Context, event kafka.TestDriveEvent) error {
	s.logger.Info("send confirmation email",
		zap.String("to", event.Email),
		zap.String("booking_id", event.ID),
		zap.String("model", event.Model),
		zap.String("date", event.Date),
		zap.String("time", event.Time),
	)
	return nil
}
