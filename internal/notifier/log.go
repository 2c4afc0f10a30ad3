package notifier

import (
	"context"

	"go.uber.org/zap"
)

// LogSender hanya menulis email ke log. Dipakai di development.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendEmail(_ context.Context, to, subject, htmlBody string) error {
	s.logger.Info("email (driver log)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(htmlBody)),
	)
	return nil
}
