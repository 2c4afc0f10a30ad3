// Package notifier mengirim email notifikasi lewat SMTP, HTTP relay atau log.
package notifier

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/config"
)

// Sender mengirim satu email HTML.
type Sender interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

// NewSender memilih implementasi sesuai MAIL_DRIVER.
func NewSender(cfg *config.MailConfig, log *zap.Logger) (Sender, error) {
	switch cfg.Driver {
	case "smtp":
		return NewSMTPSender(cfg), nil
	case "http":
		if cfg.APIURL == "" {
			return nil, fmt.Errorf("MAIL_API_URL wajib diisi untuk driver http")
		}
		return NewHTTPSender(cfg, log), nil
	case "log", "":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("MAIL_DRIVER tidak dikenal: %q", cfg.Driver)
	}
}
