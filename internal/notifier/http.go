package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/config"
)

// HTTPSender mengirim email lewat API mail relay berbasis JSON.
type HTTPSender struct {
	httpClient *resty.Client
	from       emailAddress
	logger     *zap.Logger
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	From    emailAddress   `json:"from"`
	To      []emailAddress `json:"to"`
	Subject string         `json:"subject"`
	HTML    string         `json:"html"`
}

type sendError struct {
	Message string `json:"message"`
}

func NewHTTPSender(cfg *config.MailConfig, logger *zap.Logger) *HTTPSender {
	client := resty.New().
		SetBaseURL(cfg.APIURL).
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &HTTPSender{
		httpClient: client,
		from:       emailAddress{Email: cfg.FromAddress, Name: cfg.FromName},
		logger:     logger,
	}
}

func (s *HTTPSender) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	var apiErr sendError
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(sendRequest{
			From:    s.from,
			To:      []emailAddress{{Email: to}},
			Subject: subject,
			HTML:    htmlBody,
		}).
		SetError(&apiErr).
		Post("/send")
	if err != nil {
		return fmt.Errorf("mail relay: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("mail relay status %d: %s", resp.StatusCode(), apiErr.Message)
	}

	s.logger.Debug("email terkirim lewat mail relay",
		zap.String("to", to),
		zap.Int("status", resp.StatusCode()),
	)
	return nil
}
