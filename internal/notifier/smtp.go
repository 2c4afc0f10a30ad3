package notifier

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ahmadqo/posyandu-desa/internal/config"
)

type SMTPSender struct {
	addr     string
	host     string
	username string
	password string
	from     mail.Address
	dial     func(ctx context.Context, network, addr string) (net.Conn, error)
}

func NewSMTPSender(cfg *config.MailConfig) *SMTPSender {
	dialer := &net.Dialer{Timeout: 30 * time.Second}
	return &SMTPSender{
		addr:     net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		host:     cfg.SMTPHost,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     mail.Address{Name: cfg.FromName, Address: cfg.FromAddress},
		dial:     dialer.DialContext,
	}
}

// SendEmail mengirim satu email. Seluruh percakapan SMTP dibatasi oleh ctx:
// deadline ctx menjadi deadline koneksi, dan pembatalan ctx memutus I/O
// yang sedang berjalan.
func (s *SMTPSender) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	conn, err := s.dial(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("smtp %s: %w", s.addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return fmt.Errorf("smtp %s: %w", s.addr, err)
		}
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	msg := buildMessage(s.from, to, subject, htmlBody, time.Now())
	if err := s.deliver(conn, to, msg); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("smtp %s: %w", s.addr, ctxErr)
		}
		// deadline koneksi hanya berasal dari ctx
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return fmt.Errorf("smtp %s: %w", s.addr, context.DeadlineExceeded)
		}
		return fmt.Errorf("smtp %s: %w", s.addr, err)
	}
	return nil
}

// deliver menjalankan langkah yang sama dengan smtp.SendMail di atas
// koneksi yang sudah dibuka.
func (s *SMTPSender) deliver(conn net.Conn, to string, msg []byte) error {
	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}
	if s.username != "" {
		if ok, _ := c.Extension("AUTH"); !ok {
			return errors.New("server tidak mendukung AUTH")
		}
		if err := c.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
			return err
		}
	}

	if err := c.Mail(s.from.Address); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func buildMessage(from mail.Address, to, subject, htmlBody string, now time.Time) []byte {
	var b strings.Builder
	b.WriteString("From: " + from.String() + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("Date: " + now.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(htmlBody, "\n", "\r\n"))
	return []byte(b.String())
}
