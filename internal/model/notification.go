package model

import "time"

const EventPengaduanResponded = "pengaduan.responded"

type OutboxStatus string

const (
	OutboxPending    OutboxStatus = "pending"
	OutboxProcessing OutboxStatus = "processing"
	OutboxSent       OutboxStatus = "sent"
	OutboxFailed     OutboxStatus = "failed"
)

// Notification adalah satu baris notification_outbox.
type Notification struct {
	ID            int64        `db:"id"              json:"id"`
	EventType     string       `db:"event_type"      json:"event_type"`
	PengaduanID   *int64       `db:"pengaduan_id"    json:"pengaduan_id"`
	Recipient     string       `db:"recipient"       json:"recipient"`
	Subject       string       `db:"subject"         json:"subject"`
	Body          string       `db:"body"            json:"-"`
	Status        OutboxStatus `db:"status"          json:"status"`
	Attempts      int          `db:"attempts"        json:"attempts"`
	LastError     *string      `db:"last_error"      json:"last_error"`
	NextAttemptAt time.Time    `db:"next_attempt_at" json:"next_attempt_at"`
	SentAt        *time.Time   `db:"sent_at"         json:"sent_at"`
	CreatedAt     time.Time    `db:"created_at"      json:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"      json:"updated_at"`
}

// EmailMessage adalah email yang sudah dirender dan siap masuk outbox.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}
