package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ahmadqo/posyandu-desa/internal/model"
)

const notificationColumns = `id, event_type, pengaduan_id, recipient, subject, body, status, attempts,
	last_error, next_attempt_at, sent_at, created_at, updated_at`

var notificationList = listQuery{
	table:   "notification_outbox",
	columns: notificationColumns,
	search:  []string{"recipient", "subject"},
	filter:  "status",
	orderBy: "id DESC",
}

// NotificationRepository mengelola tabel notification_outbox.
type NotificationRepository interface {
	FindAll(ctx context.Context, filter model.ListFilter) ([]*model.Notification, int64, error)
	FindByID(ctx context.Context, id int64) (*model.Notification, error)
	// ClaimPending mengambil maksimal limit baris pending yang sudah jatuh
	// tempo dan menandainya processing. Aman dipanggil paralel.
	ClaimPending(ctx context.Context, limit int) ([]*model.Notification, error)
	MarkSent(ctx context.Context, id int64) error
	ScheduleRetry(ctx context.Context, id int64, lastError string, next time.Time) error
	MarkFailed(ctx context.Context, id int64, lastError string) error
	// RequeueStale mengembalikan baris processing yang tertahan lebih lama
	// dari olderThan ke pending.
	RequeueStale(ctx context.Context, olderThan time.Duration) (int64, error)
	// Retry mengembalikan baris failed ke pending. nil jika baris tidak
	// berstatus failed.
	Retry(ctx context.Context, id int64) (*model.Notification, error)
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// insertNotification dipakai di dalam transaksi pengaduan.
func insertNotification(ctx context.Context, db sqlx.ExtContext, n *model.Notification) error {
	query := `
		INSERT INTO notification_outbox (event_type, pengaduan_id, recipient, subject, body, status,
		                                 attempts, next_attempt_at, created_at, updated_at)
		VALUES (:event_type, :pengaduan_id, :recipient, :subject, :body, 'pending', 0, NOW(), NOW(), NOW())
		RETURNING ` + notificationColumns
	return namedReturning(ctx, db, query, n)
}

func (r *notificationRepository) FindAll(ctx context.Context, filter model.ListFilter) ([]*model.Notification, int64, error) {
	return findPage[model.Notification](ctx, r.db, notificationList, filter)
}

func (r *notificationRepository) FindByID(ctx context.Context, id int64) (*model.Notification, error) {
	return findByID[model.Notification](ctx, r.db, "notification_outbox", notificationColumns, id)
}

func (r *notificationRepository) ClaimPending(ctx context.Context, limit int) ([]*model.Notification, error) {
	query := fmt.Sprintf(`
		UPDATE notification_outbox SET status = 'processing', attempts = attempts + 1, updated_at = NOW()
		WHERE id IN (
			SELECT id FROM notification_outbox
			WHERE status = 'pending' AND next_attempt_at <= NOW()
			ORDER BY id
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING %s`, notificationColumns)

	items := []*model.Notification{}
	if err := r.db.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, fmt.Errorf("claim outbox: %w", err)
	}
	return items, nil
}

func (r *notificationRepository) MarkSent(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE notification_outbox SET status = 'sent', sent_at = NOW(), last_error = NULL, updated_at = NOW()
		WHERE id = $1`, id)
	return err
}

func (r *notificationRepository) ScheduleRetry(ctx context.Context, id int64, lastError string, next time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE notification_outbox SET status = 'pending', last_error = $2, next_attempt_at = $3, updated_at = NOW()
		WHERE id = $1`, id, lastError, next)
	return err
}

func (r *notificationRepository) MarkFailed(ctx context.Context, id int64, lastError string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE notification_outbox SET status = 'failed', last_error = $2, updated_at = NOW()
		WHERE id = $1`, id, lastError)
	return err
}

func (r *notificationRepository) RequeueStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notification_outbox SET status = 'pending', updated_at = NOW()
		WHERE status = 'processing' AND updated_at < $1`, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *notificationRepository) Retry(ctx context.Context, id int64) (*model.Notification, error) {
	query := fmt.Sprintf(`
		UPDATE notification_outbox SET status = 'pending', attempts = 0, next_attempt_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'failed'
		RETURNING %s`, notificationColumns)

	items := []*model.Notification{}
	if err := r.db.SelectContext(ctx, &items, query, id); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

var _ NotificationRepository = (*notificationRepository)(nil)
