// Package worker menjalankan pengiriman notifikasi dari outbox di background.
package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/model"
	"github.com/ahmadqo/posyandu-desa/internal/notifier"
	"github.com/ahmadqo/posyandu-desa/internal/repository"
)

type DispatcherConfig struct {
	BatchSize    int
	MaxAttempts  int
	RetryBackoff time.Duration // jeda retry ke-n = n * RetryBackoff
	StaleAfter   time.Duration // baris processing lebih lama dari ini dikembalikan ke pending
	SendTimeout  time.Duration
}

func (c DispatcherConfig) withDefaults() DispatcherConfig {
	if c.BatchSize <= 0 {
		c.BatchSize = 20
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 5
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = time.Minute
	}
	if c.StaleAfter <= 0 {
		c.StaleAfter = 10 * time.Minute
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = 30 * time.Second
	}
	return c
}

// NotificationDispatcher mengirim baris outbox yang pending. Pengiriman
// dipicu oleh Kick (setelah pengaduan ditanggapi) dan oleh jadwal cron.
type NotificationDispatcher struct {
	repo   repository.NotificationRepository
	sender notifier.Sender
	cfg    DispatcherConfig
	log    *zap.Logger
	kick   chan struct{}
	now    func() time.Time
}

func NewNotificationDispatcher(repo repository.NotificationRepository, sender notifier.Sender, cfg DispatcherConfig, log *zap.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{
		repo:   repo,
		sender: sender,
		cfg:    cfg.withDefaults(),
		log:    log.Named("dispatcher"),
		kick:   make(chan struct{}, 1),
		now:    time.Now,
	}
}

// Kick meminta dispatcher memproses outbox. Tidak pernah blocking; kick
// yang datang saat kick lain masih menunggu digabung.
func (d *NotificationDispatcher) Kick() {
	select {
	case d.kick <- struct{}{}:
	default:
	}
}

// Run memproses outbox setiap kali di-kick sampai ctx selesai.
func (d *NotificationDispatcher) Run(ctx context.Context) {
	d.log.Info("dispatcher notifikasi berjalan",
		zap.Int("batch_size", d.cfg.BatchSize),
		zap.Int("max_attempts", d.cfg.MaxAttempts),
	)
	for {
		select {
		case <-ctx.Done():
			d.log.Info("dispatcher notifikasi berhenti")
			return
		case <-d.kick:
			if _, err := d.Drain(ctx); err != nil && ctx.Err() == nil {
				d.log.Error("gagal memproses outbox", zap.Error(err))
			}
		}
	}
}

// Drain memproses batch sampai tidak ada lagi baris yang jatuh tempo.
func (d *NotificationDispatcher) Drain(ctx context.Context) (int, error) {
	total := 0
	for {
		n, err := d.ProcessBatch(ctx)
		total += n
		if err != nil || n < d.cfg.BatchSize {
			return total, err
		}
	}
}

// ProcessBatch mengklaim satu batch dan mengirimnya. Mengembalikan jumlah
// baris yang diklaim.
func (d *NotificationDispatcher) ProcessBatch(ctx context.Context) (int, error) {
	items, err := d.repo.ClaimPending(ctx, d.cfg.BatchSize)
	if err != nil {
		return 0, err
	}
	for _, n := range items {
		d.deliver(ctx, n)
	}
	return len(items), nil
}

func (d *NotificationDispatcher) deliver(ctx context.Context, n *model.Notification) {
	log := d.log.With(
		zap.Int64("notification_id", n.ID),
		zap.String("event_type", n.EventType),
		zap.Int("attempt", n.Attempts),
	)

	sendCtx, cancel := context.WithTimeout(ctx, d.cfg.SendTimeout)
	err := d.sender.SendEmail(sendCtx, n.Recipient, n.Subject, n.Body)
	cancel()

	// status ditulis dengan context baru agar hasil tetap tersimpan saat shutdown
	saveCtx, cancelSave := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancelSave()

	if err == nil {
		if err := d.repo.MarkSent(saveCtx, n.ID); err != nil {
			log.Error("gagal menandai notifikasi terkirim", zap.Error(err))
			return
		}
		log.Info("notifikasi terkirim")
		return
	}

	if n.Attempts >= d.cfg.MaxAttempts {
		log.Error("notifikasi gagal permanen", zap.Error(err))
		if err := d.repo.MarkFailed(saveCtx, n.ID, err.Error()); err != nil {
			log.Error("gagal menandai notifikasi gagal", zap.Error(err))
		}
		return
	}

	next := d.now().Add(time.Duration(n.Attempts) * d.cfg.RetryBackoff)
	log.Warn("notifikasi gagal, dijadwalkan ulang", zap.Error(err), zap.Time("next_attempt_at", next))
	if err := d.repo.ScheduleRetry(saveCtx, n.ID, err.Error(), next); err != nil {
		log.Error("gagal menjadwalkan ulang notifikasi", zap.Error(err))
	}
}

// Sweep mengembalikan baris processing yang tertahan lalu memicu pengiriman.
func (d *NotificationDispatcher) Sweep(ctx context.Context) {
	requeued, err := d.repo.RequeueStale(ctx, d.cfg.StaleAfter)
	if err != nil {
		d.log.Error("gagal requeue outbox", zap.Error(err))
	} else if requeued > 0 {
		d.log.Warn("notifikasi tertahan dikembalikan ke antrian", zap.Int64("count", requeued))
	}
	d.Kick()
}

// NewScheduler membuat cron yang menjalankan Sweep sesuai spec
// (mis. "@every 30s"). Pemanggil bertanggung jawab atas Start dan Stop.
func NewScheduler(ctx context.Context, d *NotificationDispatcher, spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(spec, func() { d.Sweep(ctx) }); err != nil {
		return nil, err
	}
	return c, nil
}
