package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ahmadqo/posyandu-desa/internal/config"
	"github.com/ahmadqo/posyandu-desa/internal/database"
	"github.com/ahmadqo/posyandu-desa/internal/handler"
	"github.com/ahmadqo/posyandu-desa/internal/logger"
	"github.com/ahmadqo/posyandu-desa/internal/notifier"
	"github.com/ahmadqo/posyandu-desa/internal/repository"
	"github.com/ahmadqo/posyandu-desa/internal/service"
	"github.com/ahmadqo/posyandu-desa/internal/validation"
	"github.com/ahmadqo/posyandu-desa/internal/worker"
)

const defaultJWTSecret = "change-this-secret"

// @title           Posyandu Desa API
// @version         1.0
// @description     REST API pencatatan balita, ibu hamil, jadwal dan pengaduan posyandu desa.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Jalankan HTTP API beserta dispatcher notifikasi",
		RunE:  func(cmd *cobra.Command, _ []string) error { return runServe(cmd.Context()) },
	}

	root := &cobra.Command{
		Use:          "posyandu",
		Short:        "Backend Posyandu Desa",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	root.AddCommand(
		serve,
		&cobra.Command{
			Use:   "migrate",
			Short: "Jalankan migrasi database lalu keluar",
			RunE:  func(cmd *cobra.Command, _ []string) error { return runMigrate(cmd.Context()) },
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Buat user admin dan kader default jika belum ada",
			RunE:  func(cmd *cobra.Command, _ []string) error { return runSeed(cmd.Context()) },
		},
	)
	return root
}

// bootstrap memuat konfigurasi, logger dan koneksi database.
func bootstrap() (*config.Config, *zap.Logger, *sqlx.DB, error) {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.App.Name)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	if cfg.IsProduction() && cfg.JWT.Secret == defaultJWTSecret {
		return nil, nil, nil, errors.New("JWT_SECRET wajib diisi di production")
	}

	db, err := database.Connect(&cfg.Database)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}
	log.Info("database terhubung", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.Name))
	return cfg, log, db, nil
}

func runMigrate(ctx context.Context) error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck
	defer db.Close()

	applied, err := database.RunMigrations(ctx, db, cfg.App.MigrationsPath, log)
	if err != nil {
		return err
	}
	log.Info("migrasi selesai", zap.Int("applied", applied))
	return nil
}

func runSeed(ctx context.Context) error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck
	defer db.Close()

	return database.NewSeeder(db, log).SeedDefaultUsers(ctx, cfg.Seed.AdminPassword, cfg.Seed.KaderPassword)
}

func runServe(parent context.Context) error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck
	defer db.Close()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ── Database ─────────────────────────────────────
	if _, err := database.RunMigrations(ctx, db, cfg.App.MigrationsPath, log); err != nil {
		return fmt.Errorf("migrasi gagal: %w", err)
	}
	if err := database.NewSeeder(db, log).SeedDefaultUsers(ctx, cfg.Seed.AdminPassword, cfg.Seed.KaderPassword); err != nil {
		log.Warn("seed gagal", zap.Error(err))
	}

	rdb, err := database.ConnectRedis(ctx, &cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()
	log.Info("redis terhubung", zap.String("addr", cfg.Redis.Addr))

	// ── Repositories ─────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(rdb)
	balitaRepo := repository.NewBalitaRepository(db)
	ibuHamilRepo := repository.NewIbuHamilRepository(db)
	jadwalRepo := repository.NewJadwalRepository(db)
	pengaduanRepo := repository.NewPengaduanRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	statistikRepo := repository.NewStatistikRepository(db)

	// ── Notifikasi ───────────────────────────────────
	sender, err := notifier.NewSender(&cfg.Mail, log)
	if err != nil {
		return err
	}
	composer := notifier.NewComposer(cfg.Mail.FromName)
	dispatcher := worker.NewNotificationDispatcher(notificationRepo, sender, worker.DispatcherConfig{
		BatchSize:   cfg.Outbox.BatchSize,
		MaxAttempts: cfg.Outbox.MaxAttempts,
	}, log)

	scheduler, err := worker.NewScheduler(ctx, dispatcher, cfg.Outbox.Schedule)
	if err != nil {
		return fmt.Errorf("jadwal outbox tidak valid %q: %w", cfg.Outbox.Schedule, err)
	}

	// ── Services ─────────────────────────────────────
	v := validation.New()
	authService := service.NewAuthService(userRepo, sessionRepo, v, cfg, log)
	balitaService := service.NewBalitaService(balitaRepo, v, cfg)
	ibuHamilService := service.NewIbuHamilService(ibuHamilRepo, v, cfg)
	jadwalService := service.NewJadwalService(jadwalRepo, v)
	pengaduanService := service.NewPengaduanService(pengaduanRepo, v, composer, dispatcher, log)
	userService := service.NewUserService(userRepo, sessionRepo, v, log)
	notifikasiService := service.NewNotifikasiService(notificationRepo, dispatcher)
	statistikService := service.NewStatistikService(statistikRepo, v)

	// ── Router ───────────────────────────────────────
	router := handler.NewRouter(handler.Handlers{
		Auth:       handler.NewAuthHandler(authService, log),
		Balita:     handler.NewBalitaHandler(balitaService, log),
		IbuHamil:   handler.NewIbuHamilHandler(ibuHamilService, log),
		Jadwal:     handler.NewJadwalHandler(jadwalService, log),
		Pengaduan:  handler.NewPengaduanHandler(pengaduanService, log),
		User:       handler.NewUserHandler(userService, log),
		Notifikasi: handler.NewNotifikasiHandler(notifikasiService, log),
		Statistik:  handler.NewStatistikHandler(statistikService, log),
	}, authService, cfg.App.CORSOrigins, log)

	// ── HTTP Server ──────────────────────────────────
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	dispatcherDone := make(chan struct{})
	go func() {
		defer close(dispatcherDone)
		dispatcher.Run(ctx)
	}()
	scheduler.Start()
	dispatcher.Kick()

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server berjalan", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("menghentikan server")
	case err := <-serverErr:
		if err != nil {
			stop()
			<-scheduler.Stop().Done()
			<-dispatcherDone
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server dipaksa berhenti", zap.Error(err))
	}

	stop()
	<-scheduler.Stop().Done()
	<-dispatcherDone
	log.Info("server berhenti")
	return nil
}
