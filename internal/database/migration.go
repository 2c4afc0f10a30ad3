package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// RunMigrations menjalankan semua file SQL di folder migrations secara berurutan
// dan mengembalikan jumlah migration yang baru diterapkan.
func RunMigrations(ctx context.Context, db *sqlx.DB, migrationsPath string, log *zap.Logger) (int, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version     VARCHAR(255) PRIMARY KEY,
			executed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to create migrations table: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(migrationsPath, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to read migration files: %w", err)
	}

	sort.Strings(files) // pastikan urutan: 001_, 002_, dst

	applied := 0
	for _, file := range files {
		version := filepath.Base(file)

		var exists bool
		err := db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", version,
		).Scan(&exists)
		if err != nil {
			return applied, fmt.Errorf("failed to check migration %s: %w", version, err)
		}

		if exists {
			log.Debug("migration already applied", zap.String("version", version))
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		sql := string(content)
		if strings.TrimSpace(sql) == "" {
			continue
		}

		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return applied, fmt.Errorf("failed to begin transaction for %s: %w", version, err)
		}

		if _, err := tx.ExecContext(ctx, sql); err != nil {
			tx.Rollback()
			return applied, fmt.Errorf("failed to execute migration %s: %w", version, err)
		}

		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
			tx.Rollback()
			return applied, fmt.Errorf("failed to record migration %s: %w", version, err)
		}

		if err := tx.Commit(); err != nil {
			return applied, fmt.Errorf("failed to commit migration %s: %w", version, err)
		}

		applied++
		log.Info("migration applied", zap.String("version", version))
	}

	return applied, nil
}
