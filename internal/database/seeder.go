package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewSeeder(db *sqlx.DB, log *zap.Logger) *Seeder {
	return &Seeder{db: db, log: log}
}

type seedUser struct {
	name     string
	email    string
	password string
	role     string
}

// SeedDefaultUsers membuat akun admin dan kader default jika belum ada.
func (s *Seeder) SeedDefaultUsers(ctx context.Context, adminPassword, kaderPassword string) error {
	users := []seedUser{
		{name: "Administrator", email: "admin@posyandu.com", password: adminPassword, role: "admin"},
		{name: "Kader Posyandu", email: "kader@posyandu.com", password: kaderPassword, role: "kader"},
	}

	for _, u := range users {
		var count int
		err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE role = $1", u.role).Scan(&count)
		if err != nil {
			return fmt.Errorf("count %s users: %w", u.role, err)
		}
		if count > 0 {
			s.log.Debug("seed skipped, role already has users", zap.String("role", u.role))
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO users (name, email, password, role, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			ON CONFLICT (email) DO NOTHING
		`, u.name, u.email, string(hashed), u.role)
		if err != nil {
			return fmt.Errorf("seed %s: %w", u.email, err)
		}

		s.log.Info("default user created, change the password after first login",
			zap.String("email", u.email), zap.String("role", u.role))
	}

	return nil
}
