package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Log      LogConfig
	Mail     MailConfig
	Outbox   OutboxConfig
	Seed     SeedConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Env            string
	URL            string
	CORSOrigins    []string
	MigrationsPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	Secret      string
	ExpireHours int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type LogConfig struct {
	Level  string // debug | info | warn | error
	Format string // json | console
}

// MailConfig memilih transport email untuk notifikasi pengaduan.
// Driver: smtp | http | log
type MailConfig struct {
	Driver       string
	FromAddress  string
	FromName     string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	APIURL       string
	APIKey       string
}

type OutboxConfig struct {
	Schedule    string
	BatchSize   int
	MaxAttempts int
}

type SeedConfig struct {
	AdminPassword string
	KaderPassword string
}

func Load() *Config {
	// Load .env jika ada (development), di production pakai env variable langsung
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}

	return &Config{
		App: AppConfig{
			Name:           getEnv("APP_NAME", "Posyandu Desa"),
			Port:           getEnv("APP_PORT", "8080"),
			Env:            getEnv("APP_ENV", "development"),
			URL:            getEnv("APP_URL", "http://localhost:5173"),
			CORSOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "posyandu"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "posyandu"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "change-this-secret"),
			ExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 24),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Mail: MailConfig{
			Driver:       getEnv("MAIL_DRIVER", "log"),
			FromAddress:  getEnv("MAIL_FROM_ADDRESS", "noreply@posyandu.desa.id"),
			FromName:     getEnv("MAIL_FROM_NAME", "Posyandu Desa"),
			SMTPHost:     getEnv("SMTP_HOST", "localhost"),
			SMTPPort:     getEnvInt("SMTP_PORT", 587),
			SMTPUsername: getEnv("SMTP_USERNAME", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			APIURL:       getEnv("MAIL_API_URL", ""),
			APIKey:       getEnv("MAIL_API_KEY", ""),
		},
		Outbox: OutboxConfig{
			Schedule:    getEnv("OUTBOX_SCHEDULE", "@every 30s"),
			BatchSize:   getEnvInt("OUTBOX_BATCH_SIZE", 20),
			MaxAttempts: getEnvInt("OUTBOX_MAX_ATTEMPTS", 5),
		},
		Seed: SeedConfig{
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "password"),
			KaderPassword: getEnv("SEED_KADER_PASSWORD", "password"),
		},
	}
}

// IsProduction dipakai untuk memilih format log dan menolak secret default.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
