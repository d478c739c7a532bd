package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "3000"
	defaultPageSize       = 10
	defaultRateLimitRPS   = 5
	defaultRateLimitBurst = 10
	defaultConnectRetries = 5
)

type Config struct {
	Env  string
	Port string

	DB    DBConfig
	Redis RedisConfig

	PageSize       int
	RateLimitRPS   float64
	RateLimitBurst int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DBConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

// DSN renders the keyword/value form accepted by gorm.io/driver/postgres.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

type RedisConfig struct {
	// Addr empty disables caching.
	Addr       string
	MaxRetries int
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from any lookup function, which keeps it testable.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Env:  stringOr(getenv("APP_ENV"), "development"),
		Port: stringOr(getenv("PORT"), defaultPort),
		DB: DBConfig{
			Host:       stringOr(getenv("DB_HOST"), "localhost"),
			User:       getenv("DB_USER"),
			Password:   getenv("DB_PASSWORD"),
			Name:       getenv("DB_NAME"),
			Port:       stringOr(getenv("DB_PORT"), "5432"),
			SSLMode:    stringOr(getenv("DB_SSLMODE"), "disable"),
			MaxRetries: defaultConnectRetries,
		},
		Redis: RedisConfig{
			Addr:       getenv("REDIS_ADDR"),
			MaxRetries: defaultConnectRetries,
		},
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	var err error
	if cfg.PageSize, err = intOr(getenv("EMPLOYEE_PAGE_SIZE"), defaultPageSize); err != nil {
		return Config{}, fmt.Errorf("EMPLOYEE_PAGE_SIZE: %w", err)
	}
	if cfg.PageSize < 1 {
		return Config{}, fmt.Errorf("EMPLOYEE_PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	if cfg.RateLimitBurst, err = intOr(getenv("RATE_LIMIT_BURST"), defaultRateLimitBurst); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	cfg.RateLimitRPS = defaultRateLimitRPS
	if v := getenv("RATE_LIMIT_RPS"); v != "" {
		if cfg.RateLimitRPS, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
		}
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when RATE_LIMIT_RPS is set, got %d", cfg.RateLimitBurst)
	}

	return cfg, nil
}

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func intOr(v string, fallback int) (int, error) {
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
