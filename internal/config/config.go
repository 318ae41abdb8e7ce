package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	Attendance AttendanceConfig
	CORS       CORSConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	// Pool sizing, passed through to pgxpool.
	MaxConns int32
	MinConns int32
}

// AppConfig holds application configuration
type AppConfig struct {
	Name     string
	Version  string
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig tunes the reconciliation engine.
type AttendanceConfig struct {
	// SandwichWindowDays bounds the scan for enclosing leave days on
	// each side of a holiday.
	SandwichWindowDays int

	// WorkDayHours is the expected hours of a full working day, used
	// by the absent back-fill job.
	WorkDayHours float64

	// BackfillInterval is how often the absent back-fill job wakes up.
	BackfillInterval time.Duration

	// LateLoginAfter is the clock time ("HH:MM") after which a punch-in
	// counts as a late login.
	LateLoginAfter string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// A missing .env file is fine in containerized deployments where
	// everything arrives via real environment variables.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hrms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Name:     getEnv("APP_NAME", "hrms-backend"),
		Version:  getEnv("APP_VERSION", "v1.0.0"),
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Attendance configuration
	sandwichWindow, err := strconv.Atoi(getEnv("SANDWICH_WINDOW_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid SANDWICH_WINDOW_DAYS: %w", err)
	}
	workDayHours, err := strconv.ParseFloat(getEnv("WORK_DAY_HOURS", "9"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_DAY_HOURS: %w", err)
	}

	backfillInterval, err := time.ParseDuration(getEnv("BACKFILL_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKFILL_INTERVAL: %w", err)
	}

	config.Attendance = AttendanceConfig{
		SandwichWindowDays: sandwichWindow,
		WorkDayHours:       workDayHours,
		BackfillInterval:   backfillInterval,
		LateLoginAfter:     getEnv("LATE_LOGIN_AFTER", "09:15"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Attendance.SandwichWindowDays < 1 {
		return fmt.Errorf("SANDWICH_WINDOW_DAYS must be at least 1")
	}
	if c.Attendance.WorkDayHours <= 0 {
		return fmt.Errorf("WORK_DAY_HOURS must be positive")
	}
	if !validator.IsValidClockTime(c.Attendance.LateLoginAfter) {
		return fmt.Errorf("LATE_LOGIN_AFTER must be HH:MM")
	}
	if c.Database.MinConns < 1 || c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("DB_MAX_CONNS/DB_MIN_CONNS must satisfy max >= min >= 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
