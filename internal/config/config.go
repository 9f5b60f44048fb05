// Package config handles configuration loading from environment variables, an
// optional .env file and Kubernetes secrets.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile = ".env"
	minStatDivisor = 3
)

// Config holds all configuration for the iDM exporter.
type Config struct {
	// Device access
	Host     string
	PIN      string
	Timeout  time.Duration
	Language string // catalog tried first, en or de

	// Poll policies
	CycleTime         time.Duration
	StatDivisor       int // 0 disables the statistics pages
	ClockMaxDeviation time.Duration
	ClockCheckHour    int

	// Server configuration
	ListenAddr  string
	DisplayName string

	// Logging configuration
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json
}

// LoadConfig loads configuration from environment variables and Kubernetes secrets.
// Variables from a .env file are applied first without overriding the environment.
func LoadConfig() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{
		// Set defaults
		PIN:            "4444",
		Timeout:        3 * time.Second,
		Language:       "en",
		CycleTime:      10 * time.Second,
		ClockCheckHour: 2,
		ListenAddr:     ":9809",
		DisplayName:    "iDMwb",
		LogLevel:       "info",
		LogFormat:      "text",
	}

	cfg.Host = os.Getenv("IDM_HOST")

	// The PIN from a mounted secret wins over the environment
	pin, err := tryLoadFromSecrets()
	if err != nil {
		return nil, fmt.Errorf("read secrets: %w", err)
	}
	if pin != "" {
		cfg.PIN = pin
	} else if v := os.Getenv("IDM_PIN"); v != "" {
		cfg.PIN = v
	}

	if err := envSeconds("IDM_TIMEOUT", &cfg.Timeout); err != nil {
		return nil, err
	}
	if err := envSeconds("IDM_CYCLE_TIME", &cfg.CycleTime); err != nil {
		return nil, err
	}
	if err := envSeconds("IDM_CLOCK_MAX_DEVIATION", &cfg.ClockMaxDeviation); err != nil {
		return nil, err
	}
	if err := envInt("IDM_STAT_DIV", &cfg.StatDivisor); err != nil {
		return nil, err
	}
	if err := envInt("IDM_CLOCK_CHECK_HOUR", &cfg.ClockCheckHour); err != nil {
		return nil, err
	}

	if lang := os.Getenv("IDM_LANGUAGE"); lang != "" {
		cfg.Language = strings.ToLower(lang)
	}

	if addr := os.Getenv("IDM_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}

	if name := os.Getenv("IDM_DISPLAY_NAME"); name != "" {
		cfg.DisplayName = name
	}

	if level := os.Getenv("IDM_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if format := os.Getenv("IDM_LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}

	return cfg, nil
}

// loadEnvFile applies IDM_ENV_FILE (default .env). A missing file is not an error.
func loadEnvFile() error {
	path := os.Getenv("IDM_ENV_FILE")
	if path == "" {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}

// envSeconds reads a duration given in (possibly fractional) seconds.
func envSeconds(name string, dst *time.Duration) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if f < 0 {
		return fmt.Errorf("%s: must not be negative", name)
	}
	*dst = time.Duration(f * float64(time.Second))
	return nil
}

// Validate checks that all required configuration fields are set and sane.
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("host is required (set IDM_HOST)")
	}
	if c.PIN == "" {
		return errors.New("pin must not be empty")
	}
	if c.Timeout < time.Second {
		return errors.New("timeout must be at least 1 second")
	}
	if c.Language != "en" && c.Language != "de" {
		return fmt.Errorf("language %q not supported (en, de)", c.Language)
	}
	if c.CycleTime < 2*time.Second {
		return errors.New("cycle time must be at least 2 seconds")
	}
	if c.StatDivisor != 0 && c.StatDivisor < minStatDivisor {
		return fmt.Errorf("statistics divisor must be 0 (disabled) or at least %d", minStatDivisor)
	}
	if c.ClockCheckHour < 0 || c.ClockCheckHour > 23 {
		return errors.New("clock check hour must be between 0 and 23")
	}
	if c.DisplayName == "" || strings.ContainsAny(c.DisplayName, " \t") {
		return errors.New("display name must be set and must not contain spaces")
	}
	return nil
}
