package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEndpoint       = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultRetryInterval  = 600 * time.Second
	defaultRequestTimeout = 30 * time.Second
	defaultLogFile        = "main.log"
)

// AppConfig holds all configuration for the application.
// It is built once by Load and passed to the components that need it.
type AppConfig struct {
	PracticumToken  string
	TelegramToken   string
	TelegramChatID  string
	PracticumAPIURL string
	RetryInterval   time.Duration // Fixed delay between poll cycles
	RequestTimeout  time.Duration // HTTP client timeout for the Practicum API
	LogLevel        string
	LogFile         string
	Environment     string
}

// Load reads configuration from environment variables and .env file (if present).
// Missing credentials are not an error here; see CheckCredentials.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),
	}
	var err error

	cfg.PracticumAPIURL = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumAPIURL == "" {
		cfg.PracticumAPIURL = defaultEndpoint
	}

	cfg.RetryInterval, err = durationEnv("RETRY_INTERVAL", defaultRetryInterval)
	if err != nil {
		return nil, err
	}

	cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	cfg.LogFile = os.Getenv("LOG_FILE")
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

// CheckCredentials reports whether all three required credentials are set.
func (c *AppConfig) CheckCredentials() bool {
	return c.PracticumToken != "" && c.TelegramToken != "" && c.TelegramChatID != ""
}

// MissingCredentials lists the names of unset credential variables.
func (c *AppConfig) MissingCredentials() []string {
	var missing []string
	if c.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	return missing
}

// durationEnv accepts either a Go duration ("10m") or a plain number of seconds ("600").
func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	if d, err := time.ParseDuration(raw); err == nil {
		if d <= 0 {
			return 0, fmt.Errorf("invalid %s: must be positive, got %s", key, raw)
		}
		return d, nil
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if secs <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %s", key, raw)
	}
	return time.Duration(secs) * time.Second, nil
}
