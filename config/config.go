package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	LogLevel          string
	MaxFileSize       int64
	TesseractDataPath string

	AdvisorBaseURL string
	AdvisorAPIKey  string
	AdvisorModel   string
	AdvisorTimeout time.Duration

	ContextTTL time.Duration
}

// LoadConfig reads configuration from the environment, after loading a
// local .env file when one exists. Real environment variables win over
// the file.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		MaxFileSize:       getEnvInt64("MAX_FILE_SIZE", 16*1024*1024),
		TesseractDataPath: getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),

		AdvisorBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		AdvisorAPIKey:  getEnv("OPENAI_API_KEY", ""),
		AdvisorModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AdvisorTimeout: getEnvDuration("ADVISOR_TIMEOUT", 30*time.Second),

		ContextTTL: getEnvDuration("CONTEXT_TTL", 30*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

// getEnvDuration falls back on unparsable or non-positive values. Both
// duration settings feed tickers and timeouts, which panic on zero or
// negative durations.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
