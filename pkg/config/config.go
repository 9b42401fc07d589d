package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration
	ChatBaseURL      string
	ChatMaxRetries   int
	ChatTimeout      time.Duration
}

// Load reads configuration from the environment. A missing JWT secret or a
// malformed token expiry is fatal: the process must not come up half-configured.
func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	accessExpiry, err := ParseExpiry(getEnv("ACCESS_TOKEN_EXPIRES_IN", "15m"))
	if err != nil {
		log.Fatal("invalid ACCESS_TOKEN_EXPIRES_IN: ", err)
	}

	refreshExpiry, err := ParseExpiry(getEnv("REFRESH_TOKEN_EXPIRES_IN", "7d"))
	if err != nil {
		log.Fatal("invalid REFRESH_TOKEN_EXPIRES_IN: ", err)
	}

	maxRetries, err := strconv.Atoi(getEnv("CHAT_MAX_RETRIES", "10"))
	if err != nil || maxRetries < 1 {
		log.Fatal("invalid CHAT_MAX_RETRIES")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=campus_notice port=5432 sslmode=disable"),
		JWTSecret:        secret,
		JWTAccessExpiry:  accessExpiry,
		JWTRefreshExpiry: refreshExpiry,
		ChatBaseURL:      getEnv("CHAT_BASE_URL", "http://localhost:8000"),
		ChatMaxRetries:   maxRetries,
		ChatTimeout:      30 * time.Second,
	}
}

// ParseExpiry converts an expiry string like "15m", "7d" or a bare number of
// seconds ("900") into a duration. Units: s, m, h, d.
func ParseExpiry(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("empty expiry")
	}

	unit := s[len(s)-1]
	if unit >= '0' && unit <= '9' {
		secs, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid expiry %q", s)
		}
		return time.Duration(secs) * time.Second, nil
	}

	value, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return 0, fmt.Errorf("invalid expiry %q", s)
	}

	switch unit {
	case 's':
		return time.Duration(value) * time.Second, nil
	case 'm':
		return time.Duration(value) * time.Minute, nil
	case 'h':
		return time.Duration(value) * time.Hour, nil
	case 'd':
		return time.Duration(value) * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("invalid unit %q in expiry %q (supported: s, m, h, d)", string(unit), s)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
