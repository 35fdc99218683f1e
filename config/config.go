package config

import (
	"os"
	"strconv"
)

// Config holds everything the service reads from the environment. It is
// loaded once in main and passed to the components that need it; the
// analytics engine itself never sees it.
type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	GeminiAPIKey string

	// PeakHourMinOrders is the order-count floor a peak hour must clear
	// before it is surfaced as an insight in the analyze feed.
	PeakHourMinOrders int
}

// Load reads the configuration from environment variables, applying
// defaults for the optional ones.
func Load() Config {
	return Config{
		Port:              getenv("PORT", "3000"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		PeakHourMinOrders: getenvInt("PEAK_HOUR_MIN_ORDERS", 10),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
