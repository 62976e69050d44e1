// ABOUTME: Configuration loader for the TCO calculator service
// ABOUTME: Loads settings from environment variables (and optional .env) with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port               string
	CacheTTL           int      // seconds, calculation result cache
	CORSAllowedOrigins []string // allowed CORS origins (empty = any origin; public tool)

	// Rate Limiting
	RateLimitEnabled   bool // Enable rate limiting (default: true)
	RateLimitCalculate int  // Requests per minute for the calculate endpoint (default: 30)
	RateLimitDefault   int  // Requests per minute for all other endpoints (default: 100)

	// Engine constants
	GridCarbonIntensity float64 // kg CO2 per kWh for carbon reduction figures (default: 0.4)
	HoursPerYear        float64 // annualization constant (default: 8760)
}

// Load reads configuration from the environment. A .env file in the
// working directory is read first if present; real deployments set the
// environment directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CacheTTL:           getEnvInt("CACHE_TTL", 300),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		RateLimitEnabled:   getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitCalculate: getEnvInt("RATE_LIMIT_CALCULATE", 30),
		RateLimitDefault:   getEnvInt("RATE_LIMIT_DEFAULT", 100),

		GridCarbonIntensity: getEnvFloat("GRID_CARBON_INTENSITY", 0.4),
		HoursPerYear:        getEnvFloat("HOURS_PER_YEAR", 8760),
	}

	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("CACHE_TTL must not be negative, got %d", cfg.CacheTTL)
	}
	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_CALCULATE", cfg.RateLimitCalculate},
		{"RATE_LIMIT_DEFAULT", cfg.RateLimitDefault},
	} {
		if rl.value <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %d", rl.name, rl.value)
		}
	}
	if cfg.GridCarbonIntensity <= 0 {
		return nil, fmt.Errorf("GRID_CARBON_INTENSITY must be positive, got %g", cfg.GridCarbonIntensity)
	}
	if cfg.HoursPerYear <= 0 {
		return nil, fmt.Errorf("HOURS_PER_YEAR must be positive, got %g", cfg.HoursPerYear)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvStringList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
