package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// API holds configuration for the HTTP service.
type API struct {
	BindAddr        string
	DatabaseURL     string
	FrontendURL     string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	PricesLocation  *time.Location
}

// Load builds an API config from environment variables.
func Load() (*API, error) {
	c := &API{
		BindAddr:        getEnv("API_BIND_ADDR", ":8080"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		FrontendURL:     getEnv("FRONTEND_URL", ""),
		MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
		ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", "5m"),
	}

	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}
	if c.MaxOpenConns <= 0 {
		return nil, fmt.Errorf("DB_MAX_OPEN_CONNS must be positive")
	}
	if c.ConnMaxLifetime <= 0 {
		return nil, fmt.Errorf("DB_CONN_MAX_LIFETIME must be positive")
	}

	tz := getEnv("PRICES_TIMEZONE", "Asia/Kolkata")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("PRICES_TIMEZONE %q: %w", tz, err)
	}
	c.PricesLocation = loc

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		fd, ferr := time.ParseDuration(fallback)
		if ferr != nil {
			panic(fmt.Sprintf("invalid fallback duration %q: %v", fallback, ferr))
		}
		return fd
	}
	return d
}
