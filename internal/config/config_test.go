package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"krishiapi/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/prices")
	t.Setenv("API_BIND_ADDR", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("DB_CONN_MAX_LIFETIME", "")
	t.Setenv("PRICES_TIMEZONE", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.BindAddr)
	require.Equal(t, "postgres://localhost/prices", cfg.DatabaseURL)
	require.Empty(t, cfg.FrontendURL)
	require.Equal(t, 25, cfg.MaxOpenConns)
	require.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)
	require.Equal(t, "Asia/Kolkata", cfg.PricesLocation.String())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db:5432/agri")
	t.Setenv("API_BIND_ADDR", "127.0.0.1:9000")
	t.Setenv("FRONTEND_URL", "https://krishi.example.com")
	t.Setenv("DB_MAX_OPEN_CONNS", "5")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30s")
	t.Setenv("PRICES_TIMEZONE", "UTC")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9000", cfg.BindAddr)
	require.Equal(t, "https://krishi.example.com", cfg.FrontendURL)
	require.Equal(t, 5, cfg.MaxOpenConns)
	require.Equal(t, 30*time.Second, cfg.ConnMaxLifetime)
	require.Equal(t, time.UTC, cfg.PricesLocation)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing database url", env: map[string]string{"DATABASE_URL": ""}},
		{name: "zero pool", env: map[string]string{"DB_MAX_OPEN_CONNS": "0"}},
		{name: "negative lifetime", env: map[string]string{"DB_CONN_MAX_LIFETIME": "-1m"}},
		{name: "unknown timezone", env: map[string]string{"PRICES_TIMEZONE": "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://localhost/prices")
			t.Setenv("DB_MAX_OPEN_CONNS", "")
			t.Setenv("DB_CONN_MAX_LIFETIME", "")
			t.Setenv("PRICES_TIMEZONE", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			require.Error(t, err)
		})
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/prices")
	t.Setenv("DB_CONN_MAX_LIFETIME", "soon")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)
}
