package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	for _, key := range []string{"PORT", "REQUEST_TIMEOUT", "POLL_TIMEZONE", "REDIS_ADDR", "VOTE_RATE_LIMIT", "VOTE_RATE_BURST", "EMAIL_PROVIDER", "ALLOWED_ORIGINS", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.UTC, cfg.PollLocation)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 5.0, cfg.RateLimit.PerSecond)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Error(t, cfg.RequireJWTSecret())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("POLL_TIMEZONE", "Europe/Berlin")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("POLL_CACHE_TTL", "1m")
	t.Setenv("VOTE_RATE_LIMIT", "0.5")
	t.Setenv("VOTE_RATE_BURST", "3")
	t.Setenv("EMAIL_PROVIDER", "SES")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("SES_INSECURE_SKIP_VERIFY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.NoError(t, cfg.RequireJWTSecret())
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "Europe/Berlin", cfg.PollLocation.String())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 0.5, cfg.RateLimit.PerSecond)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.Equal(t, "ses", cfg.Email.Provider)
	assert.Equal(t, "eu-west-1", cfg.Email.AWSRegion)
	assert.True(t, cfg.Email.SESInsecureSkipVerify)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown timezone", "POLL_TIMEZONE", "Mars/Olympus"},
		{"zero timeout", "REQUEST_TIMEOUT", "0s"},
		{"zero burst", "VOTE_RATE_BURST", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "production")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), strings.Split(tt.key, "_")[0])
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("production writes JSON", func(t *testing.T) {
		var buf bytes.Buffer
		newLogger(&buf, "production", "").Info("hello", "k", "v")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "v", rec["k"])
	})

	t.Run("development writes text", func(t *testing.T) {
		var buf bytes.Buffer
		newLogger(&buf, "development", "").Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "development", "warn")
		logger.Info("dropped")
		logger.Warn("kept")
		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}
