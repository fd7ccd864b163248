package config

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.False(t, cfg.Auth.AuthEnabled())
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 40, cfg.Web.RateLimitBurst)
}

func TestLoad_PrefixedAndFallbackNames(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://fallback")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_EMAIL_PROVIDER", "resend")
	t.Setenv("APP_CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("APP_JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://fallback", cfg.Database.URL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "resend", cfg.Email.Provider)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Web.CORSOrigins)
	assert.True(t, cfg.Auth.AuthEnabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad duration", env: map[string]string{"APP_READ_TIMEOUT": "soon"}},
		{name: "short csrf key", env: map[string]string{"APP_CSRF_KEY": "short"}},
		{name: "unknown provider", env: map[string]string{"APP_EMAIL_PROVIDER": "pigeon"}},
		{name: "weak jwt secret", env: map[string]string{"APP_JWT_SECRET": "weak"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "production")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("production defaults to json", func(t *testing.T) {
		var buf bytes.Buffer
		newLogger(&buf, "production", LogConfig{Level: "info"}).Info("hello", "k", "v")
		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["msg"])
	})

	t.Run("development defaults to text", func(t *testing.T) {
		var buf bytes.Buffer
		newLogger(&buf, "development", LogConfig{}).Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "development", LogConfig{Level: "warn"})
		logger.Info("dropped")
		logger.Warn("kept")
		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("explicit format wins", func(t *testing.T) {
		var buf bytes.Buffer
		newLogger(&buf, "development", LogConfig{Format: "json"}).Info("hello")
		assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
	})
}
