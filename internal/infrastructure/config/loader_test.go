package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults plus environment overrides", func(t *testing.T) {
		t.Setenv("PR_PROVIDER_WEBHOOKSECRET", "whsec_test")
		t.Setenv("PR_ADMIN_KEYHASH", "$2a$10$hash")
		t.Setenv("PR_SERVER_PORT", "9090")
		t.Setenv("PR_DATABASE_PASSWORD", "s3cret")

		cfg, err := LoadConfig("nonexistent-env")

		require.NoError(t, err)
		assert.Equal(t, "nonexistent-env", cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "whsec_test", cfg.Provider.WebhookSecret)
		assert.Equal(t, "$2a$10$hash", cfg.Admin.KeyHash)
		assert.Equal(t, "s3cret", cfg.Database.Password)

		// Numeric fields are normalized into their documented units
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, 10*time.Second, cfg.Provider.RequestTimeout)
	})

	t.Run("Missing webhook secret fails validation", func(t *testing.T) {
		t.Setenv("PR_ADMIN_KEYHASH", "$2a$10$hash")

		cfg, err := LoadConfig("nonexistent-env")

		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "webhook secret")
	})

	t.Run("Missing admin key hash fails validation", func(t *testing.T) {
		t.Setenv("PR_PROVIDER_WEBHOOKSECRET", "whsec_test")

		cfg, err := LoadConfig("nonexistent-env")

		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "admin key hash")
	})

	t.Run("Invalid port fails validation", func(t *testing.T) {
		t.Setenv("PR_PROVIDER_WEBHOOKSECRET", "whsec_test")
		t.Setenv("PR_ADMIN_KEYHASH", "$2a$10$hash")
		t.Setenv("PR_SERVER_PORT", "99999")

		cfg, err := LoadConfig("nonexistent-env")

		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "port")
	})
}
