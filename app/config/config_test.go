package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("DB_PASSWORD", "test-password")
	t.Setenv("KRATOS_PUBLIC_URL", "http://kratos-public:4433")
	t.Setenv("KRATOS_ADMIN_URL", "http://kratos-admin:4434")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "thinksync-postgres", cfg.DatabaseHost)
	assert.Equal(t, "thinksync_db", cfg.DatabaseName)
	assert.Equal(t, "admin@thinksync.com", cfg.AdminEmail)
	assert.Equal(t, "System Administrator", cfg.AdminName)
	assert.False(t, cfg.BootstrapEnabled())
}

func TestLoad_RequiredVariables(t *testing.T) {
	tests := []struct {
		name    string
		missing string
	}{
		{"database password", "DB_PASSWORD"},
		{"kratos public url", "KRATOS_PUBLIC_URL"},
		{"kratos admin url", "KRATOS_ADMIN_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.missing, "")

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "not-a-port")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("port out of range", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "70000")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("LOG_LEVEL", "chatty")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestConfig_BootstrapEnabled(t *testing.T) {
	t.Run("enabled when token and password set", func(t *testing.T) {
		cfg := &Config{BootstrapToken: "deploy-token", AdminPassword: "secret"}
		assert.True(t, cfg.BootstrapEnabled())
	})

	t.Run("disabled without token", func(t *testing.T) {
		cfg := &Config{AdminPassword: "secret"}
		assert.False(t, cfg.BootstrapEnabled())
	})

	t.Run("disabled without password", func(t *testing.T) {
		cfg := &Config{BootstrapToken: "deploy-token"}
		assert.False(t, cfg.BootstrapEnabled())
	})
}
