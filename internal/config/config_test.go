package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL_HOURS", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "test-secret", cfg.JWTSecret)
	require.Equal(t, 168*time.Hour, cfg.TokenValidity)
	require.Equal(t, "4000", cfg.Port)
	require.Equal(t, "localhost", cfg.DBHost)
	require.Equal(t, "disable", cfg.DBSSLMode)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	for _, ttl := range []string{"abc", "0", "-5"} {
		t.Setenv("TOKEN_TTL_HOURS", ttl)
		_, err := Load()
		require.Error(t, err, "ttl %q", ttl)
	}
}
