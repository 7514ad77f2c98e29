package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9876, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, time.Minute, cfg.Session.Sweep)
	assert.Equal(t, 5, cfg.Forms.RatePerMinute)
	assert.Equal(t, 3, cfg.Forms.Burst)
	assert.True(t, cfg.PromoEnabled)
	assert.False(t, cfg.TLSEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HRSITE_PORT", "8080")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("PROMO_ENABLED", "false")
	t.Setenv("HRSITE_MENU_FILE", "/etc/hrsite/menu.yaml")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
	assert.False(t, cfg.PromoEnabled)
	assert.Equal(t, "/etc/hrsite/menu.yaml", cfg.MenuFile)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FORM_RATE_BURST=9\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FORM_RATE_BURST") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Forms.Burst)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		msg  string
	}{
		{"unparsable", "HRSITE_PORT", "abc", "failed to parse config"},
		{"port range", "HRSITE_PORT", "70000", "invalid port"},
		{"ttl", "SESSION_TTL", "0s", "session ttl"},
		{"rate", "FORM_RATE_PER_MIN", "0", "form rate"},
		{"half tls", "TLS_CERT_FILE", "/tmp/cert.pem", "TLS_KEY_FILE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
