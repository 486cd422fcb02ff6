package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadFromEnv reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LISTEN_ADDR", "TLS_CERT_FILE", "TLS_KEY_FILE", "ALLOW_INSECURE_HTTP",
		"WORKSPACE_FILE", "LOG_LEVEL", "ENV", "ENABLE_TABS", "SESSION_IDLE_TIMEOUT",
		"SESSION_SWEEP_SCHEDULE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("PREFS_DB_PATH", "")
	os.Unsetenv("PREFS_DB_PATH") //nolint:errcheck // restored by t.Setenv cleanup
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "dwex_prefs.sqlite", cfg.PrefsDBPath)
	assert.Empty(t, cfg.WorkspaceFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.EnableTabs)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, "@every 1m", cfg.SessionSweepSchedule)
	assert.InDelta(t, 50, cfg.RateLimitRPS, 0.001)
	assert.Equal(t, 100, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.Warnings)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.TLSEnabled())
}

func TestLoadFromEnv_AllVarsSet(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("PREFS_DB_PATH", "/tmp/prefs.sqlite")
	t.Setenv("WORKSPACE_FILE", "/etc/dwex/workspaces.yaml")
	t.Setenv("ENABLE_TABS", "false")
	t.Setenv("SESSION_IDLE_TIMEOUT", "5m")
	t.Setenv("SESSION_SWEEP_SCHEDULE", "@every 10s")
	t.Setenv("RATE_LIMIT_RPS", "7.5")
	t.Setenv("RATE_LIMIT_BURST", "15")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, "/tmp/prefs.sqlite", cfg.PrefsDBPath)
	assert.Equal(t, "/etc/dwex/workspaces.yaml", cfg.WorkspaceFile)
	assert.False(t, cfg.EnableTabs)
	assert.Equal(t, 5*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, "@every 10s", cfg.SessionSweepSchedule)
	assert.InDelta(t, 7.5, cfg.RateLimitRPS, 0.001)
	assert.Equal(t, 15, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadFromEnv_EmptyPrefsPathDisablesPersistence(t *testing.T) {
	clearEnv(t)
	t.Setenv("PREFS_DB_PATH", "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.PrefsDBPath)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "PREFS_DB_PATH")
}

func TestLoadFromEnv_InvalidValuesWarn(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_IDLE_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_RPS", "fast")
	t.Setenv("RATE_LIMIT_BURST", "lots")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Len(t, cfg.Warnings, 3)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.InDelta(t, 50, cfg.RateLimitRPS, 0.001)
	assert.Equal(t, 100, cfg.RateLimitBurst)
}

func TestLoadFromEnv_TLSPairRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("TLS_CERT_FILE", "cert.pem")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be set together")
}

func TestLoadFromEnv_Production(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "cors wildcard rejected",
			env:     map[string]string{"ALLOW_INSECURE_HTTP": "true"},
			wantErr: "CORS wildcard",
		},
		{
			name:    "tls required",
			env:     map[string]string{"CORS_ALLOWED_ORIGINS": "https://crm.example"},
			wantErr: "TLS_CERT_FILE",
		},
		{
			name: "insecure http allowed behind proxy",
			env: map[string]string{
				"CORS_ALLOWED_ORIGINS": "https://crm.example",
				"ALLOW_INSECURE_HTTP":  "true",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("ENV", "production")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, cfg.IsProduction())
		})
	}
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, (&Config{LogLevel: in}).SlogLevel(), in)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := `# comment
DWEX_TEST_PLAIN=plain
DWEX_TEST_QUOTED="quoted value"
export DWEX_TEST_EXPORTED='single'
DWEX_TEST_PRESET=from-file
not a pair
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("DWEX_TEST_PRESET", "from-env")
	for _, k := range []string{"DWEX_TEST_PLAIN", "DWEX_TEST_QUOTED", "DWEX_TEST_EXPORTED"} {
		t.Setenv(k, "")
		os.Unsetenv(k) //nolint:errcheck
	}

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "plain", os.Getenv("DWEX_TEST_PLAIN"))
	assert.Equal(t, "quoted value", os.Getenv("DWEX_TEST_QUOTED"))
	assert.Equal(t, "single", os.Getenv("DWEX_TEST_EXPORTED"))
	assert.Equal(t, "from-env", os.Getenv("DWEX_TEST_PRESET"))
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	t.Parallel()
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
