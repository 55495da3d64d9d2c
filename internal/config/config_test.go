package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	// Keep the loader away from any real config in the home directory.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "tpu-info", cfg.App.Name)
	assert.Equal(t, "0.2.0", cfg.App.Version)
	assert.Empty(t, cfg.Metrics.Addr)
	assert.Equal(t, []int{8431, 8479}, cfg.Metrics.FallbackPorts)
	assert.Equal(t, 2*time.Second, cfg.Metrics.DialTimeout)
	assert.Equal(t, time.Second, cfg.Metrics.CallTimeout)
	assert.Equal(t, time.Second, cfg.Refresh.Rate)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tempDir := t.TempDir()
	configContent := `
app:
  name: "tpu-info"
  version: "9.9.9"

metrics:
  addr: "localhost:9999"
  dial_timeout: 5s
  call_timeout: 3s

refresh:
  rate: 2s

log:
  level: "debug"
  format: "json"
`
	configPath := filepath.Join(tempDir, "custom.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, "localhost:9999", cfg.Metrics.Addr)
	assert.Equal(t, 5*time.Second, cfg.Metrics.DialTimeout)
	assert.Equal(t, 3*time.Second, cfg.Metrics.CallTimeout)
	assert.Equal(t, 2*time.Second, cfg.Refresh.Rate)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// Unset keys keep their defaults.
	assert.Equal(t, []int{8431, 8479}, cfg.Metrics.FallbackPorts)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TPUINFO_LOG_LEVEL", "trace")
	t.Setenv("TPUINFO_METRICS_ADDR", "localhost:4242")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, "localhost:4242", cfg.Metrics.Addr)
}

func TestMetricsAddrs(t *testing.T) {
	tests := []struct {
		name     string
		cfg      MetricsConfig
		expected []string
	}{
		{
			name:     "explicit address wins",
			cfg:      MetricsConfig{Addr: "10.0.0.1:1234", FallbackPorts: []int{8431, 8479}},
			expected: []string{"10.0.0.1:1234"},
		},
		{
			name:     "fallback ports on localhost",
			cfg:      MetricsConfig{FallbackPorts: []int{8431, 8479}},
			expected: []string{"localhost:8431", "localhost:8479"},
		},
		{
			name:     "no candidates",
			cfg:      MetricsConfig{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.Addrs())
		})
	}
}
