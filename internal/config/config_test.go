package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, 20, cfg.Tables.Count)
	assert.Equal(t, "lenient", cfg.Policies.Completion)
	assert.Equal(t, "allow", cfg.Policies.Stock)
	assert.False(t, cfg.Simulator.Enabled)
}

func TestLoadMissingPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Tables.Count)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9000
tables:
  count: 12
policies:
  completion: strict
  stock: reject
simulator:
  enabled: true
  interval: 5s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 9090, cfg.Server.MetricsPort) // default kept
	assert.Equal(t, 12, cfg.Tables.Count)
	assert.Equal(t, "strict", cfg.Policies.Completion)
	assert.Equal(t, "reject", cfg.Policies.Stock)
	assert.True(t, cfg.Simulator.Enabled)
	assert.Equal(t, 5*time.Second, time.Duration(cfg.Simulator.Interval))
}

func TestLoadRejectsBadPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policies:\n  completion: yolo\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadTableCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tables:\n  count: 0\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
