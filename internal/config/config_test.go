package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	t.Setenv("NOISEFIELD_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8088, cfg.Server.GetRESTPort())
	assert.Equal(t, 1024, cfg.Noise.GetMaxContexts())
	assert.Equal(t, 4096, cfg.Noise.GetMaxBatchSize())
	assert.Equal(t, "memory", cfg.Cache.GetBackend())
	assert.Equal(t, 10*time.Minute, cfg.Cache.GetTTL())
	assert.Equal(t, "", cfg.Storage.GetPath())
	assert.Equal(t, "noisefield", cfg.Telemetry.GetServiceName())
	assert.False(t, cfg.Cache.IsWriteBehind())
	assert.Equal(t, 5*time.Second, cfg.Cache.GetWriteBehindInterval())
	assert.Equal(t, 100, cfg.Cache.GetWriteBehindBatch())
	assert.Greater(t, cfg.Noise.GetWorkers(), 0)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noisefield.yaml")
	data := `
server:
  rest_port: 9000
noise:
  max_contexts: 16
  workers: 3
storage:
  path: /var/lib/noisefield
cache:
  backend: redis
  redis_addr: redis:6379
  ttl_seconds: 30
  write_behind: true
  write_behind_interval_ms: 250
  write_behind_batch: 64
logging:
  level: debug
telemetry:
  enabled: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.GetRESTPort())
	assert.Equal(t, 16, cfg.Noise.GetMaxContexts())
	assert.Equal(t, 3, cfg.Noise.GetWorkers())
	assert.Equal(t, "/var/lib/noisefield", cfg.Storage.GetPath())
	assert.Equal(t, "redis", cfg.Cache.GetBackend())
	assert.Equal(t, "redis:6379", cfg.Cache.GetRedisAddr())
	assert.Equal(t, 30*time.Second, cfg.Cache.GetTTL())
	assert.True(t, cfg.Cache.IsWriteBehind())
	assert.Equal(t, 250*time.Millisecond, cfg.Cache.GetWriteBehindInterval())
	assert.Equal(t, 64, cfg.Cache.GetWriteBehindBatch())
	assert.Equal(t, "debug", cfg.Logging.GetLevel())
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoad_ConfigEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  rest_port: 7001\n"), 0644))
	t.Setenv("NOISEFIELD_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.GetRESTPort())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [1, 2"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestEnvFallback(t *testing.T) {
	t.Setenv("NOISEFIELD_REST_PORT", "8181")
	t.Setenv("NOISEFIELD_MAX_CONTEXTS", "не число")
	t.Setenv("NOISEFIELD_CACHE", "none")
	t.Setenv("NOISEFIELD_CACHE_WRITE_BEHIND", "true")

	var cfg Config
	assert.Equal(t, 8181, cfg.Server.GetRESTPort(), "env используется, если в конфиге 0")
	assert.Equal(t, 1024, cfg.Noise.GetMaxContexts(), "некорректный env игнорируется")
	assert.Equal(t, "none", cfg.Cache.GetBackend())
	assert.True(t, cfg.Cache.IsWriteBehind())

	cfg.Server.RESTPort = 1234
	assert.Equal(t, 1234, cfg.Server.GetRESTPort(), "значение конфига важнее env")
}
