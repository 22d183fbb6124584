package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/go-voyage/pkg/domain"
	"github.com/adfharrison1/go-voyage/pkg/integration"
	"github.com/adfharrison1/go-voyage/pkg/storage"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voyage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, storage.DriverSnapshot, cfg.Storage.Driver)
	assert.Equal(t, "voyage_", cfg.Storage.Prefix)
	assert.Equal(t, ProviderMock, cfg.Integration.Provider)
	assert.Equal(t, integration.DefaultMockDelay, cfg.Integration.Delay)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
storage:
  driver: sqlite
  path: /tmp/voyage.db
  prefix: test_
  background_save: 30s
integration:
  provider: openai
  delay: 10ms
  timeout: 1m
  openai:
    api_key: sk-test
    model: gpt-4o
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, storage.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/voyage.db", cfg.Storage.Path)
	assert.Equal(t, "test_", cfg.Storage.Prefix)
	assert.Equal(t, 30*time.Second, cfg.Storage.BackgroundSave)
	assert.Equal(t, 10*time.Millisecond, cfg.Integration.Delay)
	assert.Equal(t, time.Minute, cfg.Integration.Timeout)
	assert.Equal(t, "sk-test", cfg.Integration.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Integration.OpenAI.Model)
	assert.Len(t, cfg.EntityOptions(), 1)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("VOYAGE_PORT", "7070")
	t.Setenv("VOYAGE_STORAGE_DRIVER", "memory")
	t.Setenv("VOYAGE_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, storage.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, ProviderOpenAI, cfg.Integration.Provider)
	assert.Equal(t, "sk-env", cfg.Integration.OpenAI.APIKey)

	t.Setenv("VOYAGE_PORT", "eighty")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "server: [1, 2"},
		{"unknown provider", "integration:\n  provider: oracle\n"},
		{"openai without key", "integration:\n  provider: openai\n"},
		{"bad port", "server:\n  port: 70000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Wiring(t *testing.T) {
	cfg := Default()
	cfg.Storage.Driver = storage.DriverMemory
	cfg.Integration.Delay = 0

	store, err := cfg.OpenStore(context.Background())
	require.NoError(t, err)
	defer store.Close()
	_, ok := store.(*storage.MemoryStore)
	assert.True(t, ok)

	rec, err := cfg.Invoker().Invoke(context.Background(), domain.InvokeRequest{Prompt: "travel itinerary"})
	require.NoError(t, err)
	assert.Contains(t, rec, "days")

	cfg.Integration.Provider = ProviderOpenAI
	cfg.Integration.Timeout = 0
	_, ok = cfg.Invoker().(*integration.OpenAIInvoker)
	assert.True(t, ok)
}
