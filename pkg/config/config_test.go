package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_ReadsYAML(t *testing.T) {
	path := writeConfig(t, `
app:
  name: inbox
  port: "9000"
database:
  driver: sqlite
  path: "file:test.db"
  seed: true
llm:
  api_key: from-file
log:
  level: debug
  format: console
`)

	cfg := Load(path)

	assert.Equal(t, "inbox", cfg.App.Name)
	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file:test.db", cfg.Database.Path)
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, "from-file", cfg.LLM.APIKey)
	assert.Equal(t, DefaultLLMBaseURL, cfg.LLM.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Equal(t, "msgdesk", cfg.App.Name)
	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultWhatsAppStore, cfg.WhatsApp.StorePath)
	assert.False(t, cfg.WhatsApp.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
  host: db.internal
llm:
  api_key: from-file
`)
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("ABACUSAI_API_KEY", "from-env")
	t.Setenv("LLM_BASE_URL", "http://127.0.0.1:9999/v1")
	t.Setenv("WHATSAPP_ENABLED", "true")

	cfg := Load(path)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, DefaultSQLitePath, cfg.Database.Path)
	assert.Equal(t, "from-env", cfg.LLM.APIKey)
	assert.Equal(t, "http://127.0.0.1:9999/v1", cfg.LLM.BaseURL)
	assert.True(t, cfg.WhatsApp.Enabled)
}
