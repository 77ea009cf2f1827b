package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/coach",
		"api_key": "test-key",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/coach", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(tmpFile)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{Port: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 70000}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "postgres://env/coach")
	t.Setenv("GEMINI_API_KEY", "env-key")

	merged := (&Config{}).MergeWithEnv()
	assert.Equal(t, 9999, merged.Port)
	assert.Equal(t, "postgres://env/coach", merged.DatabaseURL)
	assert.Equal(t, "env-key", merged.APIKey)

	// Explicit config values win over env.
	merged = (&Config{Port: 8081, APIKey: "file-key"}).MergeWithEnv()
	assert.Equal(t, 8081, merged.Port)
	assert.Equal(t, "file-key", merged.APIKey)
}

func TestMergeWithEnv_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")

	merged := (&Config{}).MergeWithEnv()
	assert.Equal(t, DefaultPort, merged.Port)
	assert.Empty(t, merged.DatabaseURL)
	assert.Empty(t, merged.APIKey)
}
