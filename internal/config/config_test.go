package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"appwrite:\n  endpoint: https://cloud.example.com/v1\n  project_id: folio\n"), 0644)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://cloud.example.com/v1", cfg.Appwrite.Endpoint)
	assert.Equal(t, "folio", cfg.Appwrite.ProjectID)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Appwrite.Endpoint)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "personal_info", cfg.Appwrite.Collections.PersonalInfo)
	assert.Equal(t, "contacts", cfg.Appwrite.Collections.Messages)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "@every 5m", cfg.Server.RefreshEvery)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APPWRITE_ENDPOINT", "https://env.example.com/v1")
	t.Setenv("FOLIO_PORT", "8080")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/v1", cfg.Appwrite.Endpoint)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{{bad yaml"), 0644)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Session: "secret-token"}
	cfg.Appwrite.Endpoint = "https://cloud.example.com/v1"

	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", loaded.Session)
	assert.Equal(t, cfg.Appwrite.Endpoint, loaded.Appwrite.Endpoint)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.Appwrite.Endpoint = "https://cloud.example.com/v1"
	assert.Error(t, cfg.Validate())

	cfg.Appwrite.ProjectID = "folio"
	assert.NoError(t, cfg.Validate())
}
