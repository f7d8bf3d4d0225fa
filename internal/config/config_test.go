package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"resume": "assets/data/resume.json",
		"profiles": "assets/data/resume_profiles.json",
		"format": "compact",
		"port": 9090,
		"verbose": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "assets/data/resume.json", cfg.Resume)
	assert.Equal(t, "compact", cfg.Format)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format": `), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_Format(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{Format: "compact"}).Validate())
	assert.NoError(t, (&Config{Format: "executive"}).Validate())

	err := (&Config{Format: "pretty"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}

func TestValidate_Port(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
}

func TestValidate_DocumentPaths(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0o644))

	assert.NoError(t, (&Config{Resume: existing}).Validate())
	assert.Error(t, (&Config{Resume: "no/such/file.json"}).Validate())

	// URLs are not stat-checked at config time.
	assert.NoError(t, (&Config{Resume: "https://example.com/resume.json"}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Resume:   "assets/data/resume.json",
		Profiles: "assets/data/resume_profiles.json",
		Format:   "executive",
		Port:     8080,
	}

	merged := (&Config{Format: "compact"}).MergeWithDefaults(defaults)
	assert.Equal(t, "compact", merged.Format)
	assert.Equal(t, "assets/data/resume.json", merged.Resume)
	assert.Equal(t, 8080, merged.Port)

	full := Config{Resume: "other.json", Profiles: "p.json", Format: "compact", Port: 9000}
	merged = full.MergeWithDefaults(defaults)
	assert.Equal(t, full, merged)
}
