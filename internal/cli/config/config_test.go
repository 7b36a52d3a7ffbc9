package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(oldWd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.File)
	assert.Equal(t, "ru", cfg.Locale)
	assert.Equal(t, language.Russian, cfg.Language())
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 100, cfg.RandomBound)
	assert.Equal(t, FormatTable, cfg.Output.Format)
	assert.False(t, cfg.Output.NoColor)
}

func TestLoadWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := `
locale: en
seed: 42
random_bound: 10
output:
  format: json
  no_color: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drills.yml"), []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(".", "drills.yml"), cfg.File)
	assert.Equal(t, language.English, cfg.Language())
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 10, cfg.RandomBound)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.True(t, cfg.Output.NoColor)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: en-GB\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en-GB", cfg.Locale)
	assert.Equal(t, path, cfg.File)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DRILLS_LOCALE", "en")
	t.Setenv("DRILLS_OUTPUT_FORMAT", "yaml")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
}

func TestValidateConfig(t *testing.T) {
	valid := func() Config {
		return Config{Locale: "ru", RandomBound: 100, Output: OutputConfig{Format: FormatTable}}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad locale", func(c *Config) { c.Locale = "not a locale!" }, "locale"},
		{"small bound", func(c *Config) { c.RandomBound = 1 }, "random_bound"},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := validateConfig(&cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, FindConfigFile(dir))

	path := filepath.Join(dir, "drills.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: ru\n"), 0o644))
	assert.Equal(t, path, FindConfigFile(dir))
}

func TestLoadPrefersYmlOverYaml(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drills.yaml"), []byte("locale: de\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, filepath.Join(".", "drills.yaml"), cfg.File)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "drills.yml"), []byte("locale: en\n"), 0o644))

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
}
