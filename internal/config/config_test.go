package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Config System:
// - Default() returns valid configuration with all expected defaults
// - Load() uses defaults when no config file exists
// - Load() reads .exportdiff/config.yml and .exportdiff/config.yaml
// - Load() merges config file with defaults
// - Environment variables override config file values and defaults
// - Load() lowercases the output format
// - NewFileLoader() reads an explicit file path
// - Load() returns error for malformed YAML and invalid values
// - Validate() rejects unknown formats, non-positive debounce, empty include, bad globs
// - Validate() reports every problem and keeps each sentinel matchable

func writeConfig(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, ".exportdiff")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDefault_ReturnsValidConfiguration(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.Pretty)
	assert.Contains(t, cfg.Paths.Include, "**/*.tsx")
	assert.Contains(t, cfg.Paths.Ignore, "node_modules/**")
	assert.Equal(t, 300, cfg.Watch.DebounceMs)
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce())

	assert.NoError(t, Validate(cfg))
}

func TestLoadConfig_UsesDefaultsWhenNoConfigFile(t *testing.T) {
	t.Parallel()

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	defaults := Default()
	assert.Equal(t, defaults.Output, cfg.Output)
	assert.Equal(t, defaults.Paths, cfg.Paths)
	assert.Equal(t, defaults.Watch, cfg.Watch)
}

func TestLoadConfig_LoadsFromConfigYml(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
output:
  format: yaml
  pretty: true
paths:
  include:
    - "src/**/*.ts"
  ignore:
    - "src/generated/**"
watch:
  debounce_ms: 50
`)

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.True(t, cfg.Output.Pretty)
	assert.Equal(t, []string{"src/**/*.ts"}, cfg.Paths.Include)
	assert.Equal(t, []string{"src/generated/**"}, cfg.Paths.Ignore)
	assert.Equal(t, 50, cfg.Watch.DebounceMs)
}

func TestLoadConfig_LoadsFromConfigYaml(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yaml", `
output:
  format: YAML
`)

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadConfig_MergesConfigWithDefaults(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
watch:
  debounce_ms: 1000
`)

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Watch.DebounceMs)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, Default().Paths.Include, cfg.Paths.Include)
}

func TestLoadConfig_EnvironmentVariablesOverrideConfigFile(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
output:
  format: json
watch:
  debounce_ms: 100
`)

	t.Setenv("EXPORTDIFF_OUTPUT_FORMAT", "yaml")
	t.Setenv("EXPORTDIFF_OUTPUT_PRETTY", "true")

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.True(t, cfg.Output.Pretty)
	// Not overridden, comes from the file
	assert.Equal(t, 100, cfg.Watch.DebounceMs)
}

func TestLoadConfig_EnvironmentVariablesOverrideDefaults(t *testing.T) {
	t.Setenv("EXPORTDIFF_WATCH_DEBOUNCE_MS", "750")

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)
	assert.Equal(t, 750, cfg.Watch.DebounceMs)
}

func TestNewFileLoader_ReadsExplicitFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: yaml\n"), 0644))

	cfg, err := NewFileLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadConfig_ReturnsErrorForMalformedYaml(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
output:
  format: "unclosed quote
  pretty: not-a-bool
`)

	cfg, err := NewLoader(tempDir).Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_ReturnsErrorForInvalidValues(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
output:
  format: xml
watch:
  debounce_ms: -5
`)

	cfg, err := NewLoader(tempDir).Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid")
	assert.True(t, errors.Is(err, ErrInvalidFormat))
	assert.True(t, errors.Is(err, ErrInvalidDebounce))
}

func TestValidate_RejectsInvalidFormat(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Output.Format = "toml"

	err := Validate(cfg)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestValidate_RejectsZeroDebounce(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Watch.DebounceMs = 0

	err := Validate(cfg)
	assert.ErrorIs(t, err, ErrInvalidDebounce)
}

func TestValidate_RejectsEmptyInclude(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Paths.Include = nil

	err := Validate(cfg)
	assert.ErrorIs(t, err, ErrEmptyInclude)
}

func TestValidate_RejectsMalformedGlob(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Paths.Ignore = []string{"src/[unclosed"}

	err := Validate(cfg)
	require.ErrorIs(t, err, ErrInvalidPattern)
	assert.Contains(t, err.Error(), "src/[unclosed")
}

func TestValidate_ReturnsMultipleErrorsForMultipleInvalidFields(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Output: OutputConfig{Format: "csv"},
		Paths:  PathsConfig{},
		Watch:  WatchConfig{DebounceMs: -1},
	}

	err := Validate(cfg)
	require.Error(t, err)

	errMsg := err.Error()
	assert.Contains(t, errMsg, "validation failed")
	assert.Contains(t, errMsg, "format")
	assert.Contains(t, errMsg, "include")
	assert.Contains(t, errMsg, "debounce_ms")

	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.ErrorIs(t, err, ErrEmptyInclude)
	assert.ErrorIs(t, err, ErrInvalidDebounce)
}
