package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Settings:
// - Default() returns valid settings with all expected defaults
// - Load() uses defaults when no config file exists
// - Load() loads from .minigrep.yaml in a search directory
// - Load() prefers the first search directory that has a config file
// - Load() loads an explicit config file and fails when it is missing
// - Load() returns error for malformed YAML
// - Load() returns error for invalid settings values
// - IGNORE_CASE presence enables ignore_case for any value, including empty and "false"
// - IGNORE_CASE absence leaves ignore_case to the other sources
// - MINIGREP_* environment variables override config file values
// - empty MINIGREP_* environment variables are treated as unset
// - Flags that were passed override environment and config file
// - Flags that were not passed do not override the config file
// - Validate() rejects unknown log levels and negative rotation limits
// - Validate() reports every problem at once

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

// cleanEnv isolates a test from variables the loader reads.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		IgnoreCaseEnv,
		"MINIGREP_IGNORE_CASE",
		"MINIGREP_LINE_NUMBERS",
		"MINIGREP_COUNT",
		"MINIGREP_LOG_LEVEL",
		"MINIGREP_LOG_FILE",
		"MINIGREP_LOG_MAX_SIZE_MB",
	} {
		unsetEnv(t, key)
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigName+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("minigrep", pflag.ContinueOnError)
	fs.BoolP("ignore-case", "i", false, "")
	fs.BoolP("line-number", "n", false, "")
	fs.BoolP("count", "c", false, "")
	return fs
}

func TestDefault_ReturnsValidSettings(t *testing.T) {
	s := Default()

	require.NotNil(t, s)
	assert.False(t, s.IgnoreCase)
	assert.False(t, s.LineNumbers)
	assert.False(t, s.Count)
	assert.Equal(t, "warn", s.Log.Level)
	assert.Equal(t, "", s.Log.File)
	assert.Equal(t, 10, s.Log.MaxSizeMB)
	assert.Equal(t, 3, s.Log.MaxBackups)
	assert.Equal(t, 28, s.Log.MaxAgeDays)
	assert.True(t, s.Log.Compress)

	assert.NoError(t, Validate(s))
}

func TestLoad_UsesDefaultsWhenNoConfigFile(t *testing.T) {
	cleanEnv(t)

	s, err := NewLoader(LoaderOptions{SearchDirs: []string{t.TempDir()}}).Load()

	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_LoadsFromSearchDir(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
ignore_case: true
line_numbers: true
log:
  level: debug
  max_backups: 7
`)

	s, err := NewLoader(LoaderOptions{SearchDirs: []string{dir}}).Load()

	require.NoError(t, err)
	assert.True(t, s.IgnoreCase)
	assert.True(t, s.LineNumbers)
	assert.False(t, s.Count)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, 7, s.Log.MaxBackups)
	// Untouched values keep their defaults
	assert.Equal(t, 10, s.Log.MaxSizeMB)
}

func TestLoad_FirstSearchDirWins(t *testing.T) {
	cleanEnv(t)
	first := t.TempDir()
	second := t.TempDir()
	writeConfig(t, first, "count: true\n")
	writeConfig(t, second, "line_numbers: true\n")

	s, err := NewLoader(LoaderOptions{SearchDirs: []string{first, second}}).Load()

	require.NoError(t, err)
	assert.True(t, s.Count)
	assert.False(t, s.LineNumbers)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	cleanEnv(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: true\n"), 0644))

	s, err := NewLoader(LoaderOptions{ConfigFile: path}).Load()

	require.NoError(t, err)
	assert.True(t, s.Count)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	cleanEnv(t)

	_, err := NewLoader(LoaderOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "log: [unterminated\n")

	_, err := NewLoader(LoaderOptions{SearchDirs: []string{dir}}).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidSettings(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
log:
  level: loud
`)

	_, err := NewLoader(LoaderOptions{SearchDirs: []string{dir}}).Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_IgnoreCaseEnvPresence(t *testing.T) {
	for _, value := range []string{"1", "true", "false", "0", ""} {
		t.Run("value="+value, func(t *testing.T) {
			cleanEnv(t)
			t.Setenv(IgnoreCaseEnv, value)

			s, err := NewLoader(LoaderOptions{SearchDirs: []string{t.TempDir()}}).Load()

			require.NoError(t, err)
			assert.True(t, s.IgnoreCase, "presence of %s enables ignore case", IgnoreCaseEnv)
		})
	}
}

func TestLoad_IgnoreCaseEnvAbsent(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "ignore_case: false\n")

	s, err := NewLoader(LoaderOptions{SearchDirs: []string{dir}}).Load()

	require.NoError(t, err)
	assert.False(t, s.IgnoreCase)
}

func TestLoad_EnvOverridesConfigFile(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
line_numbers: false
log:
  level: error
`)
	t.Setenv("MINIGREP_LINE_NUMBERS", "true")
	t.Setenv("MINIGREP_LOG_LEVEL", "info")

	s, err := NewLoader(LoaderOptions{SearchDirs: []string{dir}}).Load()

	require.NoError(t, err)
	assert.True(t, s.LineNumbers)
	assert.Equal(t, "info", s.Log.Level)
}

func TestLoad_EmptyPrefixedEnvIsIgnored(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
ignore_case: true
log:
  max_size_mb: 25
`)
	t.Setenv("MINIGREP_IGNORE_CASE", "")
	t.Setenv("MINIGREP_LOG_MAX_SIZE_MB", "")

	s, err := NewLoader(LoaderOptions{SearchDirs: []string{dir}}).Load()

	require.NoError(t, err)
	assert.True(t, s.IgnoreCase)
	assert.Equal(t, 25, s.Log.MaxSizeMB)
}

func TestLoad_ChangedFlagsOverrideEverything(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "count: false\n")
	t.Setenv("MINIGREP_COUNT", "false")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--count", "-n"}))

	s, err := NewLoader(LoaderOptions{SearchDirs: []string{dir}, Flags: flags}).Load()

	require.NoError(t, err)
	assert.True(t, s.Count)
	assert.True(t, s.LineNumbers)
	assert.False(t, s.IgnoreCase)
}

func TestLoad_UnchangedFlagsDoNotOverride(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "ignore_case: true\n")

	flags := newFlags()
	require.NoError(t, flags.Parse(nil))

	s, err := NewLoader(LoaderOptions{SearchDirs: []string{dir}, Flags: flags}).Load()

	require.NoError(t, err)
	assert.True(t, s.IgnoreCase)
}

func TestLoad_IgnoreCaseFlag(t *testing.T) {
	cleanEnv(t)

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"-i"}))

	s, err := NewLoader(LoaderOptions{SearchDirs: []string{t.TempDir()}, Flags: flags}).Load()

	require.NoError(t, err)
	assert.True(t, s.IgnoreCase)
}

func TestValidate_RejectsInvalidLogLevel(t *testing.T) {
	s := Default()
	s.Log.Level = "verbose"

	err := Validate(s)

	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestValidate_AcceptsEmptyLogLevel(t *testing.T) {
	s := Default()
	s.Log.Level = ""

	assert.NoError(t, Validate(s))
}

func TestValidate_RejectsNegativeRotation(t *testing.T) {
	s := Default()
	s.Log.MaxSizeMB = -1

	err := Validate(s)

	assert.ErrorIs(t, err, ErrInvalidLogRotation)
	assert.Contains(t, err.Error(), "max_size_mb")
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	s := Default()
	s.Log.Level = "nope"
	s.Log.MaxBackups = -2
	s.Log.MaxAgeDays = -3

	err := Validate(s)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
	assert.ErrorIs(t, err, ErrInvalidLogRotation)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "max_backups")
	assert.Contains(t, err.Error(), "max_age_days")
}
