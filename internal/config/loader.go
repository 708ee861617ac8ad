package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// IgnoreCaseEnv enables case-insensitive search when present, whatever its value.
	IgnoreCaseEnv = "IGNORE_CASE"

	// EnvPrefix prefixes environment overrides for every setting (MINIGREP_LINE_NUMBERS, ...).
	EnvPrefix = "MINIGREP"

	// ConfigName is the config file name searched for, without extension.
	ConfigName = ".minigrep"
)

// flagKeys maps command-line flag names to setting keys.
var flagKeys = map[string]string{
	"ignore-case": "ignore_case",
	"line-number": "line_numbers",
	"count":       "count",
}

// Loader provides settings loading capabilities.
type Loader interface {
	// Load loads settings from flags, environment variables and config file.
	// Priority: defaults → config file → environment → flags (flags win)
	Load() (*Settings, error)
}

// LoaderOptions controls where a Loader looks for settings.
type LoaderOptions struct {
	// ConfigFile is an explicit config file. It must exist when set.
	ConfigFile string

	// SearchDirs are searched in order for .minigrep.yaml when ConfigFile is empty.
	SearchDirs []string

	// Flags, when set, are bound to the matching settings. Only flags the
	// user actually passed override lower-priority sources.
	Flags *pflag.FlagSet
}

type loader struct {
	opts LoaderOptions
}

// NewLoader creates a new settings loader.
func NewLoader(opts LoaderOptions) Loader {
	return &loader{opts: opts}
}

// Load loads settings with the following priority (highest to lowest):
// 1. Flags that were set on the command line
// 2. IGNORE_CASE presence and MINIGREP_* environment variables
// 3. Config file (.minigrep.yaml or the explicit --config file)
// 4. Default values
func (l *loader) Load() (*Settings, error) {
	v := viper.New()

	if l.opts.ConfigFile != "" {
		v.SetConfigFile(l.opts.ConfigFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		for _, dir := range l.opts.SearchDirs {
			v.AddConfigPath(dir)
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., MINIGREP_LOG_LEVEL)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	bindEnv(v)

	if err := bindFlags(v, l.opts.Flags); err != nil {
		return nil, err
	}

	setDefaults(v)

	// Try to read config file
	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable when searching - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || l.opts.ConfigFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// IGNORE_CASE counts even when set to the empty string
	if _, ok := os.LookupEnv(IgnoreCaseEnv); ok {
		settings.IgnoreCase = true
	}

	if err := Validate(settings); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return settings, nil
}

// bindEnv binds environment variables to setting keys.
func bindEnv(v *viper.Viper) {
	// Search settings
	v.BindEnv("ignore_case")
	v.BindEnv("line_numbers")
	v.BindEnv("count")

	// Log settings
	v.BindEnv("log.level")
	v.BindEnv("log.file")
	v.BindEnv("log.max_size_mb")
	v.BindEnv("log.max_backups")
	v.BindEnv("log.max_age_days")
	v.BindEnv("log.compress")
}

// bindFlags binds the known flags present in fs.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	return nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	// Search defaults
	v.SetDefault("ignore_case", defaults.IgnoreCase)
	v.SetDefault("line_numbers", defaults.LineNumbers)
	v.SetDefault("count", defaults.Count)

	// Log defaults
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.max_size_mb", defaults.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", defaults.Log.MaxBackups)
	v.SetDefault("log.max_age_days", defaults.Log.MaxAgeDays)
	v.SetDefault("log.compress", defaults.Log.Compress)
}

// DefaultSearchDirs returns the working directory followed by the home directory.
// Directories that cannot be determined are skipped.
func DefaultSearchDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}
