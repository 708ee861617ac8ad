// Package config resolves what a minigrep invocation should do.
//
// Two scopes feed a search:
//
//  1. Positional arguments (query and file path), resolved by Resolve into
//     a SearchConfig. These are always required.
//  2. Settings, loaded by a Loader with the following priority
//     (highest to lowest):
//     - Command-line flags (--ignore-case, --line-number, --count)
//     - Environment: IGNORE_CASE (presence only) and MINIGREP_* overrides
//     - Config file (.minigrep.yaml in the working or home directory)
//     - Default values
package config

// Settings holds the optional, ambient configuration of a search.
type Settings struct {
	IgnoreCase  bool        `yaml:"ignore_case" mapstructure:"ignore_case"`   // match regardless of letter case
	LineNumbers bool        `yaml:"line_numbers" mapstructure:"line_numbers"` // prefix output with line numbers
	Count       bool        `yaml:"count" mapstructure:"count"`               // print only the number of matches
	Log         LogSettings `yaml:"log" mapstructure:"log"`
}

// LogSettings configures diagnostic logging.
type LogSettings struct {
	Level      string `yaml:"level" mapstructure:"level"`               // logrus level name
	File       string `yaml:"file" mapstructure:"file"`                 // optional log file, empty means stderr only
	MaxSizeMB  int    `yaml:"max_size_mb" mapstructure:"max_size_mb"`   // rotate after this many megabytes
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`   // rotated files to keep
	MaxAgeDays int    `yaml:"max_age_days" mapstructure:"max_age_days"` // days to keep rotated files
	Compress   bool   `yaml:"compress" mapstructure:"compress"`         // gzip rotated files
}

// SearchConfig is the fully resolved input of one search.
// It is built once by Resolve and never modified afterwards.
type SearchConfig struct {
	Query       string
	FilePath    string
	IgnoreCase  bool
	LineNumbers bool
	CountOnly   bool
}

// Default returns settings with sensible defaults.
func Default() *Settings {
	return &Settings{
		IgnoreCase:  false,
		LineNumbers: false,
		Count:       false,
		Log: LogSettings{
			Level:      "warn",
			File:       "", // Empty means no log file
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}
