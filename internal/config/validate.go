package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidLogLevel indicates a log level logrus does not know
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidLogRotation indicates invalid log rotation limits
	ErrInvalidLogRotation = errors.New("invalid log rotation")
)

// Validate checks that the settings are valid and complete.
func Validate(s *Settings) error {
	var errs []error

	if err := validateLog(&s.Log); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateLog(cfg *LogSettings) error {
	var errs []error

	// Empty level falls back to the default
	if strings.TrimSpace(cfg.Level) != "" {
		if _, err := logrus.ParseLevel(cfg.Level); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q (valid: panic, fatal, error, warn, info, debug, trace)", ErrInvalidLogLevel, cfg.Level))
		}
	}

	// Zero disables a limit; negative values are invalid
	if cfg.MaxSizeMB < 0 {
		errs = append(errs, fmt.Errorf("%w: max_size_mb cannot be negative, got %d", ErrInvalidLogRotation, cfg.MaxSizeMB))
	}
	if cfg.MaxBackups < 0 {
		errs = append(errs, fmt.Errorf("%w: max_backups cannot be negative, got %d", ErrInvalidLogRotation, cfg.MaxBackups))
	}
	if cfg.MaxAgeDays < 0 {
		errs = append(errs, fmt.Errorf("%w: max_age_days cannot be negative, got %d", ErrInvalidLogRotation, cfg.MaxAgeDays))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
// Every input stays reachable through errors.Is.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	return &validationError{errs: errs}
}

type validationError struct {
	errs []error
}

func (e *validationError) Error() string {
	msgs := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

func (e *validationError) Unwrap() []error {
	return e.errs
}
