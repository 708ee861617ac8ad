package config

import (
	"errors"
	"fmt"
)

// ExpectedArgs is the number of positional arguments a search takes.
const ExpectedArgs = 2

// ErrMissingArguments indicates the wrong number of positional arguments.
var ErrMissingArguments = errors.New("missing arguments")

// MissingArgumentsError carries the expected and actual argument counts.
// It matches ErrMissingArguments with errors.Is.
type MissingArgumentsError struct {
	Expected int
	Actual   int
}

func (e *MissingArgumentsError) Error() string {
	return fmt.Sprintf("expected %d arguments (query, file path), got %d", e.Expected, e.Actual)
}

func (e *MissingArgumentsError) Unwrap() error {
	return ErrMissingArguments
}

// Resolve builds a SearchConfig from the positional arguments and settings.
// args must hold exactly the query and the file path, in that order.
// A nil settings value means Default().
func Resolve(args []string, settings *Settings) (SearchConfig, error) {
	if len(args) != ExpectedArgs {
		return SearchConfig{}, &MissingArgumentsError{Expected: ExpectedArgs, Actual: len(args)}
	}

	if settings == nil {
		settings = Default()
	}

	return SearchConfig{
		Query:       args[0],
		FilePath:    args[1],
		IgnoreCase:  settings.IgnoreCase,
		LineNumbers: settings.LineNumbers,
		CountOnly:   settings.Count,
	}, nil
}
