package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned for config files that are neither TOML
	// nor YAML.
	ErrUnknownFormat = errors.New("unknown config file format")

	// ErrValidationFailed wraps every validation error.
	ErrValidationFailed = errors.New("validation failed")
)

// ParseError describes a config file or environment value that could not
// be decoded.
type ParseError struct {
	// Path is the file path or environment variable.
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a setting with an invalid value.
type ValidationError struct {
	Path    string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Path, e.Message, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
