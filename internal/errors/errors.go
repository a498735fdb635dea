// Package errors provides custom error types for chatscreen.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknownFormat = errors.New("unknown transcript format")
)

// ConfigError represents an invalid configuration value
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid configuration: %s", e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// Is allows comparison with sentinel errors
func (e *ConfigError) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	_, ok := target.(*ConfigError)
	return ok
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// TranscriptError represents a failure writing a session transcript
type TranscriptError struct {
	Path   string
	Format string
	Err    error
}

func (e *TranscriptError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("transcript (%s): %v", e.Format, e.Err)
	}
	return fmt.Sprintf("transcript %s (%s): %v", e.Path, e.Format, e.Err)
}

func (e *TranscriptError) Unwrap() error {
	return e.Err
}

// NewTranscriptError creates a new TranscriptError
func NewTranscriptError(path, format string, err error) *TranscriptError {
	return &TranscriptError{Path: path, Format: format, Err: err}
}

// IsConfigError reports whether err is or wraps a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsTranscriptError reports whether err is or wraps a TranscriptError.
func IsTranscriptError(err error) bool {
	var te *TranscriptError
	return errors.As(err, &te)
}
