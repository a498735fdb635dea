package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("reply_delay_ms", "must not be negative")

	expected := "invalid configuration: reply_delay_ms: must not be negative"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("Expected ConfigError to match ErrInvalidConfig")
	}

	if !err.Is(NewConfigError("other", "x")) {
		t.Error("Expected ConfigError to match another ConfigError")
	}

	if err.Is(errors.New("standard error")) {
		t.Error("Expected ConfigError not to match a standard error")
	}
}

func TestConfigErrorWithoutField(t *testing.T) {
	err := NewConfigError("", "broken")
	if err.Error() != "invalid configuration: broken" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestTranscriptError(t *testing.T) {
	inner := errors.New("disk full")
	err := NewTranscriptError("/tmp/chat.md", "markdown", inner)

	expected := "transcript /tmp/chat.md (markdown): disk full"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, inner) {
		t.Error("Expected TranscriptError to unwrap to inner error")
	}

	noPath := NewTranscriptError("", "xml", ErrUnknownFormat)
	if !errors.Is(noPath, ErrUnknownFormat) {
		t.Error("Expected TranscriptError to unwrap to ErrUnknownFormat")
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		isConfig     bool
		isTranscript bool
	}{
		{"nil", nil, false, false},
		{"plain", errors.New("x"), false, false},
		{"config", NewConfigError("f", "m"), true, false},
		{"wrapped config", fmt.Errorf("load: %w", NewConfigError("f", "m")), true, false},
		{"transcript", NewTranscriptError("p", "json", errors.New("x")), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfigError(tt.err); got != tt.isConfig {
				t.Errorf("IsConfigError() = %v, want %v", got, tt.isConfig)
			}
			if got := IsTranscriptError(tt.err); got != tt.isTranscript {
				t.Errorf("IsTranscriptError() = %v, want %v", got, tt.isTranscript)
			}
		})
	}
}
