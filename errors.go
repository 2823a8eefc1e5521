package spanscan

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates a Config failed validation
	ErrInvalidConfig = errors.New("invalid config")

	// ErrSetBuild indicates a SeqSet automaton could not be built
	ErrSetBuild = errors.New("subsequence set build failed")
)

// ConfigError describes the Config field that failed validation.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "spanscan: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// SetError wraps a failure to build a SeqSet.
type SetError struct {
	Patterns int
	Err      error
}

// Error implements the error interface.
func (e *SetError) Error() string {
	return fmt.Sprintf("spanscan: %v for %d patterns: %v", ErrSetBuild, e.Patterns, e.Err)
}

// Unwrap returns the underlying error.
func (e *SetError) Unwrap() error {
	return e.Err
}

// Is reports ErrSetBuild as the error kind.
func (e *SetError) Is(target error) bool {
	return target == ErrSetBuild
}
