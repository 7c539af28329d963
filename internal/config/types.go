// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// PathModeAuto skips PATH augmentation when PATH already holds every
	// environment directory.
	PathModeAuto PathMode = "auto"
	// PathModeAlways rebuilds PATH on every launch.
	PathModeAlways PathMode = "always"

	// ConventionAuto picks the convention of the host OS.
	ConventionAuto ConventionName = "auto"
	// ConventionWindows forces the Windows layout (Scripts, .conda.exe, ';').
	ConventionWindows ConventionName = "windows"
	// ConventionPOSIX forces the POSIX layout (bin, .conda, ':').
	ConventionPOSIX ConventionName = "posix"
)

var (
	// ErrInvalidPathMode is returned when a PathMode value is not recognized.
	ErrInvalidPathMode = errors.New("invalid path mode")
	// ErrInvalidConvention is returned when a ConventionName value is not recognized.
	ErrInvalidConvention = errors.New("invalid convention")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// PathMode selects whether PATH augmentation may be skipped.
	// Defined locally to avoid coupling config to internal/launcher;
	// the command layer converts at the boundary.
	PathMode string

	// InvalidPathModeError is returned when a PathMode value is not recognized.
	// It wraps ErrInvalidPathMode for errors.Is() compatibility.
	InvalidPathModeError struct {
		Value PathMode
	}

	// ConventionName selects the platform naming convention.
	ConventionName string

	// InvalidConventionError is returned when a ConventionName value is not recognized.
	// It wraps ErrInvalidConvention for errors.Is() compatibility.
	InvalidConventionError struct {
		Value ConventionName
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// the field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the launcher options.
	Config struct {
		// Verbose enables debug logging and full error chains.
		Verbose bool `mapstructure:"verbose"`
		// DryRun prints the resolved launch instead of running it.
		DryRun bool `mapstructure:"dry_run"`
		// PathMode is "auto" (default) or "always".
		PathMode PathMode `mapstructure:"path_mode"`
		// Convention is "auto" (default), "windows" or "posix".
		Convention ConventionName `mapstructure:"convention"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		PathMode:   PathModeAuto,
		Convention: ConventionAuto,
	}
}

// Validate returns an InvalidConfigError listing every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if err := c.PathMode.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Convention.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return "invalid config: " + e.FieldErrors[0].Error()
	}
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// String returns the string representation of the PathMode.
func (m PathMode) String() string { return string(m) }

// Validate returns an error if the PathMode is not one of the defined modes.
func (m PathMode) Validate() error {
	switch m {
	case PathModeAuto, PathModeAlways:
		return nil
	default:
		return &InvalidPathModeError{Value: m}
	}
}

// Error implements the error interface.
func (e *InvalidPathModeError) Error() string {
	return fmt.Sprintf("invalid path mode %q (valid: auto, always)", e.Value)
}

// Unwrap returns ErrInvalidPathMode for errors.Is() compatibility.
func (e *InvalidPathModeError) Unwrap() error { return ErrInvalidPathMode }

// String returns the string representation of the ConventionName.
func (n ConventionName) String() string { return string(n) }

// Validate returns an error if the ConventionName is not one of the defined names.
func (n ConventionName) Validate() error {
	switch n {
	case ConventionAuto, ConventionWindows, ConventionPOSIX:
		return nil
	default:
		return &InvalidConventionError{Value: n}
	}
}

// Error implements the error interface.
func (e *InvalidConventionError) Error() string {
	return fmt.Sprintf("invalid convention %q (valid: auto, windows, posix)", e.Value)
}

// Unwrap returns ErrInvalidConvention for errors.Is() compatibility.
func (e *InvalidConventionError) Unwrap() error { return ErrInvalidConvention }
