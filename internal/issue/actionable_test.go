// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "resolve launcher path"},
			expected: "failed to resolve launcher path",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "locate target program",
				Resource:  `C:\env\Scripts\python.exe`,
			},
			expected: `failed to locate target program: C:\env\Scripts\python.exe`,
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "launch target program",
				Cause:     errors.New("access is denied"),
			},
			expected: "failed to launch target program: access is denied",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "validate launcher placement",
				Resource:  "/env/Wrong/python.conda.exe",
				Cause:     errors.New("not in Scripts"),
			},
			expected: "failed to validate launcher placement: /env/Wrong/python.conda.exe: not in Scripts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying error")
	err := &ActionableError{Operation: "test", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	errNoCause := &ActionableError{Operation: "test"}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name:     "simple error non-verbose",
			err:      &ActionableError{Operation: "load configuration"},
			contains: []string{"failed to load configuration"},
		},
		{
			name: "error with suggestions",
			err: &ActionableError{
				Operation:   "locate target program",
				Resource:    "/env/Scripts/python.exe",
				Suggestions: []string{"Install python into the environment", "Rename the launcher"},
			},
			contains: []string{
				"failed to locate target program",
				"/env/Scripts/python.exe",
				"• Install python into the environment",
				"• Rename the launcher",
			},
		},
		{
			name: "error chain in verbose mode",
			err: &ActionableError{
				Operation: "launch target program",
				Cause:     errors.New("exec format error"),
			},
			verbose:  true,
			contains: []string{"Error chain:", "1. exec format error"},
		},
		{
			name: "no error chain in non-verbose",
			err: &ActionableError{
				Operation: "launch target program",
				Cause:     errors.New("exec format error"),
			},
			contains: []string{"failed to launch target program: exec format error"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested error chain verbose",
			err: &ActionableError{
				Operation: "run launcher",
				Cause: &ActionableError{
					Operation: "locate environment root",
					Cause:     errors.New("no such file or directory"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to locate environment root: no such file or directory",
				"2. no such file or directory",
			},
		},
		{
			name: "multi-cause chain verbose",
			err: &ActionableError{
				Operation: "start target program",
				Cause:     fmt.Errorf("%w: %w", errors.New("target could not be started"), errors.New("permission denied")),
			},
			verbose: true,
			contains: []string{
				"1. target could not be started: permission denied",
				"2. target could not be started",
				"3. permission denied",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.err.Format(tt.verbose)

			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestActionableError_HasSuggestions(t *testing.T) {
	t.Parallel()

	if !(&ActionableError{Operation: "test", Suggestions: []string{"Try this"}}).HasSuggestions() {
		t.Error("HasSuggestions() should return true when suggestions present")
	}
	if (&ActionableError{Operation: "test"}).HasSuggestions() {
		t.Error("HasSuggestions() should return false when no suggestions")
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	t.Run("missing operation returns nil", func(t *testing.T) {
		t.Parallel()
		if err := NewErrorContext().WithResource("some/path").Build(); err != nil {
			t.Errorf("Build() = %v, want nil", err)
		}
		if err := NewErrorContext().BuildError(); err != nil {
			t.Errorf("BuildError() = %v, want nil", err)
		}
	})

	t.Run("full context", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("stat failed")
		err := NewErrorContext().
			WithOperation("locate environment root").
			WithResource("/env").
			WithSuggestion("Check the environment still exists").
			WithSuggestionf("Recreate it with 'conda create -p %s'", "/env").
			Wrap(cause).
			Build()
		if err == nil {
			t.Fatal("Build() returned nil, want error")
		}
		if err.Operation != "locate environment root" {
			t.Errorf("Operation = %q", err.Operation)
		}
		if err.Resource != "/env" {
			t.Errorf("Resource = %q", err.Resource)
		}
		if len(err.Suggestions) != 2 || err.Suggestions[1] != "Recreate it with 'conda create -p /env'" {
			t.Errorf("Suggestions = %q", err.Suggestions)
		}
		if !errors.Is(err, cause) {
			t.Errorf("Cause = %v, want %v", err.Cause, cause)
		}
	})

	t.Run("BuildError returns ActionableError", func(t *testing.T) {
		t.Parallel()
		err := NewErrorContext().WithOperation("test").BuildError()
		var ae *ActionableError
		if !errors.As(err, &ae) {
			t.Fatalf("BuildError() = %T, want *ActionableError", err)
		}
	})
}
