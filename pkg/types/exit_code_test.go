// SPDX-License-Identifier: MPL-2.0

package types

import "testing"

func TestExitCodeIsSuccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code ExitCode
		want bool
	}{
		{0, true},
		{1, false},
		{125, false},
		{255, false},
		{-1073741510, false},
	}

	for _, tt := range tests {
		if got := tt.code.IsSuccess(); got != tt.want {
			t.Errorf("ExitCode(%d).IsSuccess() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestFromProcessState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  int
		want ExitCode
	}{
		{name: "success", raw: 0, want: ExitSuccess},
		{name: "plain failure", raw: 3, want: 3},
		{name: "posix range top", raw: 255, want: 255},
		{name: "windows ntstatus", raw: 0xC000013A, want: 0xC000013A},
		{name: "killed by signal", raw: -1, want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FromProcessState(tt.raw); got != tt.want {
				t.Errorf("FromProcessState(%d) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExitCodeString(t *testing.T) {
	t.Parallel()

	if got := ExitCode(42).String(); got != "42" {
		t.Errorf("ExitCode(42).String() = %q, want %q", got, "42")
	}
	if got := ExitCode(7).Int(); got != 7 {
		t.Errorf("ExitCode(7).Int() = %d, want 7", got)
	}
}
