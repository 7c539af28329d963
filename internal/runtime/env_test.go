// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindEnvSeparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		entry string
		want  int
	}{
		{"PATH=/bin", 4},
		{"EMPTY=", 5},
		{"=C:=C:\\env", 3},
		{"NOVALUE", -1},
		{"", -1},
		{"A=b=c", 1},
	}

	for _, tt := range tests {
		if got := findEnvSeparator(tt.entry); got != tt.want {
			t.Errorf("findEnvSeparator(%q) = %d, want %d", tt.entry, got, tt.want)
		}
	}
}

func TestLookupEnv(t *testing.T) {
	t.Parallel()

	environ := []string{"HOME=/home/u", "Path=C:\\Windows", "=C:=C:\\env", "PATH=/usr/bin"}

	tests := []struct {
		name            string
		key             string
		caseInsensitive bool
		want            string
		wantFound       bool
	}{
		{name: "exact match", key: "HOME", want: "/home/u", wantFound: true},
		{name: "case sensitive skips Path", key: "PATH", want: "/usr/bin", wantFound: true},
		{name: "case sensitive Path", key: "Path", want: "C:\\Windows", wantFound: true},
		{name: "case insensitive last wins", key: "path", caseInsensitive: true, want: "/usr/bin", wantFound: true},
		{name: "drive entry", key: "=C:", want: "C:\\env", wantFound: true},
		{name: "missing", key: "CONDA_PREFIX", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, found := LookupEnv(environ, tt.key, tt.caseInsensitive)
			if found != tt.wantFound || got != tt.want {
				t.Errorf("LookupEnv(%q) = (%q, %v), want (%q, %v)", tt.key, got, found, tt.want, tt.wantFound)
			}
		})
	}
}

func TestWithEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		environ         []string
		caseInsensitive bool
		want            []string
	}{
		{
			name:    "replace in place",
			environ: []string{"A=1", "PATH=/bin", "B=2"},
			want:    []string{"A=1", "PATH=/new", "B=2"},
		},
		{
			name:    "append when missing",
			environ: []string{"A=1"},
			want:    []string{"A=1", "PATH=/new"},
		},
		{
			name:            "keeps windows spelling and drops duplicates",
			environ:         []string{"Path=C:\\old", "A=1", "PATH=C:\\dup"},
			caseInsensitive: true,
			want:            []string{"Path=/new", "A=1"},
		},
		{
			name:    "case sensitive leaves other spellings",
			environ: []string{"Path=C:\\old", "PATH=/bin"},
			want:    []string{"Path=C:\\old", "PATH=/new"},
		},
		{
			name:    "nil environ",
			environ: nil,
			want:    []string{"PATH=/new"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			before := append([]string(nil), tt.environ...)
			got := WithEnv(tt.environ, "PATH", "/new", tt.caseInsensitive)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WithEnv() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(before, tt.environ); diff != "" {
				t.Errorf("WithEnv() mutated its input (-before +after):\n%s", diff)
			}
		})
	}
}
