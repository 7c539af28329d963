// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/eventlOwOp/R-with-conda/pkg/platform"
)

func TestConvention_TargetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		conv     Convention
		launcher string
		want     string
		wantOK   bool
	}{
		{name: "windows python", conv: WindowsConvention(), launcher: "python.conda.exe", want: "python.exe", wantOK: true},
		{name: "windows R", conv: WindowsConvention(), launcher: "R.conda.exe", want: "R.exe", wantOK: true},
		{name: "windows dotted stem", conv: WindowsConvention(), launcher: "python3.11.conda.exe", want: "python3.11.exe", wantOK: true},
		{name: "windows suffix only", conv: WindowsConvention(), launcher: ".conda.exe", wantOK: false},
		{name: "windows plain exe", conv: WindowsConvention(), launcher: "python.exe", wantOK: false},
		{name: "windows wrong case", conv: WindowsConvention(), launcher: "python.CONDA.EXE", wantOK: false},
		{name: "posix python", conv: POSIXConvention(), launcher: "python.conda", want: "python", wantOK: true},
		{name: "posix no suffix", conv: POSIXConvention(), launcher: "python", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.conv.TargetName(tt.launcher)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("TargetName(%q) = (%q, %v), want (%q, %v)", tt.launcher, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestConvention_IsScriptsDir(t *testing.T) {
	t.Parallel()

	conv := WindowsConvention()
	tests := []struct {
		dir  string
		want bool
	}{
		{filepath.Join("env", "Scripts"), true},
		{filepath.Join("env", "Scripts") + string(filepath.Separator), true},
		{filepath.Join("env", "Wrong"), false},
		{filepath.Join("env", "scripts"), false},
		{filepath.Join("Scripts", "sub"), false},
	}

	for _, tt := range tests {
		if got := conv.IsScriptsDir(tt.dir); got != tt.want {
			t.Errorf("IsScriptsDir(%q) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestConventionByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    ConventionName
		goos    string
		want    ConventionName
		wantErr bool
	}{
		{name: "", goos: platform.Windows, want: ConventionWindows},
		{name: "auto", goos: platform.Linux, want: ConventionPOSIX},
		{name: "auto", goos: platform.Darwin, want: ConventionPOSIX},
		{name: ConventionWindows, goos: platform.Linux, want: ConventionWindows},
		{name: ConventionPOSIX, goos: platform.Windows, want: ConventionPOSIX},
		{name: "dos", goos: platform.Windows, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.name)+"/"+tt.goos, func(t *testing.T) {
			t.Parallel()
			got, err := ConventionByName(tt.name, tt.goos)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownConvention) {
					t.Fatalf("ConventionByName(%q) error = %v, want ErrUnknownConvention", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ConventionByName(%q) error = %v", tt.name, err)
			}
			if got.Name != tt.want {
				t.Errorf("ConventionByName(%q).Name = %q, want %q", tt.name, got.Name, tt.want)
			}
		})
	}
}

func TestConvention_SplitJoinList(t *testing.T) {
	t.Parallel()

	win := WindowsConvention()
	if got := win.SplitList(""); got != nil {
		t.Errorf("SplitList(\"\") = %q, want nil", got)
	}
	got := win.SplitList(`C:\a;;C:\b`)
	if diff := cmp.Diff([]string{`C:\a`, "", `C:\b`}, got); diff != "" {
		t.Errorf("SplitList() mismatch (-want +got):\n%s", diff)
	}
	if joined := win.JoinList(got); joined != `C:\a;;C:\b` {
		t.Errorf("JoinList() = %q", joined)
	}

	posix := POSIXConvention()
	if joined := posix.JoinList([]string{"/env", "/env/bin"}); joined != "/env:/env/bin" {
		t.Errorf("posix JoinList() = %q", joined)
	}
}

func TestConvention_WindowsSearchOrder(t *testing.T) {
	t.Parallel()

	want := []string{"Library/mingw-w64/bin", "Library/usr/bin", "Library/bin", "Scripts", "bin"}
	if diff := cmp.Diff(want, WindowsConvention().SearchDirs); diff != "" {
		t.Errorf("SearchDirs mismatch (-want +got):\n%s", diff)
	}
}
