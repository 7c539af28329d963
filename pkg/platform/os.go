// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Current returns the GOOS the binary was built for.
func Current() string { return runtime.GOOS }

// IsWindows reports whether goos names Windows.
func IsWindows(goos string) bool { return goos == Windows }
