// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes the GOOS names used to pick the default
// launcher convention.
package platform
