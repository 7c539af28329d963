// SPDX-License-Identifier: MPL-2.0

package runtime

import "strings"

// findEnvSeparator returns the index of the '=' that separates name and value.
// Windows keeps per-drive working directories in entries such as "=C:=C:\dir",
// so a leading '=' belongs to the name.
func findEnvSeparator(e string) int {
	if e == "" {
		return -1
	}
	idx := strings.IndexByte(e[1:], '=')
	if idx == -1 {
		return -1
	}
	return idx + 1
}

func envNameMatches(name, key string, caseInsensitive bool) bool {
	if caseInsensitive {
		return strings.EqualFold(name, key)
	}
	return name == key
}

// LookupEnv returns the value of key in environ. When several entries match,
// the last one wins, matching how os/exec deduplicates a child's environment.
func LookupEnv(environ []string, key string, caseInsensitive bool) (string, bool) {
	value, found := "", false
	for _, entry := range environ {
		idx := findEnvSeparator(entry)
		if idx == -1 {
			continue
		}
		if envNameMatches(entry[:idx], key, caseInsensitive) {
			value, found = entry[idx+1:], true
		}
	}
	return value, found
}

// WithEnv returns a copy of environ in which key is set to value.
// The first matching entry is replaced in place (keeping its original
// spelling, e.g. "Path" on Windows) and any later duplicates are dropped.
// When no entry matches, key=value is appended.
func WithEnv(environ []string, key, value string, caseInsensitive bool) []string {
	result := make([]string, 0, len(environ)+1)
	replaced := false
	for _, entry := range environ {
		idx := findEnvSeparator(entry)
		if idx == -1 || !envNameMatches(entry[:idx], key, caseInsensitive) {
			result = append(result, entry)
			continue
		}
		if replaced {
			continue
		}
		result = append(result, entry[:idx]+"="+value)
		replaced = true
	}
	if !replaced {
		result = append(result, key+"="+value)
	}
	return result
}
