package common

import "strings"

// UnknownStr is the fallback name for out-of-range enum values.
const UnknownStr = "unknown"

// IsBlank returns true if s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
