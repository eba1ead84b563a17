package validator

import (
	"strings"
	"unicode"
)

// ValidateLabel reports whether s can name a profession or a region. Any
// non-blank text without control characters qualifies, digits included.
func ValidateLabel(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}

	return true
}
