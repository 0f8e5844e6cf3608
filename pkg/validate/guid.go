package validate

import (
	"strings"

	"github.com/google/uuid"
)

// IsValidGUID reports whether v is text that, after trimming, is a GUID in
// the canonical 8-4-4-4-12 grouped hex form, optionally wrapped in a single
// matching pair of braces or parentheses. Hex digit case is ignored. The
// function classifies only; it never canonicalizes.
func IsValidGUID(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"):
		s = s[1 : len(s)-1]
	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"):
		s = s[1 : len(s)-1]
	case strings.HasPrefix(s, "{") || strings.HasSuffix(s, "}"),
		strings.HasPrefix(s, "(") || strings.HasSuffix(s, ")"):
		// Mismatched or half-open wrapper.
		return false
	}

	// Fast rejection: check length and hyphen positions before parsing.
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}
