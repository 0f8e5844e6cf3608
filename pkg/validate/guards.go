package validate

import (
	"math"
	"net/url"
	"strings"
)

// IsNonEmptyText reports whether v is text that still has content after
// trimming leading and trailing whitespace. Any non-text value is false.
func IsNonEmptyText(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

// IsNonNegativeFiniteNumber reports whether v is a numeric value that is
// finite and not less than zero. NaN, infinities and non-numeric values
// are false. Values decoded from JSON arrive as float64, so the float
// branch is the common path.
func IsNonNegativeFiniteNumber(v any) bool {
	switch n := v.(type) {
	case float64:
		return !math.IsNaN(n) && !math.IsInf(n, 0) && n >= 0
	case float32:
		f := float64(n)
		return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
	case int:
		return n >= 0
	case int8:
		return n >= 0
	case int16:
		return n >= 0
	case int32:
		return n >= 0
	case int64:
		return n >= 0
	case uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

// IsHTTPURL reports whether v is non-empty text that parses as an absolute
// URL with an http or https scheme and a host. Parsing failures of any kind
// classify as false; no error escapes.
func IsHTTPURL(v any) bool {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
