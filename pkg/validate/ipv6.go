package validate

import "strings"

// IsValidIPv6 reports whether v is text denoting a valid IPv6 address,
// including zero-compression (`::`) and an embedded dotted-decimal IPv4
// suffix. Acceptance only: no canonical form is produced.
//
// The check is a deterministic sequence of structural rules rather than a
// single regular expression, so the counting rule stays correct: at most
// one compression marker, per-side group lists, 1-4 hex digits per group,
// an embedded IPv4 suffix occupying two group slots, and a total of exactly
// 8 groups without compression or at most 7 with it.
func IsValidIPv6(v any) bool {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	// More than one `::` makes the expansion ambiguous.
	if strings.Count(s, "::") > 1 {
		return false
	}

	compressed := strings.Contains(s, "::")

	var left, right []string
	if compressed {
		sides := strings.SplitN(s, "::", 2)
		left = splitGroups(sides[0])
		right = splitGroups(sides[1])
	} else {
		right = splitGroups(s)
	}

	// Only the final group of the right side (the whole list when there is
	// no compression) may carry the embedded IPv4 suffix.
	hasIPv4 := false
	if n := len(right); n > 0 && strings.Contains(right[n-1], ".") {
		if !isIPv4Suffix(right[n-1]) {
			return false
		}
		hasIPv4 = true
		right = right[:n-1]
	}

	for _, g := range left {
		if !isHextet(g) {
			return false
		}
	}
	for _, g := range right {
		if !isHextet(g) {
			return false
		}
	}

	// An embedded IPv4 suffix stands for the last two hextets.
	total := len(left) + len(right)
	if hasIPv4 {
		total += 2
	}

	if compressed {
		// The marker must stand in for at least one omitted group.
		return total <= 7
	}
	return total == 8
}

// splitGroups splits one side of an address on single colons. An empty side
// yields an empty list, not a list holding one empty string.
func splitGroups(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ":")
}

// isHextet reports whether g is 1-4 hexadecimal digits.
func isHextet(g string) bool {
	if len(g) < 1 || len(g) > 4 {
		return false
	}
	for i := 0; i < len(g); i++ {
		c := g[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// isIPv4Suffix reports whether g is four dot-separated decimal octets in
// canonical text: digits only, no leading-zero padding, each in [0,255].
func isIPv4Suffix(g string) bool {
	octets := strings.Split(g, ".")
	if len(octets) != 4 {
		return false
	}
	for _, o := range octets {
		if !isDigits(o, 1, 3) {
			return false
		}
		if len(o) > 1 && o[0] == '0' {
			return false
		}
		if atoi(o) > 255 {
			return false
		}
	}
	return true
}
