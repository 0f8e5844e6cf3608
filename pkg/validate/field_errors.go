package validate

import (
	"sort"
	"strings"
)

// FieldErrors maps a record field name to a human-readable validation
// message. A value is valid exactly when its map is empty.
type FieldErrors map[string]string

// Valid reports whether no field failed.
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// Check records message under field when ok is false. The first message
// recorded for a field wins.
func (fe FieldErrors) Check(ok bool, field, message string) {
	if ok {
		return
	}
	if _, exists := fe[field]; !exists {
		fe[field] = message
	}
}

// Error implements the error interface so a FieldErrors value can travel an
// error return path. Fields are listed in stable order.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
