// Package catalog defines the album record consumed by the catalog sample
// and the pure helpers that operate on it: the record shape guard, the
// form-level validator and the ordering engine. Records are read-only here;
// nothing in this package mutates an Album or a slice it is handed.
package catalog

import (
	"math"

	"github.com/vaskavasileva/gh-copilot-demo/pkg/validate"
)

// Album is one catalog record. Genre is optional and absent when empty.
type Album struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
	Genre    string  `json:"genre,omitempty"`
}

// IsWellFormedRecord reports whether v is a well-formed catalog record: an
// Album value (or pointer), or a decoded JSON object, whose required fields
// all satisfy their guard. Any other kind of value is rejected.
func IsWellFormedRecord(v any) bool {
	switch r := v.(type) {
	case Album:
		return isWellFormedAlbum(r)
	case *Album:
		return r != nil && isWellFormedAlbum(*r)
	case map[string]any:
		return isWholeNumber(r["id"]) &&
			validate.IsNonEmptyText(r["title"]) &&
			validate.IsNonEmptyText(r["artist"]) &&
			validate.IsNonNegativeFiniteNumber(r["price"]) &&
			validate.IsHTTPURL(r["image_url"])
	default:
		return false
	}
}

func isWellFormedAlbum(a Album) bool {
	return validate.IsNonEmptyText(a.Title) &&
		validate.IsNonEmptyText(a.Artist) &&
		validate.IsNonNegativeFiniteNumber(a.Price) &&
		validate.IsHTTPURL(a.ImageURL)
}

// ValidateForm independently evaluates every user-entered album field from
// a decoded form or JSON object, accumulating one message per failing field
// so a UI can report all problems in a single pass. The input is valid
// exactly when the returned map is empty.
func ValidateForm(fields map[string]any) validate.FieldErrors {
	errs := validate.FieldErrors{}
	errs.Check(validate.IsNonEmptyText(fields["title"]), "title", "title is required")
	errs.Check(validate.IsNonEmptyText(fields["artist"]), "artist", "artist is required")
	errs.Check(validate.IsNonNegativeFiniteNumber(fields["price"]), "price", "price must be a non-negative number")
	errs.Check(validate.IsHTTPURL(fields["image_url"]), "image_url", "image URL must be a valid http or https URL")
	return errs
}

// isWholeNumber accepts the integer kinds plus float values that carry no
// fractional part, which is how JSON decoding delivers identifiers.
func isWholeNumber(v any) bool {
	switch n := v.(type) {
	case float64:
		return !math.IsNaN(n) && !math.IsInf(n, 0) && n == math.Trunc(n)
	case float32:
		f := float64(n)
		return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}
