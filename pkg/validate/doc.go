// Package validate provides the input-validation and normalization core of
// the album catalog sample: a small set of pure, stateless classifiers and
// parsers used to sanity-check user-entered data (dates, identifiers,
// network addresses, URLs) before it is handed to the backend.
//
// All entry points accept arbitrary untyped values and inspect them at the
// boundary instead of assuming well-typed input. Nothing here panics or
// raises: simple checks classify with a boolean, and the parsing entry
// points report failures through explicit error returns so callers can tell
// a wrong runtime kind apart from text that merely fails the grammar.
//
// # Architecture
//
// Each source file groups one concern: primitive guards (`guards.go`),
// the dd/mm/yyyy calendar date parser (`date.go`), the GUID classifier
// (`guid.go`) and the IPv6 recognizer (`ipv6.go`). Every function is a free
// function with no hidden state, so the package is goroutine-safe without
// coordination.
//
// # Error Handling
//
// Failures from ValidateDate wrap one of the package sentinels
// (ErrTypeMismatch, ErrInvalidFormat, ErrOutOfRange) and can be inspected
// with errors.Is. FieldErrors aggregates per-field messages for form
// validation; a record is valid exactly when the map is empty.
package validate
