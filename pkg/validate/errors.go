package validate

import "errors"

// Sentinel errors returned (wrapped) by the parsing entry points. Callers
// distinguish them with errors.Is to offer different user guidance, e.g.
// "must be text" versus "not a real date".
var (
	// ErrTypeMismatch is returned when a value has the wrong runtime kind,
	// such as a number where text is expected.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidFormat is returned when text fails the structural grammar.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOutOfRange is returned when text is structurally valid but
	// semantically impossible, such as day 31 in a 30-day month.
	ErrOutOfRange = errors.New("value out of range")
)
