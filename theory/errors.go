package theory

import "errors"

var (
	// ErrUnsupportedKey is returned when a key has no table entry, directly or via its enharmonic alias.
	ErrUnsupportedKey = errors.New("unsupported key")

	// ErrUnresolvableNote is returned when a scale degree cannot be mapped to a note name.
	ErrUnresolvableNote = errors.New("unresolvable note")

	// ErrDegreeOutOfRange accompanies ErrUnresolvableNote for degrees outside 1-7.
	ErrDegreeOutOfRange = errors.New("scale degree out of range")
)
