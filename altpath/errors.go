package altpath

import "fmt"

// InvalidArgumentError is returned when Run's arguments violate a
// precondition (spec: k >= 1, theta in [0, 1], source/target in range).
// It is a distinct type, not a sentinel value, so callers can recover the
// offending field programmatically via errors.As.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("altpath: invalid argument %q: %s", e.Field, e.Reason)
}
