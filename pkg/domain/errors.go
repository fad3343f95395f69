package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Parse failures are all fatal: any structural defect invalidates the whole
// document, so there is no partial table and no recovery.
var (
	// ErrHeaderFormat is returned when the header row is not exactly
	// SOURCE,DEST,TRIGGER.
	ErrHeaderFormat = errors.New("invalid header format")

	// ErrMissingSource is returned when a row omits the source field before
	// any source has been established.
	ErrMissingSource = errors.New("undefined previous source state")

	// ErrMissingDest is returned when a row omits the destination field.
	// Destinations are never inherited.
	ErrMissingDest = errors.New("undefined destination state")

	// ErrInvalidTimedTrigger is returned when a "__"-prefixed trigger is not
	// followed by an integer number of seconds.
	ErrInvalidTimedTrigger = errors.New("invalid timed trigger")

	// ErrStructuralInvariant is returned when a built transition is missing a
	// required field. Unreachable if normalization holds; kept as the
	// contract boundary with consumers.
	ErrStructuralInvariant = errors.New("transition missing required field")
)

// RowError wraps a parse failure with the raw content of the offending row.
type RowError struct {
	Row []string
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("invalid row: [%s]: %s", strings.Join(e.Row, ","), e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
