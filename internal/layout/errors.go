package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors.  Every error returned by this package wraps exactly one
// of them so callers can branch with errors.Is.
var (
	// ErrInvalidLayout is wrapped by *ValidationError.
	ErrInvalidLayout = errors.New("invalid layout")
	// ErrOutOfBounds is wrapped by *BoundsError.
	ErrOutOfBounds = errors.New("seat out of bounds")
	// ErrLabelSpaceExceeded is wrapped by *LabelSpaceError.
	ErrLabelSpaceExceeded = errors.New("row label space exceeded")
	// ErrInvalidSeatID is returned when a seat id such as "A3" cannot be parsed.
	ErrInvalidSeatID = errors.New("invalid seat id")
)

// ValidationError reports the first field of a Config found out of range.
// Field uses the JSON name of the offending field.  For disabled seats
// Value holds the offending row index or seat number and Seat holds the
// whole entry.
type ValidationError struct {
	Field  string
	Value  int
	Reason string
	Seat   *Position
}

func (e *ValidationError) Error() string {
	if e.Seat != nil {
		return fmt.Sprintf("invalid %s: (%d,%d): %s", e.Field, e.Seat.Row, e.Seat.Seat, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %d: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidLayout }

// BoundsError reports a seat address outside a config's grid.
type BoundsError struct {
	Row         int
	Seat        int
	RowCount    int
	SeatsPerRow int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("seat (%d,%d) outside %dx%d grid", e.Row, e.Seat, e.RowCount, e.SeatsPerRow)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// LabelSpaceError reports a row count the row labeler cannot name.
type LabelSpaceError struct {
	Rows     int
	Capacity int
}

func (e *LabelSpaceError) Error() string {
	return fmt.Sprintf("%d rows exceed label capacity %d", e.Rows, e.Capacity)
}

func (e *LabelSpaceError) Unwrap() error { return ErrLabelSpaceExceeded }
