package limno

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoThermocline is returned when a water column is too well mixed for a
// thermocline to be located.
var ErrNoThermocline = errors.New("limno: no thermocline: water column is mixed")

// OutOfRangeError reports a depth query outside a table or profile range.
type OutOfRangeError struct {
	Depth    float64
	Min, Max float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("limno: depth %.3f m outside range [%.3f, %.3f]", e.Depth, e.Min, e.Max)
}

// DomainError reports an input value outside its physically valid range.
type DomainError struct {
	Quantity string
	Value    float64
	Min, Max float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("limno: %s %.4f outside valid range [%.4f, %.4f]", e.Quantity, e.Value, e.Min, e.Max)
}

// EmptyLayerError reports a degenerate or zero-volume layer.
type EmptyLayerError struct {
	Top, Bottom float64
}

func (e *EmptyLayerError) Error() string {
	return fmt.Sprintf("limno: empty layer [%.3f, %.3f]", e.Top, e.Bottom)
}

// UndefinedIndexError reports an index that is mathematically undefined for
// the given inputs, such as a Lake Number at zero Schmidt stability.
type UndefinedIndexError struct {
	Index  string
	Reason string
}

func (e *UndefinedIndexError) Error() string {
	return fmt.Sprintf("limno: %s undefined: %s", e.Index, e.Reason)
}

// AlignmentError reports timestamp disagreement between two series that must
// join by exact timestamp.
type AlignmentError struct {
	Row         int
	Left, Right time.Time
}

func (e *AlignmentError) Error() string {
	if e.Left.IsZero() && e.Right.IsZero() {
		return fmt.Sprintf("limno: series alignment: length mismatch at row %d", e.Row)
	}
	return fmt.Sprintf("limno: series alignment: timestamps diverge at row %d (%s vs %s)",
		e.Row, e.Left.Format(time.RFC3339), e.Right.Format(time.RFC3339))
}
