package types

import "errors"

// Filter selects the subset of the collection exposed as the filtered view.
type Filter string

// Recognized filter values.
const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// DefaultFilter is the filter in effect before any selection is made.
const DefaultFilter = FilterAll

// ErrInvalidFilter is returned when a filter value is not one of the
// recognized constants.
var ErrInvalidFilter = errors.New("invalid filter value")

// validFilters is the set of recognized filter values.
var validFilters = map[Filter]bool{
	FilterAll:       true,
	FilterActive:    true,
	FilterCompleted: true,
}

// Valid reports whether f is a recognized filter value.
func (f Filter) Valid() bool {
	return validFilters[f]
}

// Match reports whether the task belongs to the subset selected by f.
// An unrecognized filter matches everything, like FilterAll.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}
