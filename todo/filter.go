package todo

import (
	"errors"
	"fmt"
	"strings"

	"tasklist/storage"
)

// FilterMode selects which subset of tasks is displayed
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterActive
	FilterCompleted
)

// ErrUnknownFilter is returned by ParseFilter for anything but all/active/completed
var ErrUnknownFilter = errors.New("unknown filter")

// FilterModes lists every mode in display order
var FilterModes = []FilterMode{FilterAll, FilterActive, FilterCompleted}

// String returns the lowercase name of the mode
func (m FilterMode) String() string {
	switch m {
	case FilterAll:
		return "all"
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return fmt.Sprintf("FilterMode(%d)", int(m))
	}
}

// ParseFilter converts a name (case-insensitive) to a FilterMode
func ParseFilter(s string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "completed", "done":
		return FilterCompleted, nil
	default:
		return FilterAll, fmt.Errorf("%w: %q (want all, active or completed)", ErrUnknownFilter, s)
	}
}

// Match reports whether t belongs in the view selected by m
func (m FilterMode) Match(t storage.Task) bool {
	switch m {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}
