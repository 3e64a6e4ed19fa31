package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ResolveTask turns a task reference into a task id.
// A reference is either a 1-based position in the currently displayed list
// or a full task id. Positions are tried first; ids are far larger than any
// realistic list length.
func ResolveTask(env *Env, args []string) (int64, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}

	ref := args[0]
	n, err := strconv.ParseInt(ref, 10, 64)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid task reference: %s", ref)
	}

	rows := env.Page().Rows
	if n <= int64(len(rows)) {
		return rows[n-1].ID, nil
	}

	if _, ok := env.Store.Get(n); ok {
		return n, nil
	}

	return 0, fmt.Errorf("task not found: %s", ref)
}
