package domain

import (
	"errors"
	"fmt"
)

// ErrOrderNotFound signals a lookup by ID that matched nothing. Callers
// surface it as an "order not found" message and carry on; it is never fatal.
var ErrOrderNotFound = errors.New("order not found")

// ValidationError reports malformed input rejected at the boundary before it
// reaches the queue.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransitionError reports a status change rejected by the lifecycle table
// when strict status checking is on.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %q to %q", e.From, e.To)
}
