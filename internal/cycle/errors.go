package cycle

import (
	"errors"
	"fmt"

	"github.com/joaopnk/ignite-timer/internal/models"
)

var (
	ErrValidation    = errors.New("invalid cycle request")
	ErrInvalidState  = errors.New("invalid cycle state")
	ErrCycleActive   = errors.New("a cycle is already active")
	ErrNoActiveCycle = errors.New("no active cycle")
)

// ValidationError reports a creation request that breaks the field constraints.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// InvalidStateError reports an operation that does not fit the store's current state.
// The store is left untouched when one is returned.
type InvalidStateError struct {
	Op      string
	CycleID models.CycleID
	Err     error
}

func (e *InvalidStateError) Error() string {
	if e == nil {
		return ""
	}
	if e.CycleID > 0 {
		return fmt.Sprintf("%s cycle %d: %v", e.Op, e.CycleID, e.Err)
	}
	return fmt.Sprintf("%s cycle: %v", e.Op, e.Err)
}

func (e *InvalidStateError) Unwrap() error { return e.Err }

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

func invalidState(op string, id models.CycleID, err error) error {
	return &InvalidStateError{Op: op, CycleID: id, Err: err}
}
