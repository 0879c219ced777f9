package types

import (
	"errors"
	"fmt"
)

// Fault classes raised by the solver core. Callers test with errors.Is.
var (
	ErrInvalidState      = errors.New("invalid state")
	ErrConfiguration     = errors.New("configuration error")
	ErrNumericDegeneracy = errors.New("numeric degeneracy")
)

// SolverError carries the location of a fault. Index is a cell or face index, -1 when not applicable.
type SolverError struct {
	Kind   error
	Op     string
	Index  int
	Time   float64
	Detail string
}

func (e *SolverError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Index >= 0 {
		msg += fmt.Sprintf(" at index %d", e.Index)
	}
	if e.Time != 0 {
		msg += fmt.Sprintf(", time %g", e.Time)
	}
	if len(e.Detail) != 0 {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *SolverError) Unwrap() error {
	return e.Kind
}

func NewInvalidStateError(op string, index int, format string, args ...interface{}) error {
	return &SolverError{Kind: ErrInvalidState, Op: op, Index: index, Detail: fmt.Sprintf(format, args...)}
}

func NewConfigurationError(op string, format string, args ...interface{}) error {
	return &SolverError{Kind: ErrConfiguration, Op: op, Index: -1, Detail: fmt.Sprintf(format, args...)}
}

func NewDegeneracyError(op string, index int, format string, args ...interface{}) error {
	return &SolverError{Kind: ErrNumericDegeneracy, Op: op, Index: index, Detail: fmt.Sprintf(format, args...)}
}

// WithLocation stamps a face/cell index and time onto a SolverError, other errors pass through.
func WithLocation(err error, index int, time float64) error {
	var se *SolverError
	if errors.As(err, &se) {
		cp := *se
		if cp.Index < 0 {
			cp.Index = index
		}
		cp.Time = time
		return &cp
	}
	return err
}
