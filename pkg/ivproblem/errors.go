// Package ivproblem defines the Problem-builder surface the core
// consumes (spec §6: variables, constraints, optional objective) and the
// structural-fault error type shared across the core's packages.
package ivproblem

import (
	"fmt"

	"github.com/pkg/errors"
)

// FaultKind classifies a structural fault (spec §7): a synchronous,
// recoverable error never raised from within a tight numeric loop.
// Numeric outcomes (empty domain, infeasibility, non-differentiability)
// are values — a Proof or Status — never a FaultKind.
type FaultKind int

const (
	// FaultBadIndex marks an out-of-range DAG or box index.
	FaultBadIndex FaultKind = iota
	// FaultUnknownVariable marks a reference to a variable absent from a scope or box.
	FaultUnknownVariable
	// FaultBadTolerance marks a negative or otherwise invalid tolerance.
	FaultBadTolerance
	// FaultBadInflation marks an inflation factor out of range (delta <= 1 or chi < 0).
	FaultBadInflation
	// FaultBadParameter marks a malformed or unrecognized configuration parameter.
	FaultBadParameter
	// FaultInvalidProblem marks a structurally invalid problem (e.g. empty scope, duplicate variable id).
	FaultInvalidProblem
)

func (k FaultKind) String() string {
	switch k {
	case FaultBadIndex:
		return "bad-index"
	case FaultUnknownVariable:
		return "unknown-variable"
	case FaultBadTolerance:
		return "bad-tolerance"
	case FaultBadInflation:
		return "bad-inflation"
	case FaultBadParameter:
		return "bad-parameter"
	case FaultInvalidProblem:
		return "invalid-problem"
	default:
		return "unknown-fault"
	}
}

// FaultError is a structural fault. It always carries a stack trace
// (attached via github.com/pkg/errors at construction time) so a fault
// surfacing at the top of Solve still names where it originated, the way
// realpaver's Exception carries a file name and line number.
type FaultError struct {
	Kind    FaultKind
	Message string
	cause   error
}

// NewFaultError builds a FaultError and attaches a stack trace.
func NewFaultError(kind FaultKind, format string, args ...any) error {
	return errors.WithStack(&FaultError{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// WrapFault wraps an existing error as a FaultError of the given kind,
// preserving it as the Unwrap() cause.
func WrapFault(kind FaultKind, cause error, format string, args ...any) error {
	return errors.WithStack(&FaultError{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause})
}

func (e *FaultError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("ivsolve: %s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("ivsolve: %s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *FaultError) Unwrap() error { return e.cause }

// IsFault reports whether err is (or wraps) a FaultError of the given kind.
func IsFault(err error, kind FaultKind) bool {
	var fe *FaultError
	if !errors.As(err, &fe) {
		return false
	}
	return fe.Kind == kind
}
