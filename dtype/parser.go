package dtype

import (
	"fmt"

	"github.com/teranos/typeflow/errors"
)

// ValueParser is a pluggable converter. It declares its supported edges via
// Conversions and performs the actual transform in Parse.
//
// Parse receives the raw payload together with the source and target types
// of the single edge being executed. A payload whose runtime shape does not
// match the declared source type is a run-time error reported as *ParseError.
type ValueParser interface {
	// Conversions returns every (source, target, reliability) edge this
	// parser supports, in a stable order.
	Conversions() []Conversion

	// Parse transforms payload from one type to another along a single
	// declared edge.
	Parse(payload any, from, to *DataType) (any, error)
}

// ParseError reports a failed single-step transform. It carries the
// offending payload, the edge endpoints, and, when available, the
// underlying low-level cause.
type ParseError struct {
	Payload any
	From    *DataType
	To      *DataType
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse failed: %v (%s) → %s: %v", e.Payload, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("parse failed: %v (%s) → %s", e.Payload, e.From, e.To)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is matches the package sentinel so callers can use errors.Is without
// knowing the concrete type.
func (e *ParseError) Is(target error) bool {
	return target == errors.ErrParseFailed
}

// NoRouteError reports that no conversion path exists between two types.
type NoRouteError struct {
	From *DataType
	To   *DataType
}

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("no conversion route from %s to %s", e.From, e.To)
}

func (e *NoRouteError) Is(target error) bool {
	return target == errors.ErrNoRoute
}
