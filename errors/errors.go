// Package errors provides error handling for typeflow.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrNoRoute) {
//	    // handle unreachable target type
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll
	Mark       = crdb.Mark
)

// Assertions and panics
var (
	AssertionFailedf                 = crdb.AssertionFailedf
	NewAssertionErrorWithWrappedErrf = crdb.NewAssertionErrorWithWrappedErrf
)

// Common sentinel errors for use across typeflow.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrTypeNotRegistered indicates a DataType was used before being
	// registered. Always a usage error: it propagates, never defaults.
	ErrTypeNotRegistered = New("type not registered")

	// ErrNoRoute indicates no conversion path exists between two types
	ErrNoRoute = New("no conversion route")

	// ErrParseFailed indicates a parser rejected a payload whose runtime
	// shape did not match its declared source type
	ErrParseFailed = New("parse failed")

	// ErrUnsupportedOperands indicates an operator was invoked on a type
	// pair it was not registered for
	ErrUnsupportedOperands = New("unsupported operand combination")

	// ErrMissingAttribute indicates a named attribute lookup failed
	ErrMissingAttribute = New("missing attribute")

	// ErrDuplicateRegistration indicates a registration was rejected
	// because an entry already exists for the same key
	ErrDuplicateRegistration = New("already registered")
)

// IsNoRouteError checks if an error is or wraps ErrNoRoute.
func IsNoRouteError(err error) bool {
	return err != nil && Is(err, ErrNoRoute)
}

// IsParseError checks if an error is or wraps ErrParseFailed.
func IsParseError(err error) bool {
	return err != nil && Is(err, ErrParseFailed)
}

// IsUnsupportedOperandsError checks if an error is or wraps ErrUnsupportedOperands.
func IsUnsupportedOperandsError(err error) bool {
	return err != nil && Is(err, ErrUnsupportedOperands)
}

// NewTypeNotRegisteredError creates a type-not-registered error naming the type.
func NewTypeNotRegisteredError(typeName string) error {
	return Wrap(ErrTypeNotRegistered, typeName)
}

// NewMissingAttributeError creates a missing-attribute error with the looked-up name.
func NewMissingAttributeError(name string) error {
	return Wrap(ErrMissingAttribute, name)
}
