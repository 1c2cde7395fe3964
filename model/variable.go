package model

import (
	"fmt"
	"strings"

	"github.com/teranos/typeflow/dtype"
	"github.com/teranos/typeflow/errors"
)

// MatchLevel is the four-level verdict of comparing two variables.
type MatchLevel int

const (
	// NoMatch: neither name nor value line up
	NoMatch MatchLevel = iota
	// ValueMatch: equal value under a different name
	ValueMatch
	// NameMatch: names match case-insensitively (but not exactly) and
	// values are equal
	NameMatch
	// ExactMatch: case-sensitive name match and equal value
	ExactMatch
)

func (m MatchLevel) String() string {
	switch m {
	case ExactMatch:
		return "exact_match"
	case NameMatch:
		return "name_match"
	case ValueMatch:
		return "value_match"
	default:
		return "no_match"
	}
}

// Variable is a named mutable value cell with a fixed declared type. The
// cell exclusively owns its current Value; reassignment is a whole-value
// swap funneled through the registry, never in-place mutation.
type Variable struct {
	name         string
	declaredType *dtype.DataType
	value        dtype.Value
}

// NewVariable creates a variable of an explicit declared type, coercing the
// initial value through the registry. Fails when no route exists from the
// initial value's type.
func NewVariable(name string, t *dtype.DataType, initial dtype.Value) (*Variable, error) {
	v := &Variable{name: name, declaredType: t, value: initial.Registry().NullValue(t)}
	if err := v.SetValue(initial); err != nil {
		return nil, err
	}
	return v, nil
}

// NewVariableFromValue creates a variable whose declared type is inferred
// from the initial value.
func NewVariableFromValue(name string, initial dtype.Value) *Variable {
	return &Variable{name: name, declaredType: initial.Type(), value: initial}
}

// NewNullVariable creates an uninitialized variable: its value is the
// declared type's null.
func NewNullVariable(reg *dtype.Registry, name string, t *dtype.DataType) *Variable {
	return &Variable{name: name, declaredType: t, value: reg.NullValue(t)}
}

// Name returns the variable's name.
func (v *Variable) Name() string {
	return v.name
}

// DeclaredType returns the type fixed at construction.
func (v *Variable) DeclaredType() *dtype.DataType {
	return v.declaredType
}

// Value returns the current value.
func (v *Variable) Value() dtype.Value {
	return v.value
}

// SetValue assigns a new value, coercing it to the declared type through
// the registry. Fails, leaving the cell untouched, when no route exists.
func (v *Variable) SetValue(val dtype.Value) error {
	converted, err := val.Convert(v.declaredType)
	if err != nil {
		return errors.Wrapf(err, "assigning to variable %q", v.name)
	}
	v.value = converted
	return nil
}

// Matches compares two variables and returns the four-level verdict.
func (v *Variable) Matches(other *Variable) MatchLevel {
	if other == nil {
		return NoMatch
	}
	valuesEqual := v.value.Equal(other.value)
	if !valuesEqual {
		return NoMatch
	}
	if v.name == other.name {
		return ExactMatch
	}
	if strings.EqualFold(v.name, other.name) {
		return NameMatch
	}
	return ValueMatch
}

// Plus combines two variable-like operands into a composite Model holding
// both, not a scalar.
func (v *Variable) Plus(other *Variable) *Model {
	m := NewModel()
	m.AddAttribute(v, true)
	m.AddAttribute(other, true)
	return m
}

// Declaration derives the schema entry for this variable.
func (v *Variable) Declaration() *VariableDeclaration {
	return NewVariableDeclaration(v.name, v.declaredType)
}

func (v *Variable) String() string {
	return fmt.Sprintf("%s %s = %s", v.name, v.declaredType, v.value)
}

// VariableDeclaration is an immutable (name, type) schema entry. Equality
// is case-sensitive on the name.
type VariableDeclaration struct {
	name string
	typ  *dtype.DataType
}

// NewVariableDeclaration creates a schema entry.
func NewVariableDeclaration(name string, t *dtype.DataType) *VariableDeclaration {
	return &VariableDeclaration{name: name, typ: t}
}

// Name returns the declared name.
func (d *VariableDeclaration) Name() string {
	return d.name
}

// Type returns the declared type.
func (d *VariableDeclaration) Type() *dtype.DataType {
	return d.typ
}

// Equal reports declaration equality: case-sensitive name and same type.
func (d *VariableDeclaration) Equal(other *VariableDeclaration) bool {
	return other != nil && d.name == other.name && d.typ == other.typ
}

// Instantiate creates an uninitialized Variable for this declaration.
func (d *VariableDeclaration) Instantiate(reg *dtype.Registry) *Variable {
	return NewNullVariable(reg, d.name, d.typ)
}

// InstantiateWith creates a Variable for this declaration carrying the
// supplied value, coerced to the declared type.
func (d *VariableDeclaration) InstantiateWith(val dtype.Value) (*Variable, error) {
	return NewVariable(d.name, d.typ, val)
}

func (d *VariableDeclaration) String() string {
	return fmt.Sprintf("%s %s", d.name, d.typ)
}
