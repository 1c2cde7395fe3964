package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/typeflow/dtype"
	"github.com/teranos/typeflow/errors"
)

func intVar(reg *dtype.Registry, name string, n int) *Variable {
	return NewVariableFromValue(name, reg.NewValue(dtype.Integer, n))
}

func TestModelCaseInsensitiveLookup(t *testing.T) {
	reg := dtype.NewBuiltinRegistry()
	m := NewModel(intVar(reg, "Foo", 1))

	upper, ok := m.Attribute("Foo")
	require.True(t, ok)
	lower, ok := m.Attribute("foo")
	require.True(t, ok)
	assert.Same(t, upper, lower, "one spelling, one variable")
}

func TestModelAddAttributeReplaceFlag(t *testing.T) {
	reg := dtype.NewBuiltinRegistry()
	m := NewModel()
	first := intVar(reg, "age", 30)
	second := intVar(reg, "AGE", 31)

	m.AddAttribute(first, false)
	assert.Equal(t, 1, m.Len())

	// Present and !replace: silent no-op, not an error.
	m.AddAttribute(second, false)
	got, _ := m.Attribute("age")
	assert.Same(t, first, got)

	// Present and replace: swap.
	m.AddAttribute(second, true)
	got, _ = m.Attribute("age")
	assert.Same(t, second, got)
	assert.Equal(t, 1, m.Len())
}

func TestModelMustAttribute(t *testing.T) {
	reg := dtype.NewBuiltinRegistry()
	m := NewModel(intVar(reg, "age", 30))

	_, err := m.MustAttribute("age")
	require.NoError(t, err)

	_, err = m.MustAttribute("height")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingAttribute))
	assert.Contains(t, err.Error(), "height")
}

func TestModelContainsAttributeVerdicts(t *testing.T) {
	reg := dtype.NewBuiltinRegistry()
	m := NewModel(intVar(reg, "age", 30), intVar(reg, "height", 180))

	assert.Equal(t, ExactMatch, m.ContainsAttribute(intVar(reg, "age", 30)))
	assert.Equal(t, NameMatch, m.ContainsAttribute(intVar(reg, "AGE", 30)))
	assert.Equal(t, ValueMatch, m.ContainsAttribute(intVar(reg, "years", 30)))
	assert.Equal(t, NoMatch, m.ContainsAttribute(intVar(reg, "age", 99)))
}

func TestModelPlusOverwritesByName(t *testing.T) {
	reg := dtype.NewBuiltinRegistry()
	m1 := NewModel(intVar(reg, "age", 30))
	m2 := NewModel(intVar(reg, "age", 31))

	merged := m1.Plus(m2)
	assert.Equal(t, 1, merged.Len())
	got, ok := merged.Attribute("age")
	require.True(t, ok)
	assert.Equal(t, 31, got.Value().Raw())

	// Operands are untouched.
	orig, _ := m1.Attribute("age")
	assert.Equal(t, 30, orig.Value().Raw())
}

func TestModelMinusRemovesByName(t *testing.T) {
	reg := dtype.NewBuiltinRegistry()
	m1 := NewModel(intVar(reg, "age", 30), intVar(reg, "height", 180))
	m2 := NewModel(intVar(reg, "AGE", 99))

	diff := m1.Minus(m2)
	assert.Equal(t, 1, diff.Len())
	_, ok := diff.Attribute("age")
	assert.False(t, ok)
	_, ok = diff.Attribute("height")
	assert.True(t, ok)
}

func TestModelAttributesPreserveInsertionOrder(t *testing.T) {
	reg := dtype.NewBuiltinRegistry()
	m := NewModel(intVar(reg, "c", 1), intVar(reg, "a", 2), intVar(reg, "b", 3))

	var names []string
	for _, v := range m.Attributes() {
		names = append(names, v.Name())
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

func TestModelDeclarationPlusKeepsDuplicateNames(t *testing.T) {
	// The deliberate asymmetry with Model.Plus: declarations never merge
	// by name.
	d1 := NewModelDeclaration(NewVariableDeclaration("age", dtype.Integer))
	d2 := NewModelDeclaration(NewVariableDeclaration("age", dtype.Integer))

	union := d1.Plus(d2)
	assert.Equal(t, 2, union.Len(), "both age entries survive the union")
}

func TestModelDeclarationMinusByIdentity(t *testing.T) {
	shared := NewVariableDeclaration("age", dtype.Integer)
	other := NewVariableDeclaration("height", dtype.Integer)
	d1 := NewModelDeclaration(shared, other)
	d2 := NewModelDeclaration(shared)

	diff := d1.Minus(d2)
	assert.Equal(t, 1, diff.Len())
	got, ok := diff.Attribute("height")
	require.True(t, ok)
	assert.Same(t, other, got)
}

func TestModelDeclarationDirectInsertIsUniqueByName(t *testing.T) {
	d := NewModelDeclaration()
	assert.True(t, d.AddAttribute(NewVariableDeclaration("age", dtype.Integer)))
	assert.False(t, d.AddAttribute(NewVariableDeclaration("AGE", dtype.Long)),
		"direct insertion is case-insensitively unique")
	assert.Equal(t, 1, d.Len())
}

func TestModelDeclarationLookup(t *testing.T) {
	d := NewModelDeclaration(NewVariableDeclaration("age", dtype.Integer))

	decl, ok := d.Attribute("AGE")
	require.True(t, ok)
	assert.Equal(t, "age", decl.Name())

	_, err := d.MustAttribute("height")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingAttribute))
}

func TestModelDeclarationInstantiateAllNull(t *testing.T) {
	reg := dtype.NewBuiltinRegistry()
	d := NewModelDeclaration(
		NewVariableDeclaration("age", dtype.Integer),
		NewVariableDeclaration("name", dtype.String),
	)

	m := d.Instantiate(reg)
	assert.Equal(t, 2, m.Len())
	for _, v := range m.Attributes() {
		assert.True(t, v.Value().IsNull())
	}
	age, ok := m.Attribute("age")
	require.True(t, ok)
	assert.Same(t, dtype.Integer, age.DeclaredType())
}

func TestModelDerivesDeclarationPointwise(t *testing.T) {
	reg := dtype.NewBuiltinRegistry()
	m := NewModel(
		intVar(reg, "age", 30),
		NewVariableFromValue("name", reg.NewValue(dtype.String, "ada")),
	)

	d := m.Declaration()
	assert.Equal(t, 2, d.Len())
	decl, ok := d.Attribute("name")
	require.True(t, ok)
	assert.Same(t, dtype.String, decl.Type())
}

func TestScenarioModelVersusDeclarationMerge(t *testing.T) {
	reg := dtype.NewBuiltinRegistry()

	// Model merge overwrites by name.
	merged := NewModel(intVar(reg, "age", 30)).Plus(NewModel(intVar(reg, "age", 31)))
	got, ok := merged.Attribute("age")
	require.True(t, ok)
	assert.Equal(t, 31, got.Value().Raw())
	assert.Equal(t, 1, merged.Len())

	// The equivalent declaration merge keeps both entries.
	union := NewModelDeclaration(NewVariableDeclaration("age", dtype.Integer)).
		Plus(NewModelDeclaration(NewVariableDeclaration("age", dtype.Integer)))
	assert.Equal(t, 2, union.Len())
}
