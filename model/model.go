package model

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/teranos/typeflow/dtype"
	"github.com/teranos/typeflow/errors"
)

// Model is a case-insensitive-unique-by-name collection of Variables,
// preserving insertion order. Inserting an existing name either overwrites
// or no-ops, per an explicit replace flag.
type Model struct {
	// keyed by the lowercased name; values keep their original spelling
	attrs *orderedmap.OrderedMap[string, *Variable]
}

// NewModel creates a model from the given variables, in order. Later
// variables overwrite earlier ones sharing a name.
func NewModel(vars ...*Variable) *Model {
	m := &Model{attrs: orderedmap.New[string, *Variable]()}
	for _, v := range vars {
		m.AddAttribute(v, true)
	}
	return m
}

func attributeKey(name string) string {
	return strings.ToLower(name)
}

// AddAttribute inserts a variable under its name, case-insensitively.
// When the name is already present the existing variable is swapped only
// if replaceIfExists is set; otherwise the call is a silent no-op, not an
// error.
func (m *Model) AddAttribute(v *Variable, replaceIfExists bool) {
	key := attributeKey(v.Name())
	if _, present := m.attrs.Get(key); present && !replaceIfExists {
		return
	}
	m.attrs.Set(key, v)
}

// Attribute looks a variable up by name, case-insensitively. The second
// return is false when the name is absent; exploratory lookups use this
// form.
func (m *Model) Attribute(name string) (*Variable, bool) {
	return m.attrs.Get(attributeKey(name))
}

// MustAttribute looks a variable up by name and fails with
// ErrMissingAttribute when absent; eager validation uses this form.
func (m *Model) MustAttribute(name string) (*Variable, error) {
	v, ok := m.attrs.Get(attributeKey(name))
	if !ok {
		return nil, errors.NewMissingAttributeError(name)
	}
	return v, nil
}

// RemoveAttribute deletes a variable by name. Reports whether a variable
// was present.
func (m *Model) RemoveAttribute(name string) bool {
	_, present := m.attrs.Delete(attributeKey(name))
	return present
}

// ContainsAttribute scans the model for the best four-level verdict against
// the candidate variable.
func (m *Model) ContainsAttribute(v *Variable) MatchLevel {
	best := NoMatch
	for pair := m.attrs.Oldest(); pair != nil; pair = pair.Next() {
		if level := pair.Value.Matches(v); level > best {
			best = level
			if best == ExactMatch {
				break
			}
		}
	}
	return best
}

// Attributes returns the variables in insertion order.
func (m *Model) Attributes() []*Variable {
	out := make([]*Variable, 0, m.attrs.Len())
	for pair := m.attrs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Len returns the number of attributes.
func (m *Model) Len() int {
	return m.attrs.Len()
}

// Plus returns a new model holding this model's attributes merged with the
// other's; the other's variables overwrite by name.
func (m *Model) Plus(other *Model) *Model {
	out := NewModel(m.Attributes()...)
	for _, v := range other.Attributes() {
		out.AddAttribute(v, true)
	}
	return out
}

// Minus returns a new model with every attribute whose name appears in the
// other model removed.
func (m *Model) Minus(other *Model) *Model {
	out := NewModel()
	for _, v := range m.Attributes() {
		if _, present := other.Attribute(v.Name()); present {
			continue
		}
		out.AddAttribute(v, true)
	}
	return out
}

// Declaration derives the pointwise ModelDeclaration.
func (m *Model) Declaration() *ModelDeclaration {
	d := NewModelDeclaration()
	for _, v := range m.Attributes() {
		d.AddAttribute(v.Declaration())
	}
	return d
}

// ModelDeclaration is a schema-like collection of VariableDeclarations,
// case-insensitive-unique-by-name on direct insertion. Unlike Model, its
// Plus/Minus are plain set union and relative complement on declaration
// identity: merging two declarations that share a name keeps both entries.
type ModelDeclaration struct {
	decls []*VariableDeclaration
}

// NewModelDeclaration creates a declaration from the given entries, in
// order. Entries whose name is already present (case-insensitively) are
// skipped.
func NewModelDeclaration(decls ...*VariableDeclaration) *ModelDeclaration {
	d := &ModelDeclaration{}
	for _, decl := range decls {
		d.AddAttribute(decl)
	}
	return d
}

// AddAttribute inserts a declaration unless a same-named (case-insensitive)
// entry already exists. Reports whether the entry was added.
func (d *ModelDeclaration) AddAttribute(decl *VariableDeclaration) bool {
	for _, existing := range d.decls {
		if strings.EqualFold(existing.Name(), decl.Name()) {
			return false
		}
	}
	d.decls = append(d.decls, decl)
	return true
}

// Attribute looks a declaration up by name, case-insensitively, returning
// the first match in insertion order.
func (d *ModelDeclaration) Attribute(name string) (*VariableDeclaration, bool) {
	for _, decl := range d.decls {
		if strings.EqualFold(decl.Name(), name) {
			return decl, true
		}
	}
	return nil, false
}

// MustAttribute looks a declaration up by name and fails with
// ErrMissingAttribute when absent.
func (d *ModelDeclaration) MustAttribute(name string) (*VariableDeclaration, error) {
	decl, ok := d.Attribute(name)
	if !ok {
		return nil, errors.NewMissingAttributeError(name)
	}
	return decl, nil
}

// Attributes returns the declarations in insertion order.
func (d *ModelDeclaration) Attributes() []*VariableDeclaration {
	out := make([]*VariableDeclaration, len(d.decls))
	copy(out, d.decls)
	return out
}

// Len returns the number of declarations.
func (d *ModelDeclaration) Len() int {
	return len(d.decls)
}

// Contains reports whether an equal declaration (case-sensitive name and
// same type) is present.
func (d *ModelDeclaration) Contains(decl *VariableDeclaration) bool {
	for _, existing := range d.decls {
		if existing.Equal(decl) {
			return true
		}
	}
	return false
}

// Plus returns the set union of the two declarations. Unlike Model.Plus,
// declarations never merge by name: entries are unique by object identity,
// so merging two declarations that each carry an "age" entry keeps both.
func (d *ModelDeclaration) Plus(other *ModelDeclaration) *ModelDeclaration {
	out := &ModelDeclaration{decls: make([]*VariableDeclaration, len(d.decls))}
	copy(out.decls, d.decls)
	for _, decl := range other.decls {
		if !out.containsIdentical(decl) {
			out.decls = append(out.decls, decl)
		}
	}
	return out
}

// Minus returns the relative complement: every declaration of d that is not
// itself (by identity) an entry of other.
func (d *ModelDeclaration) Minus(other *ModelDeclaration) *ModelDeclaration {
	out := &ModelDeclaration{}
	for _, decl := range d.decls {
		if !other.containsIdentical(decl) {
			out.decls = append(out.decls, decl)
		}
	}
	return out
}

func (d *ModelDeclaration) containsIdentical(decl *VariableDeclaration) bool {
	for _, existing := range d.decls {
		if existing == decl {
			return true
		}
	}
	return false
}

// Instantiate creates an all-null Model: one uninitialized Variable per
// declaration, in order.
func (d *ModelDeclaration) Instantiate(reg *dtype.Registry) *Model {
	m := NewModel()
	for _, decl := range d.decls {
		m.AddAttribute(decl.Instantiate(reg), true)
	}
	return m
}
