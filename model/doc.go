// Package model provides the named-value container family built on top of
// dtype: mutable Variables with a fixed declared type, immutable
// VariableDeclarations, case-insensitive Model/ModelDeclaration
// collections, and the per-operation ValueOperator dispatch tables.
//
// Operators are looked up by exact operand-type pair and invoked directly;
// they are never graph-routed. A caller wanting to widen an operand first
// does so explicitly through the dtype registry.
package model
