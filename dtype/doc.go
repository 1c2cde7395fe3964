// Package dtype provides the dynamic value-and-type model at the core of
// typeflow: named data types arranged in a single-parent forest, a directed
// weighted graph of registered conversions between them, and loosely-typed
// values that convert between types on demand.
//
// # Overview
//
// A DataType is an opaque identity with a display name. Types are connected
// by Conversions, single-step (source, target, reliability) edges backed by
// a ValueParser that performs the actual transform. The Registry composes
// the type hierarchy, the conversion graph, and the bootstrap parser into a
// single access point:
//
//	reg := dtype.Default()
//
//	v := reg.NewValue(dtype.String, "42")
//	n, err := v.AsInt() // routed STRING → DOUBLE → INTEGER
//
// Routes are resolved lazily per (from, to) pair, cached, and re-resolved
// whenever a new edge lands anywhere in the graph. When several paths
// exist the minimum-total-cost one wins; a route's reliability is its
// single worst step.
//
// # Extensibility
//
// Independent modules contribute converters by implementing ValueParser and
// calling Registry.RegisterParser. A parser declares its supported edges up
// front so the graph can be assembled without invoking any transform.
//
// Registration is expected during single-threaded startup; a writer lock
// guards graph mutation and route-cache eviction, so late registration from
// concurrent modules is safe but will evict cached routes.
package dtype
