package dtype

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/typeflow/errors"
	"github.com/teranos/typeflow/logger"
)

// Registry composes the type hierarchy, the conversion graph, and the
// bootstrap parser into a single access point. It is explicitly constructed
// and threaded by the caller; Default returns the canonical per-process
// instance.
//
// A writer lock guards hierarchy and graph mutation (and, through those,
// route-cache eviction). Queries and conversions take the read lock and are
// safe from any number of goroutines once registration has settled.
type Registry struct {
	mu      sync.RWMutex
	types   map[uuid.UUID]*DataType
	byName  map[string]*DataType
	parents map[uuid.UUID]*DataType
	graph   *conversionGraph

	log *zap.SugaredLogger
}

// NewRegistry creates an empty registry with no types and no conversions.
func NewRegistry() *Registry {
	return &Registry{
		types:   make(map[uuid.UUID]*DataType),
		byName:  make(map[string]*DataType),
		parents: make(map[uuid.UUID]*DataType),
		graph:   newConversionGraph(),
		log:     logger.WithComponent("registry"),
	}
}

// NewBuiltinRegistry creates a registry with the built-in types, the
// numeric hierarchy, and the bootstrap parser registered.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, t := range BuiltinTypes() {
		r.Register(t, nil)
	}
	r.Register(Integer, Number)
	r.Register(Long, Number)
	r.Register(Double, Number)
	if err := r.RegisterParser(newBootstrapParser()); err != nil {
		// The bootstrap edge table is static; failing to install it is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the canonical per-process registry, built on first use.
// Applications that want isolated type universes construct their own via
// NewRegistry or NewBuiltinRegistry.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewBuiltinRegistry()
	})
	return defaultRegistry
}

// Register adds a type, optionally with a parent, to the hierarchy.
// Registration is idempotent: re-registering an equal node replaces it,
// including its parent link. A non-nil unregistered parent is registered
// on the fly as a root.
func (r *Registry) Register(t *DataType, parent *DataType) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if parent != nil {
		if _, ok := r.types[parent.ID()]; !ok {
			r.types[parent.ID()] = parent
			r.byName[parent.Name()] = parent
		}
	}

	r.types[t.ID()] = t
	r.byName[t.Name()] = t
	if parent != nil {
		r.parents[t.ID()] = parent
	} else {
		delete(r.parents, t.ID())
	}
	r.log.Debugw("type registered", "type", t.Name(), "parent", parent)
}

// LookupType resolves a registered type by display name. When several
// registered types share a name the most recently registered wins.
func (r *Registry) LookupType(name string) (*DataType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[name]
	return t, ok
}

// IsRegistered reports whether the type has been registered.
func (r *Registry) IsRegistered(t *DataType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[t.ID()]
	return ok
}

// IsSubtypeOf reports whether t equals other or reaches it by walking the
// parent chain. Using an unregistered t is a usage error: it propagates,
// never defaults to false, since defaulting would corrupt reachability
// answers.
func (r *Registry) IsSubtypeOf(t, other *DataType) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.types[t.ID()]; !ok {
		return false, errors.NewTypeNotRegisteredError(t.Name())
	}
	for cur := t; cur != nil; cur = r.parents[cur.ID()] {
		if cur == other {
			return true, nil
		}
	}
	return false, nil
}

// RegisterParser adds every edge the parser declares to the conversion
// graph. An edge for an already-covered ordered pair replaces the existing
// one only if strictly more reliable; rejected edges are not an error.
func (r *Registry) RegisterParser(p ValueParser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range p.Conversions() {
		if c.Source == nil || c.Target == nil {
			return errors.Newf("parser declared conversion with nil endpoint: %v", c)
		}
		if r.graph.addConversion(c.Source, c.Target, p, c.Reliability) {
			r.log.Debugw("conversion registered",
				"from", c.Source.Name(), "to", c.Target.Name(), "reliability", c.Reliability.String())
		}
	}
	return nil
}

// Convert transforms payload from one type to another along the optimal
// registered route. Identity conversions and absent (nil) payloads pass
// through untouched. Returns *NoRouteError when the target is unreachable
// and *ParseError when a step rejects the payload.
func (r *Registry) Convert(payload any, from, to *DataType) (any, error) {
	if from == to {
		return payload, nil
	}
	if payload == nil {
		return nil, nil
	}

	r.mu.RLock()
	rt, ok := r.graph.findRoute(from, to)
	r.mu.RUnlock()
	if !ok {
		return nil, &NoRouteError{From: from, To: to}
	}

	cur := payload
	for _, step := range rt.steps {
		next, err := step.parser.Parse(cur, step.conv.Source, step.conv.Target)
		if err != nil {
			return nil, errors.Wrapf(err, "converting %s to %s", from.Name(), to.Name())
		}
		cur = next
	}
	return cur, nil
}

// ConvertToAny converts payload to the cheapest reachable candidate target,
// breaking cost ties by encounter order, and returns a typed Value.
func (r *Registry) ConvertToAny(payload any, from *DataType, candidates []*DataType) (Value, error) {
	var best *DataType
	bestCost := costUnreachable

	r.mu.RLock()
	for _, cand := range candidates {
		c := r.graph.conversionCost(from, cand)
		if c == costUnreachable {
			continue
		}
		if best == nil || c < bestCost {
			best, bestCost = cand, c
		}
	}
	r.mu.RUnlock()

	if best == nil {
		return Value{}, errors.Wrapf(errors.ErrNoRoute, "from %s to any of %d candidates", from.Name(), len(candidates))
	}
	converted, err := r.Convert(payload, from, best)
	if err != nil {
		return Value{}, err
	}
	return r.NewValue(best, converted), nil
}

// ConversionIsPossible reports whether any route exists between the types.
func (r *Registry) ConversionIsPossible(from, to *DataType) bool {
	return r.ConversionCost(from, to) != costUnreachable
}

// ConversionCost returns 0 at identity, -1 when no route exists, and the
// accumulated route cost otherwise.
func (r *Registry) ConversionCost(from, to *DataType) int {
	if from == to {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.graph.conversionCost(from, to)
}

// ConversionReliability returns Perfect at identity and the weakest step of
// the optimal route otherwise. Unreachable pairs yield *NoRouteError.
func (r *Registry) ConversionReliability(from, to *DataType) (Reliability, error) {
	if from == to {
		return Perfect, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rel, ok := r.graph.conversionReliability(from, to)
	if !ok {
		return 0, &NoRouteError{From: from, To: to}
	}
	return rel, nil
}
