package dtype

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// costUnreachable is the sentinel cost for type pairs with no route.
const costUnreachable = -1

// edge is a registered single-step conversion: the parser that executes it
// and the reliability it was declared at.
type edge struct {
	parser      ValueParser
	reliability Reliability
}

// routeStep pairs an edge with its endpoints for sequential execution.
type routeStep struct {
	conv   Conversion
	parser ValueParser
}

// route is a resolved multi-hop conversion path. Cost is the sum of step
// costs; reliability is the single worst step.
type route struct {
	steps []routeStep
}

func (r *route) cost() int {
	total := 0
	for _, s := range r.steps {
		total += s.conv.Reliability.Cost()
	}
	return total
}

func (r *route) reliability() Reliability {
	worst := Perfect
	for _, s := range r.steps {
		worst = WorstReliability(worst, s.conv.Reliability)
		if worst == Dangerous {
			break
		}
	}
	return worst
}

type routeKey struct {
	from, to uuid.UUID
}

type cachedRoute struct {
	r  *route
	ok bool
}

// conversionGraph is a directed weighted graph of DataTypes connected by
// parser-backed edges. Routes are computed lazily per (from, to) query and
// cached; any successful edge addition clears the whole cache, since a
// single new edge can change any downstream optimum.
//
// Edge mutation is serialized by the owning Registry's writer lock. The
// route cache has its own mutex because cache fills happen on the read
// path.
type conversionGraph struct {
	nodes map[uuid.UUID]*DataType
	edges map[uuid.UUID]map[uuid.UUID]edge

	cacheMu sync.Mutex
	cache   map[routeKey]cachedRoute
}

func newConversionGraph() *conversionGraph {
	return &conversionGraph{
		nodes: make(map[uuid.UUID]*DataType),
		edges: make(map[uuid.UUID]map[uuid.UUID]edge),
		cache: make(map[routeKey]cachedRoute),
	}
}

// addConversion registers a single-step edge, creating nodes on demand.
// An existing edge for the same ordered pair is replaced only if the new
// one is strictly more reliable. Returns whether the edge set changed.
func (g *conversionGraph) addConversion(from, to *DataType, parser ValueParser, reliability Reliability) bool {
	g.nodes[from.ID()] = from
	g.nodes[to.ID()] = to

	out, ok := g.edges[from.ID()]
	if !ok {
		out = make(map[uuid.UUID]edge)
		g.edges[from.ID()] = out
	}

	if existing, ok := out[to.ID()]; ok && !reliability.BetterThan(existing.reliability) {
		return false
	}
	out[to.ID()] = edge{parser: parser, reliability: reliability}

	g.cacheMu.Lock()
	g.cache = make(map[routeKey]cachedRoute)
	g.cacheMu.Unlock()
	return true
}

// findRoute returns the minimum-cost route between two types, or false when
// the target is unreachable. Identity yields an empty route. Results,
// including negative ones, are cached until the next edge addition.
func (g *conversionGraph) findRoute(from, to *DataType) (*route, bool) {
	if from == to {
		return &route{}, true
	}

	key := routeKey{from: from.ID(), to: to.ID()}
	g.cacheMu.Lock()
	if c, ok := g.cache[key]; ok {
		g.cacheMu.Unlock()
		return c.r, c.ok
	}
	g.cacheMu.Unlock()

	r, ok := g.shortestPath(from, to)

	g.cacheMu.Lock()
	g.cache[key] = cachedRoute{r: r, ok: ok}
	g.cacheMu.Unlock()
	return r, ok
}

// shortestPath runs Dijkstra over edge costs. The edge set may contain
// cycles (e.g. INTEGER↔NUMBER↔DOUBLE); memoizing per-node shortest
// distances avoids enumerating every simple path in graphs with many
// parallel routes.
//
// Tie-break among equal-cost paths: fewer hops wins; remaining ties are
// resolved by scanning nodes in lexicographic type-name order, which makes
// the chosen path deterministic across runs.
func (g *conversionGraph) shortestPath(from, to *DataType) (*route, bool) {
	if _, ok := g.nodes[from.ID()]; !ok {
		return nil, false
	}
	if _, ok := g.nodes[to.ID()]; !ok {
		return nil, false
	}

	dist := map[uuid.UUID]int{from.ID(): 0}
	hops := map[uuid.UUID]int{from.ID(): 0}
	prev := map[uuid.UUID]uuid.UUID{}
	visited := map[uuid.UUID]bool{}

	for {
		u, ok := g.nextUnvisited(dist, hops, visited)
		if !ok {
			break
		}
		if u == to.ID() {
			break
		}
		visited[u] = true

		for _, v := range g.sortedNeighbors(u) {
			if visited[v] {
				continue
			}
			e := g.edges[u][v]
			nd := dist[u] + e.reliability.Cost()
			nh := hops[u] + 1

			cur, seen := dist[v]
			if !seen || nd < cur || (nd == cur && nh < hops[v]) {
				dist[v] = nd
				hops[v] = nh
				prev[v] = u
			}
		}
	}

	if _, ok := dist[to.ID()]; !ok {
		return nil, false
	}

	// Walk predecessors back to the source and emit steps in order.
	var ids []uuid.UUID
	for at := to.ID(); at != from.ID(); at = prev[at] {
		ids = append(ids, at)
	}
	ids = append(ids, from.ID())

	r := &route{}
	for i := len(ids) - 1; i > 0; i-- {
		src, dst := g.nodes[ids[i]], g.nodes[ids[i-1]]
		e := g.edges[src.ID()][dst.ID()]
		r.steps = append(r.steps, routeStep{
			conv:   NewConversion(src, dst, e.reliability),
			parser: e.parser,
		})
	}
	return r, true
}

// nextUnvisited picks the unvisited frontier node with the smallest
// (distance, hops, type name) triple.
func (g *conversionGraph) nextUnvisited(dist, hops map[uuid.UUID]int, visited map[uuid.UUID]bool) (uuid.UUID, bool) {
	var best uuid.UUID
	found := false
	for id, d := range dist {
		if visited[id] {
			continue
		}
		if !found {
			best, found = id, true
			continue
		}
		bd := dist[best]
		switch {
		case d < bd:
			best = id
		case d == bd && hops[id] < hops[best]:
			best = id
		case d == bd && hops[id] == hops[best] && g.nodes[id].Name() < g.nodes[best].Name():
			best = id
		}
	}
	return best, found
}

// sortedNeighbors returns the out-neighbors of a node ordered by type name
// so relaxation order, and therefore tie-breaking, is deterministic.
func (g *conversionGraph) sortedNeighbors(u uuid.UUID) []uuid.UUID {
	out := g.edges[u]
	ids := make([]uuid.UUID, 0, len(out))
	for v := range out {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool {
		return g.nodes[ids[i]].Name() < g.nodes[ids[j]].Name()
	})
	return ids
}

// conversionCost returns 0 at identity, costUnreachable when no route
// exists, and the accumulated route cost otherwise.
func (g *conversionGraph) conversionCost(from, to *DataType) int {
	r, ok := g.findRoute(from, to)
	if !ok {
		return costUnreachable
	}
	return r.cost()
}

// conversionReliability returns Perfect at identity and the route's weakest
// step otherwise.
func (g *conversionGraph) conversionReliability(from, to *DataType) (Reliability, bool) {
	r, ok := g.findRoute(from, to)
	if !ok {
		return 0, false
	}
	return r.reliability(), true
}
