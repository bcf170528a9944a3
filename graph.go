package aoc

import (
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/maps"
)

// Graph is an undirected graph with integer edge weights. Edges[a][b] and
// Edges[b][a] always hold the same weight, and there is at most one edge
// between two nodes.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

// ReachableNodes returns the nodes connected to a, a included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddEdge sets the weight of the edge between a and b, adding the nodes as
// needed.
func (g *Graph[K]) AddEdge(a, b K, weight int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = weight
	g.Edges[b][a] = weight
	g.Nodes[a] = true
	g.Nodes[b] = true
}

// LongestPath returns the length of the longest simple path from start to
// end. It reports false if end cannot be reached.
func (g Graph[K]) LongestPath(start, end K) (rp int, ok bool) {
	return g.longestPathHelper(start, end, make(map[K]bool))
}

func (g Graph[K]) longestPathHelper(start, end K, visited map[K]bool) (rp int, ok bool) {
	if start == end {
		return 0, true
	}

	visited[start] = true
	defer func() {
		visited[start] = false
	}()
	best := -1
	for k, v := range g.Edges[start] {
		if visited[k] {
			continue
		}
		got, ok := g.longestPathHelper(k, end, visited)
		if ok && got+v > best {
			best = got + v
		}
	}
	if best != -1 {
		return best, true
	}
	return 0, false
}

// Collapse shrinks the graph by replacing every node with exactly two
// neighbors by a single edge between those neighbors, weighted by the sum of
// the two edges it replaces. If the neighbors are already joined, the heavier
// edge is kept, as LongestPath wants. Nodes in keep are never removed.
func (g *Graph[K]) Collapse(keep ...K) {
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if len(e) != 2 || slices.Contains(keep, k1) {
				continue
			}
			var ks [2]K
			var ds [2]int
			i := 0
			for k, v := range e {
				ks[i], ds[i] = k, v
				i++
			}
			d := ds[0] + ds[1]
			if old, ok := g.Edges[ks[0]][ks[1]]; ok && old > d {
				d = old
			}
			g.RemoveEdge(ks[0], k1)
			g.RemoveEdge(ks[1], k1)
			delete(g.Edges, k1)
			delete(g.Nodes, k1)
			g.AddEdge(ks[0], ks[1], d)
			trimmed = true
		}
		if !trimmed {
			break
		}
	}
}

type Edge[T comparable] struct {
	A, B T
}

// Cut is a partition of a graph's nodes into two non-empty sides.
type Cut[K comparable] struct {
	A, B   mapset.Set[K]
	Weight int // total weight of the edges between A and B
}

// Edges returns the edges of g that cross the cut.
func (c Cut[K]) Edges(g *Graph[K]) []Edge[K] {
	var out []Edge[K]
	c.A.Each(func(a K) {
		for b := range g.Edges[a] {
			if c.B.Has(b) {
				out = append(out, Edge[K]{a, b})
			}
		}
	})
	return out
}

// MinCut calculates the minimum cut of a graph using the Stoer–Wagner
// algorithm. It reports false if the graph has fewer than two nodes, which
// cannot be cut.
//
// Each phase merges the last two nodes it ordered, s and t, into s. members
// tracks which original nodes every surviving node stands for, so that the
// side of the best cut is known without replaying the merges.
func (g *Graph[K]) MinCut() (Cut[K], bool) {
	if len(g.Nodes) < 2 {
		return Cut[K]{}, false
	}
	var (
		g2      = g.Clone() // copy of graph to mutate
		members = make(map[K][]K, len(g.Nodes))

		minCut = math.MaxInt
		side   []K
	)
	for k := range g.Nodes {
		members[k] = []K{k}
	}
	for len(g2.Nodes) > 1 {
		s, t, w := g2.minCutPhase()
		if w < minCut {
			minCut = w
			side = append([]K(nil), members[t]...)
		}
		members[s] = append(members[s], members[t]...)
		delete(members, t)
		g2.merge(s, t)
	}

	cut := Cut[K]{
		A:      mapset.New[K](),
		B:      mapset.New[K](),
		Weight: minCut,
	}
	for _, k := range side {
		cut.A.Put(k)
	}
	for k := range g.Nodes {
		if !cut.A.Has(k) {
			cut.B.Put(k)
		}
	}
	return cut, true
}

// minCutPhase orders the nodes by maximum adjacency: starting anywhere, it
// repeatedly takes the node most heavily connected to those already taken.
// It returns the last two nodes taken and the weight connecting t to all the
// others, which is the cut of the phase.
func (g *Graph[T]) minCutPhase() (s, t T, wOut int) {
	pq := MaxQueue[T]()
	pris := make(map[T]*Item[T], len(g.Nodes))
	for k := range g.Nodes {
		pris[k] = pq.Push(k, 0)
	}

	for pq.Len() > 0 {
		next := pq.Pop()

		for k, v := range g.Edges[next.V] {
			p := pris[k]
			if !p.Queued() {
				continue
			}
			p.P += v
			pq.Update(p)
		}
		s, t = t, next.V
		wOut = next.P
	}
	return
}

// merge folds t into s: edges to t move to s, adding weights where s already
// had an edge, and the s–t edge disappears.
func (g *Graph[T]) merge(s, t T) {
	for k, tvk := range g.Edges[t] {
		g.RemoveEdge(t, k)
		if k == s {
			continue
		}
		g.AddEdge(s, k, g.Edges[s][k]+tvk)
	}
	delete(g.Nodes, t)
	delete(g.Edges, t)
}
