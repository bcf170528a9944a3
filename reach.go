package aoc

import "github.com/zyedidia/generic/mapset"

// Distances returns the number of orthogonal steps from start to every cell
// reachable through cells for which passable returns true. The start cell is
// always included.
func (g Grid[T]) Distances(start Pt, passable func(T) bool) map[Pt]int {
	dist := map[Pt]int{start: 0}
	q := NewQueue(start)
	q.While(func(p Pt) bool {
		d := dist[p]
		p.ForImmediateNeighbors(func(n Pt) bool {
			if _, seen := dist[n]; seen {
				return true
			}
			if v, ok := g.AtOk(n); ok && passable(v) {
				dist[n] = d + 1
				q.Push(n)
			}
			return true
		})
		return true
	})
	return dist
}

// Frontier returns the cells that can be reached from start in exactly steps
// moves, where a move may revisit cells. Each step's frontier is the set of
// distinct passable neighbors of the previous one.
func (g Grid[T]) Frontier(start Pt, steps int, passable func(T) bool) mapset.Set[Pt] {
	cur := mapset.New[Pt]()
	cur.Put(start)
	for i := 0; i < steps; i++ {
		next := mapset.New[Pt]()
		cur.Each(func(p Pt) {
			p.ForImmediateNeighbors(func(n Pt) bool {
				if v, ok := g.AtOk(n); ok && passable(v) {
					next.Put(n)
				}
				return true
			})
		})
		cur = next
	}
	return cur
}

// CountReachable returns the number of cells that can be reached from start
// in exactly steps moves. A cell at distance d qualifies when d <= steps and
// d has the same parity as steps, since any walk can waste moves in pairs.
func (g Grid[T]) CountReachable(start Pt, steps int, passable func(T) bool) int {
	return countParity(g.Distances(start, passable), steps)
}

// CountReachableTiled is like CountReachable but on the infinite plane tiled
// with copies of g. Points keep their unwrapped coordinates, so the same cell
// in two different copies is counted twice; see TileOf.
func (g Grid[T]) CountReachableTiled(start Pt, steps int, passable func(T) bool) int {
	return countParity(g.TiledDistances(start, steps, passable), steps)
}

// TiledDistances is like Distances on the infinite tiling of g, stopping at
// distance limit.
func (g Grid[T]) TiledDistances(start Pt, limit int, passable func(T) bool) map[Pt]int {
	dist := map[Pt]int{start: 0}
	q := NewQueue(start)
	q.While(func(p Pt) bool {
		d := dist[p]
		if d >= limit {
			return true
		}
		p.ForImmediateNeighbors(func(n Pt) bool {
			if _, seen := dist[n]; seen {
				return true
			}
			if passable(g.AtWrapped(n)) {
				dist[n] = d + 1
				q.Push(n)
			}
			return true
		})
		return true
	})
	return dist
}

func countParity(dist map[Pt]int, steps int) int {
	n := 0
	for _, d := range dist {
		if d <= steps && d%2 == steps%2 {
			n++
		}
	}
	return n
}
