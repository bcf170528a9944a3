package aoc

import (
	"fmt"
	"slices"
)

// RunLimits restricts how far a search may travel in a straight line: at
// least Min steps before turning (or stopping at the goal) and at most Max
// steps before it must turn.
type RunLimits struct {
	Min, Max int
}

var (
	// Crucible moves at most three blocks before turning.
	Crucible = RunLimits{Min: 1, Max: 3}
	// UltraCrucible moves four to ten blocks before turning.
	UltraCrucible = RunLimits{Min: 4, Max: 10}
)

// Route is a cheapest path found by ShortestPath.
type Route struct {
	Cost int
	Path []Pt // from start to goal, both included
}

// runState is what the cost of the rest of a route depends on: where we are,
// which way we are heading and how many steps we have taken that way.
type runState struct {
	Pt  Pt
	Dir Direction
	Run int
}

type searchNode struct {
	runState
	cost int
	prev *searchNode
}

// ShortestPath returns the cheapest route from start to goal through g, where
// entering a cell costs its value. Routes never reverse and obey lim. It
// reports false if no route exists.
//
// The search is A* ordered by cost plus the manhattan distance to the goal
// scaled by the cheapest cell, which keeps the estimate consistent even when
// cells cost nothing.
func ShortestPath(g Grid[int], start, goal Pt, lim RunLimits) (Route, bool) {
	if lim.Max < 1 || lim.Min > lim.Max {
		panic(fmt.Sprintf("bad run limits %+v", lim))
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		return Route{}, false
	}
	if start == goal {
		return Route{Path: []Pt{start}}, true
	}
	cheapest := minCell(g)
	estimate := func(p Pt) int {
		return p.MDist(goal) * cheapest
	}

	pq := MinQueue[*searchNode]()
	for _, d := range Directions {
		n := &searchNode{runState: runState{Pt: start, Dir: d}}
		pq.Push(n, estimate(start))
	}
	best := map[runState]int{}
	done := map[runState]bool{}
	for pq.Len() > 0 {
		n := pq.Pop().V
		if done[n.runState] {
			continue
		}
		done[n.runState] = true
		if n.Pt == goal && n.Run >= lim.Min {
			return n.route(), true
		}
		for _, d := range Directions {
			var run int
			switch {
			case d == n.Dir.Opposite():
				continue
			case d == n.Dir:
				if n.Run >= lim.Max {
					continue
				}
				run = n.Run + 1
			default:
				if n.Run < lim.Min {
					continue
				}
				run = 1
			}
			np := n.Pt.Step(d)
			c, ok := g.AtOk(np)
			if !ok {
				continue
			}
			s := runState{Pt: np, Dir: d, Run: run}
			if done[s] {
				continue
			}
			cost := n.cost + c
			if b, ok := best[s]; ok && b <= cost {
				continue
			}
			best[s] = cost
			pq.Push(&searchNode{runState: s, cost: cost, prev: n}, cost+estimate(np))
		}
	}
	return Route{}, false
}

func (n *searchNode) route() Route {
	r := Route{Cost: n.cost}
	for ; n != nil; n = n.prev {
		r.Path = append(r.Path, n.Pt)
	}
	slices.Reverse(r.Path)
	return r
}

// minCell returns the smallest value in g. It panics on negative values.
func minCell(g Grid[int]) int {
	low := -1
	for y, row := range g {
		for x, v := range row {
			if v < 0 {
				panic(fmt.Sprintf("negative cost %d at %v", v, Pt{x, y}))
			}
			if low == -1 || v < low {
				low = v
			}
		}
	}
	return max(low, 0)
}
