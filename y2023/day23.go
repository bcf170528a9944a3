package main

import (
	"log"

	aoc "github.com/maisem/aoc2023"
)

var slopes = map[byte]aoc.Direction{
	'^': aoc.Up,
	'>': aoc.Right,
	'v': aoc.Down,
	'<': aoc.Left,
}

func isForest(b byte) bool { return b == '#' }

// trailEnds returns the only open cells of the top and bottom rows.
func trailEnds(g aoc.Grid[byte]) (start, end aoc.Pt) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		if g[0][x] == '.' {
			start = aoc.Pt{X: x, Y: 0}
		}
		if g[size.Y-1][x] == '.' {
			end = aoc.Pt{X: x, Y: size.Y - 1}
		}
	}
	return start, end
}

// longestHike returns the most steps any hike from p to end can take
// without stepping on a cell twice or walking up a slope. It reports false
// if end cannot be reached.
func longestHike(g aoc.Grid[byte], p, end aoc.Pt, visited map[aoc.Pt]bool) (int, bool) {
	if p == end {
		return 0, true
	}
	visited[p] = true
	defer delete(visited, p)

	best := -1
	for _, d := range aoc.Directions {
		if sd, ok := slopes[g.At(p)]; ok && sd != d {
			continue
		}
		n := p.Step(d)
		v, ok := g.AtOk(n)
		if !ok || isForest(v) || visited[n] {
			continue
		}
		if got, ok := longestHike(g, n, end, visited); ok {
			best = max(best, got+1)
		}
	}
	return best, best >= 0
}

/*
want=94

#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#
*/
func (s *solver) D23p1() any {
	g := s.grid()
	start, end := trailEnds(g)
	n, ok := longestHike(g, start, end, map[aoc.Pt]bool{})
	if !ok {
		log.Fatal("no hike reaches the end")
	}
	return n
}

// want=154
func (s *solver) D23p2() any {
	g := s.grid()
	start, end := trailEnds(g)
	trails := g.ToGraph(start, false, isForest)
	s.Debugf("%d junctions", len(trails.Nodes))
	n, ok := trails.LongestPath(start, end)
	if !ok {
		log.Fatal("no hike reaches the end")
	}
	return n
}
