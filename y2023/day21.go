package main

import (
	"log"

	aoc "github.com/maisem/aoc2023"
)

func isPlot(b byte) bool { return b != '#' }

func (s *solver) garden() (aoc.Grid[byte], aoc.Pt) {
	g := s.grid()
	start, ok := g.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		log.Fatal("no start")
	}
	return g, start
}

/*
want=16

...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
*/
func (s *solver) D21p1() any {
	steps := 64
	if s.SampleMode {
		steps = 6
	}
	g, start := s.garden()
	return g.CountReachable(start, steps, isPlot)
}

// want=6536
func (s *solver) D21p2() any {
	g, start := s.garden()
	if s.SampleMode {
		return g.CountReachableTiled(start, 100, isPlot)
	}
	// The real garden is square with the start in the middle and clear
	// lanes out of it, so the count grows quadratically in the number of
	// whole gardens crossed.
	const steps = 26501365
	size := g.Size().X
	rem := steps % size
	var xs []int64
	for i := 0; i < 3; i++ {
		n := g.CountReachableTiled(start, rem+i*size, isPlot)
		s.Debug("after", rem+i*size, "steps:", n)
		xs = append(xs, int64(n))
	}
	return aoc.ExtrapolateAt(xs, int64(steps/size))
}
