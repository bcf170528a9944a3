package main

import (
	"log"

	aoc "github.com/maisem/aoc2023"
)

func (s *solver) pipeLoop() (aoc.Grid[aoc.Pipe], aoc.Loop) {
	g := aoc.MustGet(aoc.ParseGridFunc(s.Lines(), aoc.ParsePipe))
	start, ok := g.Find(func(p aoc.Pipe) bool { return p == aoc.PipeStart })
	if !ok {
		log.Fatal("no start tile")
	}
	return g, aoc.MustGet(aoc.FindLoop(g, start))
}

/*
want=8

..F7.
.FJ|.
SJ.L7
|F--J
LJ...
*/
func (s *solver) D10p1() any {
	_, l := s.pipeLoop()
	return len(l.Pts) / 2
}

/*
want=4

...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
*/
func (s *solver) D10p2() any {
	g, l := s.pipeLoop()
	n := aoc.Enclosed(g, l)
	s.Debugf("enclosed %d, pick %d", n, aoc.PolygonInteriorPoints(l.Polygon()))
	return n
}
