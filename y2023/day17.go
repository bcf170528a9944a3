package main

import (
	"log"

	aoc "github.com/maisem/aoc2023"
)

func (s *solver) heatLoss(lim aoc.RunLimits) int {
	g := aoc.MustGet(aoc.ParseGridFunc(s.Lines(), aoc.DigitCell))
	goal := g.Size().Add(aoc.Pt{X: -1, Y: -1})
	r, ok := aoc.ShortestPath(g, aoc.Pt{}, goal, lim)
	if !ok {
		log.Fatalf("no route to %v", goal)
	}
	s.Debugf("route %v", r.Path)
	return r.Cost
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s *solver) D17p1() any {
	return s.heatLoss(aoc.Crucible)
}

// want=94
func (s *solver) D17p2() any {
	return s.heatLoss(aoc.UltraCrucible)
}
