package main

import aoc "github.com/maisem/aoc2023"

/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
*/
func (s *solver) D16p1() any {
	return aoc.Energize(s.grid(), aoc.Path{Pt: aoc.Pt{}, Dir: aoc.Right})
}

// want=51
func (s *solver) D16p2() any {
	return aoc.MaxEnergized(s.grid())
}
