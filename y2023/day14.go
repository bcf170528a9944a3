package main

import (
	aoc "github.com/maisem/aoc2023"
	"tailscale.com/util/deephash"
)

// tiltNorth rolls every round rock ('O') up until it hits a cube rock ('#'),
// another round rock or the edge.
func tiltNorth(g aoc.Grid[byte]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		free := 0
		for y := 0; y < size.Y; y++ {
			switch g[y][x] {
			case '#':
				free = y + 1
			case 'O':
				g[y][x] = '.'
				g[free][x] = 'O'
				free++
			}
		}
	}
}

// spin tilts north, west, south and east in turn. The grid comes back the
// same way up.
func spin(g aoc.Grid[byte]) aoc.Grid[byte] {
	for i := 0; i < 4; i++ {
		tiltNorth(g)
		g = g.RotateClockwise()
	}
	return g
}

func northLoad(g aoc.Grid[byte]) int {
	load := 0
	for y, row := range g {
		for _, c := range row {
			if c == 'O' {
				load += len(g) - y
			}
		}
	}
	return load
}

/*
want=136

O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
*/
func (s *solver) D14p1() any {
	g := s.grid()
	tiltNorth(g)
	return northLoad(g)
}

// want=64
func (s *solver) D14p2() any {
	const cycles = 1_000_000_000
	g := s.grid()
	seen := map[deephash.Sum]int{}
	for i := 0; i < cycles; i++ {
		h := g.Hash()
		if first, ok := seen[h]; ok {
			s.Debugf("cycle of %d after %d spins", i-first, first)
			for left := (cycles - i) % (i - first); left > 0; left-- {
				g = spin(g)
			}
			break
		}
		seen[h] = i
		g = spin(g)
	}
	return northLoad(g)
}
