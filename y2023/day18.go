package main

import (
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

type digStep struct {
	dir aoc.Direction
	n   int
}

var digDirs = map[string]aoc.Direction{
	"U": aoc.Up,
	"R": aoc.Right,
	"D": aoc.Down,
	"L": aoc.Left,
}

// parseDigStep parses a line like "R 6 (#70c710)". With fromColor the step
// is read from the color instead: five hex digits of distance, then one digit
// of direction counting R, D, L, U from 0.
func parseDigStep(line string, fromColor bool) (digStep, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return digStep{}, fmt.Errorf("bad dig step %q", line)
	}
	if !fromColor {
		d, ok := digDirs[f[0]]
		if !ok {
			return digStep{}, fmt.Errorf("bad direction in %q", line)
		}
		n, err := strconv.Atoi(f[1])
		if err != nil {
			return digStep{}, err
		}
		return digStep{d, n}, nil
	}
	hex := strings.TrimSuffix(strings.TrimPrefix(f[2], "(#"), ")")
	if len(hex) != 6 {
		return digStep{}, fmt.Errorf("bad color in %q", line)
	}
	n, err := strconv.ParseInt(hex[:5], 16, 64)
	if err != nil {
		return digStep{}, err
	}
	d := strings.IndexByte("0123", hex[5])
	if d < 0 {
		return digStep{}, fmt.Errorf("bad color direction in %q", line)
	}
	return digStep{[]aoc.Direction{aoc.Right, aoc.Down, aoc.Left, aoc.Up}[d], int(n)}, nil
}

// lagoonSize returns the number of cubic meters dug out by following steps
// from the origin and then digging out the interior.
func lagoonSize(steps []digStep) int {
	pts := []aoc.Pt{{}}
	for _, st := range steps {
		unit := aoc.Pt{}.Step(st.dir)
		pts = append(pts, pts[len(pts)-1].Add(aoc.Pt{X: unit.X * st.n, Y: unit.Y * st.n}))
	}
	return aoc.PolygonBoundedPoints(pts)
}

func (s *solver) digPlan(fromColor bool) []digStep {
	var steps []digStep
	s.ForLines(func(line string) {
		steps = append(steps, aoc.MustGet(parseDigStep(line, fromColor)))
	})
	return steps
}

/*
want=62

R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
*/
func (s *solver) D18p1() any {
	return lagoonSize(s.digPlan(false))
}

// want=952408144115
func (s *solver) D18p2() any {
	return lagoonSize(s.digPlan(true))
}
