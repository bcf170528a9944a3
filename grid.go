package aoc

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(o Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + o.X, p.Y + o.Y}
}

// Step returns the point one unit away from p in direction d.
// Up is towards smaller Y.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	default:
		panic(fmt.Sprintf("bad direction %d", d))
	}
	return p
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for _, d := range Directions {
		if !f(p.Step(d)) {
			return
		}
	}
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// Wrap maps p onto a grid of the given size, treating the grid as repeating
// forever in every direction.
func Wrap(p, size Pt) Pt {
	_, local := TileOf(p, size)
	return local
}

// TileOf splits p into the repeated copy of a size-d grid it falls in and its
// position within that copy.
func TileOf(p, size Pt) (tile, local Pt) {
	tile = Pt{floorDiv(p.X, size.X), floorDiv(p.Y, size.Y)}
	local = Pt{p.X - tile.X*size.X, p.Y - tile.Y*size.Y}
	return tile, local
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Grid is a rectangular grid indexed as g[y][x].
type Grid[T any] [][]T

// MalformedGridError is returned when input lines do not describe a
// rectangular grid.
type MalformedGridError struct {
	Row int // offending row; -1 when there are no rows at all
	Col int // offending column, or -1 when the whole row is at fault
	Msg string
}

func (e *MalformedGridError) Error() string {
	switch {
	case e.Row < 0:
		return "malformed grid: " + e.Msg
	case e.Col < 0:
		return fmt.Sprintf("malformed grid: row %d: %s", e.Row, e.Msg)
	}
	return fmt.Sprintf("malformed grid: row %d col %d: %s", e.Row, e.Col, e.Msg)
}

// ParseGrid returns the lines as a grid of bytes.
func ParseGrid(lines []string) (Grid[byte], error) {
	return ParseGridFunc(lines, func(b byte) (byte, error) { return b, nil })
}

// ParseGridFunc converts every byte of lines with cell. It returns a
// *MalformedGridError if the lines are empty or not all the same length, or if
// cell fails.
func ParseGridFunc[T any](lines []string, cell func(byte) (T, error)) (Grid[T], error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, &MalformedGridError{Row: -1, Col: -1, Msg: "no cells"}
	}
	w := len(lines[0])
	g := MakeGrid[T](w, len(lines))
	for y, line := range lines {
		if len(line) != w {
			return nil, &MalformedGridError{Row: y, Col: -1, Msg: fmt.Sprintf("width %d, want %d", len(line), w)}
		}
		for x := 0; x < w; x++ {
			v, err := cell(line[x])
			if err != nil {
				return nil, &MalformedGridError{Row: y, Col: x, Msg: err.Error()}
			}
			g[y][x] = v
		}
	}
	return g, nil
}

// DigitCell parses a single decimal digit cell.
func DigitCell(b byte) (int, error) {
	if b < '0' || b > '9' {
		return 0, fmt.Errorf("not a digit: %q", b)
	}
	return int(b - '0'), nil
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// AtWrapped returns the cell at p as if g repeated forever.
func (g Grid[T]) AtWrapped(p Pt) T {
	return g.At(Wrap(p, g.Size()))
}

func (g Grid[T]) InBounds(p Pt) bool {
	return len(g) > 0 && p.X >= 0 && p.Y >= 0 && p.X < len(g[0]) && p.Y < len(g)
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// Find returns the first point, in reading order, whose cell matches.
func (g Grid[T]) Find(match func(T) bool) (Pt, bool) {
	for y, row := range g {
		for x, v := range row {
			if match(v) {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

// Hash returns a hash of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

// RotateClockwiseInto writes g rotated a quarter turn clockwise into out,
// which must be size.Y wide and size.X tall.
func (g Grid[T]) RotateClockwiseInto(out Grid[T]) {
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[x][size.Y-1-y] = g[y][x]
		}
	}
}

func (g Grid[T]) RotateClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.RotateClockwiseInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// EdgePaths returns every way of entering the grid from outside: each border
// cell paired with the direction pointing into the grid.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

// ToGraph converts the cells reachable from start into a graph with unit
// edges, then collapses corridors, keeping start. If allowDiagonals is true,
// diagonal neighbors are included. Cells for which disallowed returns true are not
// part of the graph.
func (grid Grid[T]) ToGraph(start Pt, allowDiagonals bool, disallowed func(T) bool) Graph[Pt] {
	var g Graph[Pt]
	g.Nodes = make(map[Pt]bool)
	g.Edges = make(map[Pt]map[Pt]int)

	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}

	visited := make(map[Pt]bool)
	q := NewQueue[Pt](start)
	q.While(func(p1 Pt) bool {
		if visited[p1] {
			return true
		}
		visited[p1] = true
		g.AddNode(p1)
		fn(p1, func(p2 Pt) (keepGoing bool) {
			if v, ok := grid.AtOk(p2); !ok || disallowed(v) {
				return true
			}
			if visited[p2] {
				return true
			}
			q.Push(p2)
			g.AddEdge(p1, p2, 1)
			return true
		})
		return true
	})
	g.Collapse(start)
	return g
}
