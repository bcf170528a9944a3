package aoc

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Pipe is a tile of a pipe maze.
type Pipe byte

const (
	Ground    Pipe = iota // .
	PipeNS                // |
	PipeEW                // -
	PipeNE                // L
	PipeNW                // J
	PipeSW                // 7
	PipeSE                // F
	PipeStart             // S, shape unknown until the loop is traced
)

var pipeRunes = [...]byte{
	Ground:    '.',
	PipeNS:    '|',
	PipeEW:    '-',
	PipeNE:    'L',
	PipeNW:    'J',
	PipeSW:    '7',
	PipeSE:    'F',
	PipeStart: 'S',
}

// ParsePipe parses a pipe maze tile.
func ParsePipe(b byte) (Pipe, error) {
	for p, r := range pipeRunes {
		if r == b {
			return Pipe(p), nil
		}
	}
	return Ground, fmt.Errorf("unknown pipe %q", b)
}

func (p Pipe) String() string {
	if int(p) < len(pipeRunes) {
		return string(pipeRunes[p])
	}
	return fmt.Sprintf("Pipe(%d)", byte(p))
}

// Connects reports whether p has an opening towards d. Ground and an
// unresolved start connect nowhere.
func (p Pipe) Connects(d Direction) bool {
	switch p {
	case Ground, PipeStart:
		return false
	case PipeNS:
		return d == Up || d == Down
	case PipeEW:
		return d == Left || d == Right
	case PipeNE:
		return d == Up || d == Right
	case PipeNW:
		return d == Up || d == Left
	case PipeSW:
		return d == Down || d == Left
	case PipeSE:
		return d == Down || d == Right
	}
	panic(fmt.Sprintf("bad pipe %d", byte(p)))
}

// pipeJoining returns the pipe with openings towards a and b.
func pipeJoining(a, b Direction) (Pipe, bool) {
	for _, p := range []Pipe{PipeNS, PipeEW, PipeNE, PipeNW, PipeSW, PipeSE} {
		if a != b && p.Connects(a) && p.Connects(b) {
			return p, true
		}
	}
	return Ground, false
}

// Loop is a closed pipe loop.
type Loop struct {
	// Pts lists the loop's cells in walking order, starting at the start
	// cell. The loop closes from the last point back to the first.
	Pts []Pt
	// Start is the real shape of the start cell.
	Start Pipe
}

// Shape returns the pipe at p with the start tile resolved.
func (l Loop) Shape(g Grid[Pipe], p Pt) Pipe {
	if v := g.At(p); v != PipeStart {
		return v
	}
	return l.Start
}

// Polygon returns the loop as a closed polygon, first point repeated last.
func (l Loop) Polygon() []Pt {
	return append(append([]Pt(nil), l.Pts...), l.Pts[0])
}

var errBrokenLoop = errors.New("pipe loop is broken")

// FindLoop traces the loop through start, which must join exactly two of its
// neighbors.
func FindLoop(g Grid[Pipe], start Pt) (Loop, error) {
	var exits []Direction
	for _, d := range Directions {
		if v, ok := g.AtOk(start.Step(d)); ok && v.Connects(d.Opposite()) {
			exits = append(exits, d)
		}
	}
	if len(exits) != 2 {
		return Loop{}, fmt.Errorf("start %v joins %d pipes, want 2", start, len(exits))
	}
	shape, _ := pipeJoining(exits[0], exits[1])
	l := Loop{Start: shape, Pts: []Pt{start}}

	p, dir := start.Step(exits[0]), exits[0]
	for p != start {
		l.Pts = append(l.Pts, p)
		v, ok := g.AtOk(p)
		if !ok || !v.Connects(dir.Opposite()) {
			return Loop{}, fmt.Errorf("%w at %v", errBrokenLoop, p)
		}
		next := dir
		for _, d := range Directions {
			if d != dir.Opposite() && v.Connects(d) {
				next = d
				break
			}
		}
		p, dir = p.Step(next), next
	}
	return l, nil
}

// Enclosed returns the number of cells strictly inside the loop.
//
// It casts a ray along each row: every loop cell with an opening upwards
// crosses the boundary, so a cell is inside after an odd number of them.
// Counting only upward openings makes an "L-7" run count once and an "L-J"
// run count twice, as the ray passes through or merely touches the loop.
func Enclosed(g Grid[Pipe], l Loop) int {
	onLoop := mapset.New[Pt]()
	for _, p := range l.Pts {
		onLoop.Put(p)
	}
	n := 0
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		inside := false
		for x := 0; x < size.X; x++ {
			p := Pt{x, y}
			if onLoop.Has(p) {
				if l.Shape(g, p).Connects(Up) {
					inside = !inside
				}
				continue
			}
			if inside {
				n++
			}
		}
	}
	return n
}
