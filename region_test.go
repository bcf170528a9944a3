package aoc

import (
	"errors"
	"strings"
	"testing"
)

func parsePipes(t *testing.T, in string) (Grid[Pipe], Pt) {
	t.Helper()
	g, err := ParseGridFunc(strings.Fields(in), ParsePipe)
	if err != nil {
		t.Fatal(err)
	}
	start, ok := g.Find(func(p Pipe) bool { return p == PipeStart })
	if !ok {
		t.Fatal("no start")
	}
	return g, start
}

func TestFindLoop(t *testing.T) {
	tests := []struct {
		in       string
		wantLen  int
		wantPipe Pipe
	}{
		{`
.....
.S-7.
.|.|.
.L-J.
.....
`, 8, PipeSE},
		{`
..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`, 16, PipeSE},
	}
	for _, tt := range tests {
		g, start := parsePipes(t, tt.in)
		l, err := FindLoop(g, start)
		if err != nil {
			t.Errorf("FindLoop: %v", err)
			continue
		}
		if len(l.Pts) != tt.wantLen {
			t.Errorf("loop length = %d, want %d", len(l.Pts), tt.wantLen)
		}
		if l.Start != tt.wantPipe {
			t.Errorf("start pipe = %v, want %v", l.Start, tt.wantPipe)
		}
	}
}

func TestEnclosed(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{`
...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`, 4},
		{`
..........
.S------7.
.|F----7|.
.||OOOO||.
.||OOOO||.
.|L-7F-J|.
.|II||II|.
.L--JL--J.
..........
`, 4},
		{`
.....
.S-7.
.|.|.
.L-J.
.....
`, 1},
	}
	for _, tt := range tests {
		in := strings.NewReplacer("O", ".", "I", ".").Replace(tt.in)
		g, start := parsePipes(t, in)
		l, err := FindLoop(g, start)
		if err != nil {
			t.Errorf("FindLoop: %v", err)
			continue
		}
		got := Enclosed(g, l)
		if got != tt.want {
			t.Errorf("Enclosed = %d, want %d", got, tt.want)
		}
		if pick := PolygonInteriorPoints(l.Polygon()); pick != got {
			t.Errorf("Enclosed = %d but Pick's theorem gives %d", got, pick)
		}
	}
}

func TestFindLoopBroken(t *testing.T) {
	g, start := parsePipes(t, `
.....
.S-7.
.|.|.
.L-..
.....
`)
	if _, err := FindLoop(g, start); !errors.Is(err, errBrokenLoop) {
		t.Errorf("FindLoop = %v, want %v", err, errBrokenLoop)
	}
}

func TestConnects(t *testing.T) {
	for _, p := range []Pipe{PipeNS, PipeEW, PipeNE, PipeNW, PipeSW, PipeSE} {
		n := 0
		for _, d := range Directions {
			if p.Connects(d) {
				n++
			}
		}
		if n != 2 {
			t.Errorf("%v connects %d ways, want 2", p, n)
		}
		if got := MustGet(ParsePipe(p.String()[0])); got != p {
			t.Errorf("ParsePipe(%v) = %v", p, got)
		}
	}
	if _, err := ParsePipe('x'); err == nil {
		t.Error("ParsePipe('x') succeeded")
	}
}
