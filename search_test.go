package aoc

import (
	"strings"
	"testing"
)

var cityBlocks = strings.Fields(`
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
`)

var lopsidedBlocks = strings.Fields(`
111111111111
999999999991
999999999991
999999999991
999999999991
`)

func parseCost(t *testing.T, lines []string) Grid[int] {
	t.Helper()
	g, err := ParseGridFunc(lines, DigitCell)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestShortestPath(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		lim   RunLimits
		want  int
	}{
		{"crucible", cityBlocks, Crucible, 102},
		{"ultra", cityBlocks, UltraCrucible, 94},
		{"ultra-lopsided", lopsidedBlocks, UltraCrucible, 71},
		{"unlimited", cityBlocks, RunLimits{Min: 0, Max: 100}, 0},
	}
	for _, tt := range tests {
		g := parseCost(t, tt.lines)
		goal := g.Size().Add(Pt{-1, -1})
		r, ok := ShortestPath(g, Pt{}, goal, tt.lim)
		if !ok {
			t.Errorf("%s: no route", tt.name)
			continue
		}
		if tt.want != 0 && r.Cost != tt.want {
			t.Errorf("%s: cost = %d, want %d", tt.name, r.Cost, tt.want)
		}
		checkRoute(t, tt.name, g, r, Pt{}, goal, tt.lim)
	}
}

// checkRoute verifies that r is a legal route whose cost adds up.
func checkRoute(t *testing.T, name string, g Grid[int], r Route, start, goal Pt, lim RunLimits) {
	t.Helper()
	if len(r.Path) == 0 || r.Path[0] != start || r.Path[len(r.Path)-1] != goal {
		t.Errorf("%s: path %v does not run from %v to %v", name, r.Path, start, goal)
		return
	}
	var (
		cost int
		runs []int
		last Pt
	)
	for i := 1; i < len(r.Path); i++ {
		prev, p := r.Path[i-1], r.Path[i]
		if prev.MDist(p) != 1 {
			t.Errorf("%s: step %v -> %v is not a single move", name, prev, p)
			return
		}
		cost += g.At(p)
		delta := Pt{p.X - prev.X, p.Y - prev.Y}
		switch {
		case i > 1 && delta == last:
			runs[len(runs)-1]++
		case i > 1 && delta == (Pt{-last.X, -last.Y}):
			t.Errorf("%s: path reverses at %v", name, prev)
		default:
			runs = append(runs, 1)
		}
		last = delta
	}
	if cost != r.Cost {
		t.Errorf("%s: path costs %d, route says %d", name, cost, r.Cost)
	}
	for i, n := range runs {
		if n > lim.Max || n < lim.Min {
			t.Errorf("%s: run %d has length %d, outside %+v", name, i, n, lim)
		}
	}
}

func TestShortestPathNoRoute(t *testing.T) {
	g := parseCost(t, []string{"11", "11"})
	// Four straight blocks are needed before stopping, but the grid is too
	// small for that.
	if r, ok := ShortestPath(g, Pt{}, Pt{1, 1}, UltraCrucible); ok {
		t.Errorf("ShortestPath = %+v, want no route", r)
	}
	if r, ok := ShortestPath(g, Pt{}, Pt{5, 5}, Crucible); ok {
		t.Errorf("ShortestPath to outside = %+v, want no route", r)
	}
}

func TestShortestPathStartIsGoal(t *testing.T) {
	g := parseCost(t, []string{"12", "34"})
	r, ok := ShortestPath(g, Pt{1, 1}, Pt{1, 1}, Crucible)
	if !ok || r.Cost != 0 || len(r.Path) != 1 {
		t.Errorf("ShortestPath(start == goal) = %+v, %v; want zero cost", r, ok)
	}
}

func TestShortestPathFreeCells(t *testing.T) {
	g := parseCost(t, []string{
		"09000",
		"00090",
		"99090",
		"00000",
	})
	r, ok := ShortestPath(g, Pt{}, Pt{4, 3}, Crucible)
	if !ok || r.Cost != 0 {
		t.Fatalf("ShortestPath = %+v, %v; want a free route", r, ok)
	}
	checkRoute(t, "free", g, r, Pt{}, Pt{4, 3}, Crucible)
}

func TestShortestPathBadLimits(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ShortestPath with Min > Max did not panic")
		}
	}()
	ShortestPath(parseCost(t, []string{"1"}), Pt{}, Pt{}, RunLimits{Min: 3, Max: 2})
}
