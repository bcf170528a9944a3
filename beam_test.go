package aoc

import (
	"strings"
	"testing"
)

var contraption = strings.Fields(`
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
`)

func TestEnergize(t *testing.T) {
	g := MustGet(ParseGrid(contraption))
	if got := Energize(g, Path{Pt: Pt{0, 0}, Dir: Right}); got != 46 {
		t.Errorf("Energize from top-left = %d, want 46", got)
	}
	if got := Energize(g, Path{Pt: Pt{3, 0}, Dir: Down}); got != 51 {
		t.Errorf("Energize from (3,0) down = %d, want 51", got)
	}
	if got := MaxEnergized(g); got != 51 {
		t.Errorf("MaxEnergized = %d, want 51", got)
	}
}

func TestEnergizeLoop(t *testing.T) {
	// The beam splits at the '-' and both halves are sent round the same
	// loop of mirrors forever.
	g := MustGet(ParseGrid([]string{
		`/-\`,
		`|.|`,
		`\-/`,
	}))
	if got := Energize(g, Path{Pt: Pt{1, 1}, Dir: Up}); got != 9 {
		t.Errorf("Energize = %d, want 9", got)
	}
}

func TestEnergizeMirrors(t *testing.T) {
	tests := []struct {
		lines []string
		start Path
		want  int
	}{
		// '/' turns a rightward beam up, out of the grid.
		{[]string{"./."}, Path{Pt: Pt{0, 0}, Dir: Right}, 2},
		// '\' turns a rightward beam down.
		{[]string{`.\`, "..", ".."}, Path{Pt: Pt{0, 0}, Dir: Right}, 4},
		// a splitter hit end-on is passed straight through.
		{[]string{"-.-."}, Path{Pt: Pt{0, 0}, Dir: Right}, 4},
	}
	for _, tt := range tests {
		g := MustGet(ParseGrid(tt.lines))
		if got := Energize(g, tt.start); got != tt.want {
			t.Errorf("Energize(%q, %v) = %d, want %d", tt.lines, tt.start, got, tt.want)
		}
	}
}
