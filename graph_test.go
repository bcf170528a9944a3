package aoc

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zyedidia/generic/mapset"
)

const wiring = `
jqt: rhn xhk nvd
rsh: frs pzl lsr
xhk: hfx
cmg: qnr nvd lhk bvb
rhn: xhk bvb hfx
bvb: xhk hfx
pzl: lsr hfx nvd
qnr: nvd
ntq: jqt hfx bvb xhk
nvd: lhk
lsr: lhk
rzs: qnr cmg lsr rsh
frs: qnr lhk lsr
`

func parseWiring(in string) *Graph[string] {
	var g Graph[string]
	for _, line := range strings.Split(strings.TrimSpace(in), "\n") {
		from, to, _ := strings.Cut(line, ": ")
		for _, o := range strings.Fields(to) {
			g.AddEdge(from, o, 1)
		}
	}
	return &g
}

func setKeys[K comparable](s mapset.Set[K]) []K {
	var out []K
	s.Each(func(k K) { out = append(out, k) })
	return out
}

func TestMinCut(t *testing.T) {
	g := parseWiring(wiring)
	if len(g.Nodes) != 15 {
		t.Fatalf("len(Nodes) = %d, want 15", len(g.Nodes))
	}
	cut, ok := g.MinCut()
	if !ok {
		t.Fatal("MinCut found no cut")
	}
	if cut.Weight != 3 {
		t.Errorf("Weight = %d, want 3", cut.Weight)
	}
	if got := cut.A.Size() * cut.B.Size(); got != 54 {
		t.Errorf("|A|*|B| = %d*%d = %d, want 54", cut.A.Size(), cut.B.Size(), got)
	}

	var cutEdges []string
	for _, e := range cut.Edges(g) {
		a, b := e.A, e.B
		if a > b {
			a, b = b, a
		}
		cutEdges = append(cutEdges, a+"/"+b)
	}
	slices.Sort(cutEdges)
	if diff := cmp.Diff([]string{"bvb/cmg", "hfx/pzl", "jqt/nvd"}, cutEdges); diff != "" {
		t.Errorf("cut edges (-want +got):\n%s", diff)
	}

	// Each side is connected once the cut edges are gone.
	for _, e := range cut.Edges(g) {
		g.RemoveEdge(e.A, e.B)
	}
	for _, side := range []mapset.Set[string]{cut.A, cut.B} {
		keys := setKeys(side)
		if got := len(g.ReachableNodes(keys[0])); got != len(keys) {
			t.Errorf("side of %d nodes reaches %d", len(keys), got)
		}
	}
}

func TestMinCutDoesNotMutate(t *testing.T) {
	g := parseWiring(wiring)
	before := g.Clone()
	g.MinCut()
	if diff := cmp.Diff(before, g); diff != "" {
		t.Errorf("MinCut mutated the graph (-before +after):\n%s", diff)
	}
}

func TestMinCutWeighted(t *testing.T) {
	// Two triangles of heavy edges joined by a single light edge.
	var g Graph[int]
	for _, tri := range [][3]int{{1, 2, 3}, {4, 5, 6}} {
		g.AddEdge(tri[0], tri[1], 10)
		g.AddEdge(tri[1], tri[2], 10)
		g.AddEdge(tri[2], tri[0], 10)
	}
	g.AddEdge(3, 4, 2)
	cut, ok := g.MinCut()
	if !ok || cut.Weight != 2 {
		t.Fatalf("MinCut = %v, %v; want weight 2", cut.Weight, ok)
	}
	a := setKeys(cut.A)
	slices.Sort(a)
	if !slices.Equal(a, []int{1, 2, 3}) && !slices.Equal(a, []int{4, 5, 6}) {
		t.Errorf("side A = %v, want one of the triangles", a)
	}
}

func TestMinCutTrivial(t *testing.T) {
	var g Graph[string]
	if _, ok := g.MinCut(); ok {
		t.Error("MinCut of empty graph reported a cut")
	}
	g.AddNode("a")
	if _, ok := g.MinCut(); ok {
		t.Error("MinCut of single vertex reported a cut")
	}

	g.AddNode("b")
	cut, ok := g.MinCut()
	if !ok || cut.Weight != 0 || cut.A.Size() != 1 || cut.B.Size() != 1 {
		t.Errorf("MinCut of two unconnected vertices = %+v, %v; want weight 0, 1|1", cut.Weight, ok)
	}
}

func TestCollapse(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)
	g.AddEdge("c", "d", 3)
	g.AddEdge("a", "e", 1)
	g.AddEdge("e", "d", 1)
	g.AddEdge("d", "f", 4)

	c := g.Clone()
	c.Collapse("a")
	if diff := cmp.Diff(map[string]bool{"a": true, "f": true}, c.Nodes); diff != "" {
		t.Errorf("Collapse nodes (-want +got):\n%s", diff)
	}
	// a-b-c-d is heavier than a-e-d and wins the merge.
	if got := c.Edges["a"]["f"]; got != 10 {
		t.Errorf("a-f weight = %d, want 10", got)
	}

	if got, ok := g.LongestPath("a", "f"); !ok || got != 10 {
		t.Errorf("LongestPath = %d, %v; want 10, true", got, ok)
	}
	g.AddNode("z")
	if _, ok := g.LongestPath("a", "z"); ok {
		t.Error("LongestPath to unreachable node reported ok")
	}
}
