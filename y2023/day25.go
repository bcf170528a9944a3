package main

import (
	"log"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

func parseWiring(lines []string) *aoc.Graph[string] {
	var g aoc.Graph[string]
	for _, line := range lines {
		from, to, ok := strings.Cut(line, ": ")
		if !ok {
			log.Fatalf("bad wiring line %q", line)
		}
		for _, o := range strings.Fields(to) {
			g.AddEdge(from, o, 1)
		}
	}
	return &g
}

/*
want=54

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
*/
func (s *solver) D25p1() any {
	g := parseWiring(s.Lines())
	cut, ok := g.MinCut()
	if !ok {
		log.Fatal("nothing to cut")
	}
	if cut.Weight != 3 {
		log.Fatalf("min cut has %d wires, want 3", cut.Weight)
	}
	s.Debugf("cut wires %v", cut.Edges(g))
	return cut.A.Size() * cut.B.Size()
}
