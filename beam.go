package aoc

import "github.com/zyedidia/generic/mapset"

// Energized returns the cells touched by a beam of light entering g at
// start.Pt heading start.Dir. Mirrors ('/' and '\') turn the beam; splitters
// ('|' and '-') hit side-on split it in two. Any other cell lets it pass.
//
// A beam that returns to a cell heading the same way it did before is in a
// loop, so it is dropped.
func Energized(g Grid[byte], start Path) mapset.Set[Pt] {
	touched := mapset.New[Pt]()
	seen := map[Path]bool{}
	var beams Stack[Path]
	beams.Push(start)
	beams.While(func(b Path) bool {
		for g.InBounds(b.Pt) && !seen[b] {
			seen[b] = true
			touched.Put(b.Pt)
			switch g.At(b.Pt) {
			case '/':
				// Right <-> Up, Left <-> Down
				b.Dir = b.Dir.Turn(!b.Dir.Horizontal())
			case '\\':
				// Right <-> Down, Left <-> Up
				b.Dir = b.Dir.Turn(b.Dir.Horizontal())
			case '|':
				if b.Dir.Horizontal() {
					beams.Push(Path{Pt: b.Pt.Step(Down), Dir: Down})
					b.Dir = Up
				}
			case '-':
				if !b.Dir.Horizontal() {
					beams.Push(Path{Pt: b.Pt.Step(Left), Dir: Left})
					b.Dir = Right
				}
			}
			b.Pt = b.Pt.Step(b.Dir)
		}
		return true
	})
	return touched
}

// Energize returns the number of cells touched by a beam entering at start.
func Energize(g Grid[byte], start Path) int {
	touched := Energized(g, start)
	return touched.Size()
}

// MaxEnergized returns the most cells any beam entering from the edge of g
// can touch.
func MaxEnergized(g Grid[byte]) int {
	best := 0
	for _, p := range g.EdgePaths() {
		best = max(best, Energize(g, p))
	}
	return best
}
