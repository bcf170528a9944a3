// Command y2023 solves the 2023 puzzles. Each solver is first checked against
// the sample in its doc comment, then run on <input-dir>/2023/<day>.input.
package main

import (
	"embed"

	aoc "github.com/maisem/aoc2023"
)

func main() {
	aoc.Run(2023, sources, &solver{})
}

//go:embed *.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}

func (s *solver) grid() aoc.Grid[byte] {
	return aoc.MustGet(aoc.ParseGrid(s.Lines()))
}
