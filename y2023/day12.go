package main

import (
	"strings"

	aoc "github.com/maisem/aoc2023"
)

type springRow struct {
	springs string
	groups  []int
}

func parseSpringRow(line string) springRow {
	springs, groups, ok := strings.Cut(line, " ")
	if !ok {
		panic("bad row: " + line)
	}
	return springRow{springs, aoc.Ints(strings.Split(groups, ",")...)}
}

func (r springRow) unfold(n int) springRow {
	out := springRow{
		springs: strings.Repeat(r.springs+"?", n),
	}
	out.springs = out.springs[:len(out.springs)-1]
	for i := 0; i < n; i++ {
		out.groups = append(out.groups, r.groups...)
	}
	return out
}

type springKey struct {
	spring, group int
}

// arrangements returns the number of ways the unknown springs ('?') can be
// filled in so that the runs of damaged springs ('#') have the lengths in
// groups, in order.
func (r springRow) arrangements() int {
	memo := map[springKey]int{}
	var count func(i, j int) int
	count = func(i, j int) int {
		if j == len(r.groups) {
			if strings.Contains(r.springs[i:], "#") {
				return 0
			}
			return 1
		}
		if i >= len(r.springs) {
			return 0
		}
		k := springKey{i, j}
		if v, ok := memo[k]; ok {
			return v
		}
		n := 0
		if r.springs[i] != '#' {
			n += count(i+1, j)
		}
		if r.springs[i] != '.' {
			end := i + r.groups[j]
			if end <= len(r.springs) && !strings.Contains(r.springs[i:end], ".") && (end == len(r.springs) || r.springs[end] != '#') {
				n += count(min(end+1, len(r.springs)), j+1)
			}
		}
		memo[k] = n
		return n
	}
	return count(0, 0)
}

/*
want=21

???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
*/
func (s *solver) D12p1() any {
	sum := 0
	s.ForLines(func(line string) {
		sum += parseSpringRow(line).arrangements()
	})
	return sum
}

// want=525152
func (s *solver) D12p2() any {
	sum := 0
	s.ForLines(func(line string) {
		sum += parseSpringRow(line).unfold(5).arrangements()
	})
	return sum
}
