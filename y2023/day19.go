package main

import (
	"fmt"
	"regexp"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

const (
	accept = "A"
	reject = "R"
)

// ratings names the axes of a part, in order.
const ratings = "xmas"

type rule struct {
	cond   aoc.Condition
	always bool // no condition; the workflow's last rule
	target string
}

type workflows map[string][]rule

var workflowRx = regexp.MustCompile(`^(\w+)\{(.*)\}$`)

func parseWorkflows(lines []string) (workflows, error) {
	wf := workflows{}
	for _, line := range lines {
		m := workflowRx.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("bad workflow %q", line)
		}
		var rules []rule
		for _, r := range strings.Split(m[2], ",") {
			cond, target, ok := strings.Cut(r, ":")
			if !ok {
				rules = append(rules, rule{always: true, target: r})
				continue
			}
			if len(cond) < 3 || strings.IndexByte(ratings, cond[0]) < 0 || (cond[1] != '<' && cond[1] != '>') {
				return nil, fmt.Errorf("bad condition %q in %q", cond, line)
			}
			rules = append(rules, rule{
				cond: aoc.Condition{
					Axis:  strings.IndexByte(ratings, cond[0]),
					Op:    cond[1],
					Value: aoc.Int(cond[2:]),
				},
				target: target,
			})
		}
		wf[m[1]] = rules
	}
	return wf, nil
}

var partRx = regexp.MustCompile(`^\{x=(\d+),m=(\d+),a=(\d+),s=(\d+)\}$`)

func parsePart(line string) ([]int, error) {
	m := partRx.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("bad part %q", line)
	}
	return aoc.Ints(m[1:]...), nil
}

// accepts runs part through the workflows starting at "in".
func (wf workflows) accepts(part []int) bool {
	name := "in"
	for name != accept && name != reject {
		rules, ok := wf[name]
		if !ok {
			panic(fmt.Sprintf("no workflow %q", name))
		}
		for _, r := range rules {
			if r.always || r.cond.Match(part) {
				name = r.target
				break
			}
		}
	}
	return name == accept
}

// countAccepted returns the number of parts in set that workflow name
// accepts.
func (wf workflows) countAccepted(set aoc.RangeSet, name string) int64 {
	switch name {
	case accept:
		return set.Size()
	case reject:
		return 0
	}
	var n int64
	for _, r := range wf[name] {
		if set.IsEmpty() {
			break
		}
		if r.always {
			n = aoc.AddChecked(n, wf.countAccepted(set, r.target))
			break
		}
		match, rest := set.Split(r.cond)
		n = aoc.AddChecked(n, wf.countAccepted(match, r.target))
		set = rest
	}
	return n
}

func (s *solver) sortingSystem() (workflows, [][]string) {
	sections := s.Sections()
	if len(sections) != 2 {
		panic(fmt.Sprintf("got %d sections, want 2", len(sections)))
	}
	return aoc.MustGet(parseWorkflows(sections[0])), sections
}

/*
want=19114

px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=357}
{x=2127,m=1623,a=2188,s=1013}
*/
func (s *solver) D19p1() any {
	wf, sections := s.sortingSystem()
	sum := 0
	for _, line := range sections[1] {
		part := aoc.MustGet(parsePart(line))
		if wf.accepts(part) {
			sum += aoc.Sum(part...)
		}
	}
	return sum
}

// want=167409079868000
func (s *solver) D19p2() any {
	wf, _ := s.sortingSystem()
	return wf.countAccepted(aoc.Universal(len(ratings), aoc.Range{Min: 1, Max: 4000}), "in")
}
