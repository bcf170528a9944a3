package aoc

import (
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// Range is the closed interval [Min, Max]. A Range with Max < Min is empty.
type Range struct {
	Min, Max int
}

func (r Range) Empty() bool {
	return r.Max < r.Min
}

// Size returns the number of integers in r.
func (r Range) Size() int64 {
	if r.Empty() {
		return 0
	}
	return AddChecked(SubChecked(int64(r.Max), int64(r.Min)), 1)
}

func (r Range) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

// Intersect returns the overlap of r and o, which may be empty.
func (r Range) Intersect(o Range) Range {
	return Range{max(r.Min, o.Min), min(r.Max, o.Max)}
}

func (r Range) String() string {
	if r.Empty() {
		return "[]"
	}
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}

// Ranges is a union of intervals on one axis. Values returned by the methods
// below are normalized: sorted by Min, with no empty, overlapping or
// touching intervals.
type Ranges []Range

// NewRanges returns the normalized union of rs.
func NewRanges(rs ...Range) Ranges {
	return Ranges(nil).Union(rs)
}

// Union returns every value in either a or b. Intervals that overlap or
// merely touch ([1,5] and [6,9]) are merged.
func (a Ranges) Union(b Ranges) Ranges {
	all := make([]Range, 0, len(a)+len(b))
	for _, r := range a {
		if !r.Empty() {
			all = append(all, r)
		}
	}
	for _, r := range b {
		if !r.Empty() {
			all = append(all, r)
		}
	}
	slices.SortFunc(all, func(x, y Range) int {
		switch {
		case x.Min < y.Min:
			return -1
		case x.Min > y.Min:
			return 1
		}
		return 0
	})
	var out Ranges
	for _, r := range all {
		if n := len(out); n > 0 && (out[n-1].Max == maxInt || r.Min <= out[n-1].Max+1) {
			out[n-1].Max = max(out[n-1].Max, r.Max)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Intersect returns every value in both a and b.
func (a Ranges) Intersect(b Ranges) Ranges {
	var out []Range
	for _, x := range a {
		for _, y := range b {
			if r := x.Intersect(y); !r.Empty() {
				out = append(out, r)
			}
		}
	}
	return NewRanges(out...)
}

// Invert returns the values of universe that are not in a.
func (a Ranges) Invert(universe Range) Ranges {
	var out Ranges
	next := universe.Min
	for _, r := range NewRanges(a...) {
		r = r.Intersect(universe)
		if r.Empty() {
			continue
		}
		if r.Min > next {
			out = append(out, Range{next, r.Min - 1})
		}
		next = r.Max + 1
		if r.Max == universe.Max {
			return out
		}
	}
	if gap := (Range{next, universe.Max}); !gap.Empty() {
		out = append(out, gap)
	}
	return out
}

// Subtract returns the values of a that are not in b.
func (a Ranges) Subtract(b Ranges) Ranges {
	if len(a) == 0 {
		return nil
	}
	a = NewRanges(a...)
	hull := Range{a[0].Min, a[len(a)-1].Max}
	return a.Intersect(b.Invert(hull))
}

// Size returns the number of integers covered by a.
func (a Ranges) Size() int64 {
	var n int64
	for _, r := range NewRanges(a...) {
		n = AddChecked(n, r.Size())
	}
	return n
}

func (a Ranges) String() string {
	parts := make([]string, len(a))
	for i, r := range a {
		parts[i] = r.String()
	}
	return strings.Join(parts, "∪")
}

// RangeSet is a box of integer tuples: the Cartesian product of one Ranges
// per axis.
//
// An axis with no intervals is unconstrained and counts as a factor of 1 in
// Size, so Union refuses to merge it with a constrained axis. A RangeSet narrowed to nothing on any axis is the empty set and all
// of its axes are dropped.
type RangeSet struct {
	axes  []Ranges
	empty bool
}

// Universal returns the set spanning r on each of n axes.
func Universal(n int, r Range) RangeSet {
	axes := make([]Ranges, n)
	for i := range axes {
		axes[i] = NewRanges(r)
	}
	return RangeSet{axes: axes, empty: r.Empty() && n > 0}.normalize()
}

// NewRangeSet returns the set with the given per-axis ranges. A nil axis is
// unconstrained.
func NewRangeSet(axes ...Ranges) RangeSet {
	s := RangeSet{axes: make([]Ranges, len(axes))}
	for i, a := range axes {
		if a == nil {
			continue
		}
		s.axes[i] = NewRanges(a...)
		if len(s.axes[i]) == 0 {
			s.empty = true
		}
	}
	return s.normalize()
}

// EmptySet returns the set containing nothing.
func EmptySet() RangeSet {
	return RangeSet{empty: true}
}

func (s RangeSet) normalize() RangeSet {
	if s.empty {
		return EmptySet()
	}
	return s
}

func (s RangeSet) IsEmpty() bool {
	return s.empty
}

// Axis returns the intervals of axis i, nil if unconstrained.
func (s RangeSet) Axis(i int) Ranges {
	if s.empty || i >= len(s.axes) {
		return nil
	}
	return s.axes[i]
}

// NumAxes returns the number of axes of s; 0 for the empty set.
func (s RangeSet) NumAxes() int {
	return len(s.axes)
}

func (s RangeSet) axisCount(o RangeSet) int {
	return max(len(s.axes), len(o.axes))
}

// Intersect returns the tuples in both s and o, intersecting axis by axis.
// An unconstrained axis takes the other set's intervals.
func (s RangeSet) Intersect(o RangeSet) RangeSet {
	if s.empty || o.empty {
		return EmptySet()
	}
	out := RangeSet{axes: make([]Ranges, s.axisCount(o))}
	for i := range out.axes {
		a, b := s.Axis(i), o.Axis(i)
		switch {
		case a == nil:
			out.axes[i] = b
		case b == nil:
			out.axes[i] = a
		default:
			out.axes[i] = a.Intersect(b)
			if len(out.axes[i]) == 0 {
				return EmptySet()
			}
		}
	}
	return out
}

// Union merges s and o axis by axis. The result is exact when s and o differ
// on at most one axis; otherwise it is the smallest box containing both. An
// axis unconstrained in both stays unconstrained. It panics if only one of s
// and o constrains an axis, since the union would count that axis as 1.
func (s RangeSet) Union(o RangeSet) RangeSet {
	switch {
	case s.empty:
		return o
	case o.empty:
		return s
	}
	out := RangeSet{axes: make([]Ranges, s.axisCount(o))}
	for i := range out.axes {
		a, b := s.Axis(i), o.Axis(i)
		switch {
		case a == nil && b == nil:
			continue
		case a == nil || b == nil:
			panic(fmt.Sprintf("RangeSet.Union: axis %d is constrained in only one of %v and %v", i, s, o))
		}
		out.axes[i] = a.Union(b)
	}
	return out
}

// Complement returns the tuples of s that are not in o, axis by axis: on each
// axis constrained by o, the values o allows are removed. Where o constrains
// several axes the result is the per-axis subtraction, which is exact when o
// constrains a single axis.
func (s RangeSet) Complement(o RangeSet) RangeSet {
	if s.empty || o.empty {
		return s
	}
	out := RangeSet{axes: make([]Ranges, s.axisCount(o))}
	for i := range out.axes {
		a, b := s.Axis(i), o.Axis(i)
		switch {
		case b == nil:
			out.axes[i] = a
		case a == nil:
			// An unconstrained axis has no known universe to invert.
			panic(fmt.Sprintf("RangeSet.Complement: axis %d of receiver is unconstrained", i))
		default:
			out.axes[i] = a.Subtract(b)
			if len(out.axes[i]) == 0 {
				return EmptySet()
			}
		}
	}
	return out
}

// Size returns the number of tuples in s. It panics if the count overflows
// int64; use BigSize for larger sets.
func (s RangeSet) Size() int64 {
	if s.empty {
		return 0
	}
	var n int64 = 1
	for _, a := range s.axes {
		if len(a) == 0 {
			continue
		}
		n = MulChecked(n, a.Size())
	}
	return n
}

// BigSize is like Size but does not overflow.
func (s RangeSet) BigSize() *big.Int {
	if s.empty {
		return new(big.Int)
	}
	n := big.NewInt(1)
	for _, a := range s.axes {
		if len(a) == 0 {
			continue
		}
		n.Mul(n, big.NewInt(a.Size()))
	}
	return n
}

func (s RangeSet) String() string {
	if s.empty {
		return "∅"
	}
	parts := make([]string, len(s.axes))
	for i, a := range s.axes {
		if a == nil {
			parts[i] = "*"
			continue
		}
		parts[i] = a.String()
	}
	return "{" + strings.Join(parts, " × ") + "}"
}

// Condition is a threshold test on one axis: value Op Value, where Op is
// '<' or '>'.
type Condition struct {
	Axis  int
	Op    byte
	Value int
}

func (c Condition) String() string {
	return fmt.Sprintf("#%d%c%d", c.Axis, c.Op, c.Value)
}

// Match reports whether tuple satisfies c.
func (c Condition) Match(tuple []int) bool {
	switch c.Op {
	case '<':
		return tuple[c.Axis] < c.Value
	case '>':
		return tuple[c.Axis] > c.Value
	}
	panic(fmt.Sprintf("bad condition operator %q", c.Op))
}

// ranges returns the values on c's axis that pass c.
func (c Condition) ranges() Ranges {
	switch c.Op {
	case '<':
		return Ranges{{Min: minInt, Max: c.Value - 1}}
	case '>':
		return Ranges{{Min: c.Value + 1, Max: maxInt}}
	}
	panic(fmt.Sprintf("bad condition operator %q", c.Op))
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

// Split bisects s by c into the tuples that pass c and those that do not.
// Either half may be the empty set.
func (s RangeSet) Split(c Condition) (match, rest RangeSet) {
	if s.empty {
		return EmptySet(), EmptySet()
	}
	if c.Axis < 0 || c.Axis >= len(s.axes) || s.axes[c.Axis] == nil {
		panic(fmt.Sprintf("RangeSet.Split: %v on unconstrained axis of %v", c, s))
	}
	pass := make([]Ranges, len(s.axes))
	pass[c.Axis] = c.ranges()
	cond := RangeSet{axes: pass}
	return s.Intersect(cond), s.Complement(cond)
}
