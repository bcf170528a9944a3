package aoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AddChecked returns a+b. It panics if the result overflows int64.
func AddChecked(a, b int64) int64 {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		panic(fmt.Sprintf("integer overflow: %d + %d", a, b))
	}
	return a + b
}

// SubChecked returns a-b. It panics if the result overflows int64.
func SubChecked(a, b int64) int64 {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		panic(fmt.Sprintf("integer overflow: %d - %d", a, b))
	}
	return a - b
}

// MulChecked returns a*b. It panics if the result overflows int64.
func MulChecked(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		panic(fmt.Sprintf("integer overflow: %d * %d", a, b))
	}
	return c
}

// ExtrapolateAt treats x as the values of a polynomial at 0, 1, ...,
// len(x)-1 and returns its value at n, using Newton's forward differences.
// The degree of the polynomial is the depth at which the differences of x
// become constant.
func ExtrapolateAt(x []int64, n int64) int64 {
	var (
		out   int64
		coeff int64 = 1 // binomial(n, k)
		row         = append([]int64(nil), x...)
	)
	for k := int64(0); len(row) > 0; k++ {
		out = AddChecked(out, MulChecked(coeff, row[0]))
		allZero := true
		next := make([]int64, 0, len(row)-1)
		for i := 1; i < len(row); i++ {
			d := row[i] - row[i-1]
			next = append(next, d)
			if d != 0 {
				allZero = false
			}
		}
		if allZero {
			break
		}
		// binomial(n, k+1) = binomial(n, k) * (n-k) / (k+1)
		coeff = MulChecked(coeff, n-k) / (k + 1)
		row = next
	}
	return out
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// PolygonArea returns the area of the polygon defined by the points. The
// polygon must be closed (last point equal to the first); orientation does
// not matter. It uses the shoelace formula.
func PolygonArea(pts []Pt) int {
	var area int

	for i := 1; i < len(pts); i++ {
		a := pts[i-1]
		b := pts[i]
		area += a.X*b.Y - a.Y*b.X
	}
	if area < 0 {
		area = -area
	}
	return area >> 1
}

// PolygonPerimeter returns the perimeter of the polygon defined by the points.
func PolygonPerimeter(pts []Pt) int {
	var perimeter int

	for i := 1; i < len(pts); i++ {
		perimeter += pts[i-1].MDist(pts[i])
	}
	return perimeter
}

// PolygonInteriorPoints returns the number of points with integer coordinates
// strictly inside the closed polygon.
func PolygonInteriorPoints(pts []Pt) int {
	// Pick's theorem: A = i + b/2 - 1
	return PolygonArea(pts) - PolygonPerimeter(pts)/2 + 1
}

// PolygonBoundedPoints returns the number of points with integer coordinates
// inside or on the closed polygon defined by the points.
func PolygonBoundedPoints(pts []Pt) int {
	/*
	  Pick's theorem:
	  A = i + b/2 - 1

	  Bounded points = i + b

	  i = A - b/2 + 1
	  i + b = A + b/2 + 1
	*/
	return PolygonArea(pts) + PolygonPerimeter(pts)/2 + 1
}
