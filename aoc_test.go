package aoc

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
}

func TestExtractAllSamples(t *testing.T) {
	src := `package main

/*
want=3

1 2
*/
func (s *solver) D1p1() any { return nil }

// want=2
func (s *solver) D1p2() any { return nil }

func helper() {}
`
	fsys := fstest.MapFS{
		"day01.go":      {Data: []byte(src)},
		"day01_test.go": {Data: []byte("package main\n\n// want=9\nfunc TestD1() {}\n")},
	}
	got := extractAllSamples(fsys)
	want := map[string]sample{
		"D1p1": {want: "3", input: "1 2\n"},
		"D1p2": {want: "2", input: "1 2\n"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractAllSamples (-want +got):\n%s", diff)
	}
}

func TestSections(t *testing.T) {
	p := &Puzzle{
		SampleMode: true,
		solver:     partSolver{Name: "D5p1"},
		samples: map[string]sample{
			"D5p1": {input: "a\nb\n\n\nc\n"},
		},
	}
	if diff := cmp.Diff([][]string{{"a", "b"}, {"c"}}, p.Sections()); diff != "" {
		t.Errorf("Sections (-want +got):\n%s", diff)
	}
}

type testSolver struct {
	*Puzzle
}

func (s *testSolver) D3p1() any  { return 1 }
func (s *testSolver) D3p2() any  { return 2 }
func (s *testSolver) D12p1() any { return 3 }
func (s *testSolver) Other() any { return 4 }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	var parts []string
	for _, ps := range days[3].parts {
		parts = append(parts, ps.Name)
	}
	if diff := cmp.Diff([]string{"D3p1", "D3p2"}, parts); diff != "" {
		t.Errorf("day 3 parts (-want +got):\n%s", diff)
	}
	if got := days[12].parts[0].fn(); got != 3 {
		t.Errorf("D12p1() = %v, want 3", got)
	}
}
