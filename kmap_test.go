package kmap_test

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/db47h/kmap"
	"github.com/db47h/kmap/kmtest"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var ignoreStructure = cmpopts.IgnoreFields(kmap.TermResult{}, "Term", "Region")

func mustParse(t testing.TB, s string) kmap.Grid {
	t.Helper()
	g, err := kmap.ParseGrid(s)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func allMinterms() []int {
	ms := make([]int, kmap.Size)
	for i := range ms {
		ms[i] = i
	}
	return ms
}

func TestMinimize(t *testing.T) {
	td := []struct {
		name string
		grid string
		res  kmap.Result
	}{
		{"all false", "m()", kmap.Result{Equation: "0", Terms: []kmap.TermResult{}}},
		{"all dont care", "d(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)",
			kmap.Result{Equation: "0", Terms: []kmap.TermResult{}}},
		{"all true", "1111 1111 1111 1111",
			kmap.Result{Equation: "1", Terms: []kmap.TermResult{{Literals: "1", CellIndices: allMinterms()}}}},
		{"true and dont care", "1xxx xxxx xxxx xxx1",
			kmap.Result{Equation: "1", Terms: []kmap.TermResult{{Literals: "1", CellIndices: allMinterms()}}}},
		{"single cell", "m(5)",
			kmap.Result{Equation: "A'BC'D", Terms: []kmap.TermResult{{Literals: "A'BC'D", CellIndices: []int{5}}}}},
		{"adjacent pair", "m(4, 5)",
			kmap.Result{Equation: "A'BC'", Terms: []kmap.TermResult{{Literals: "A'BC'", CellIndices: []int{4, 5}}}}},
		{"wraparound", "m(0, 2)",
			kmap.Result{Equation: "A'B'D'", Terms: []kmap.TermResult{{Literals: "A'B'D'", CellIndices: []int{0, 2}}}}},
		{"corners with dont cares", "m(0, 2) + d(8, 10)",
			kmap.Result{Equation: "B'D'", Terms: []kmap.TermResult{{Literals: "B'D'", CellIndices: []int{0, 2, 8, 10}}}}},
		{"half", "m(8, 9, 10, 11, 12, 13, 14, 15)",
			kmap.Result{Equation: "A", Terms: []kmap.TermResult{{Literals: "A", CellIndices: []int{8, 9, 10, 11, 12, 13, 14, 15}}}}},
		{"xnor of B and D", "m(0, 2, 5, 7, 8, 10, 13, 15)",
			kmap.Result{Equation: "BD + B'D'", Terms: []kmap.TermResult{
				{Literals: "BD", CellIndices: []int{5, 7, 13, 15}},
				{Literals: "B'D'", CellIndices: []int{0, 2, 8, 10}},
			}}},
		{"redundant square", "m(3, 4, 5, 7, 9, 13, 14, 15)",
			kmap.Result{Equation: "BD + A'CD + A'BC' + AC'D + ABC", Terms: []kmap.TermResult{
				{Literals: "BD", CellIndices: []int{5, 7, 13, 15}},
				{Literals: "A'CD", CellIndices: []int{3, 7}},
				{Literals: "A'BC'", CellIndices: []int{4, 5}},
				{Literals: "AC'D", CellIndices: []int{9, 13}},
				{Literals: "ABC", CellIndices: []int{14, 15}},
			}}},
		// the square at (0,0) comes before the row at (1,0) although 1x4
		// precedes 2x2 in shape order
		{"lower origin first", "m(0, 1, 4, 5, 6, 7)",
			kmap.Result{Equation: "A'C' + A'B", Terms: []kmap.TermResult{
				{Literals: "A'C'", CellIndices: []int{0, 1, 4, 5}},
				{Literals: "A'B", CellIndices: []int{4, 5, 6, 7}},
			}}},
		// same origin: 1x2 before 2x1
		{"same origin", "m(4, 5, 12)",
			kmap.Result{Equation: "A'BC' + BC'D'", Terms: []kmap.TermResult{
				{Literals: "A'BC'", CellIndices: []int{4, 5}},
				{Literals: "BC'D'", CellIndices: []int{4, 12}},
			}}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			g := mustParse(t, d.grid)
			r := kmap.Minimize(g)
			if diff := cmp.Diff(d.res, r, ignoreStructure); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			kmtest.Check(t, g, r)
		})
	}
}

func TestSelect_covered(t *testing.T) {
	g := mustParse(t, "m(3, 4, 5, 7, 9, 13, 14, 15)")
	var covered [][]int
	for _, imp := range kmap.Select(g) {
		covered = append(covered, imp.Covered)
	}
	ex := [][]int{{5, 7, 13, 15}, {3}, {4}, {9}, {14}}
	if diff := cmp.Diff(ex, covered); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestGrid_Valid(t *testing.T) {
	g := mustParse(t, "m(0, 2) + d(8, 10)")
	td := []struct {
		r     kmap.Region
		valid bool
	}{
		{kmap.Region{Row: 3, Col: 3, Height: 2, Width: 2}, true},
		{kmap.Region{Row: 3, Col: 0, Height: 1, Width: 2}, false},
		{kmap.Region{Row: 3, Col: 3, Height: 1, Width: 2}, true}, // don't cares only
		{kmap.Region{Row: 0, Col: 0, Height: 4, Width: 4}, false},
	}
	for _, d := range td {
		if v := g.Valid(d.r); v != d.valid {
			t.Errorf("%v: expected %v, got %v", d.r, d.valid, v)
		}
	}
}

func TestGrid_Valid_cells(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		g := kmtest.RandomGrid(rnd, 50, 20)
		for _, r := range kmap.Catalog() {
			ex := true
			for _, m := range r.Minterms() {
				if g.ValueAt(m) == kmap.False {
					ex = false
				}
			}
			if v := g.Valid(r); v != ex {
				t.Fatalf("%s: %v: expected %v, got %v", g.Notation(), r, ex, v)
			}
		}
		for _, im := range kmap.Select(g) {
			if !g.Valid(im.Region) {
				t.Fatalf("%s: selected region %v is not valid", g.Notation(), im.Region)
			}
		}
	}
}

func TestMinimize_idempotent(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		g := kmtest.RandomGrid(rnd, 40, 20)
		r1, r2 := kmap.Minimize(g), kmap.Minimize(g)
		if diff := cmp.Diff(r1, r2); diff != "" {
			t.Fatalf("%s: results differ (-first +second):\n%s", g.Notation(), diff)
		}
	}
}

func TestMinimize_quick(t *testing.T) {
	f := func(vs [kmap.Size]uint8) bool {
		var g kmap.Grid
		for m, v := range vs {
			g[m] = kmap.CellValue(v % 3)
		}
		kmtest.Check(t, g, kmap.Minimize(g))
		return !t.Failed()
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

func TestResult_Eval(t *testing.T) {
	r := kmap.Minimize(mustParse(t, "m(4, 5)"))
	for m := 0; m < kmap.Size; m++ {
		if ex := m == 4 || m == 5; r.Eval(m) != ex {
			t.Errorf("minterm %d: expected %v", m, ex)
		}
	}
	if kmap.Minimize(kmap.Grid{}).Eval(0) {
		t.Error("constant 0 evaluates to true")
	}
}
