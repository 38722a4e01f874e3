package kmap_test

import (
	"math/bits"
	"strings"
	"testing"

	"github.com/db47h/kmap"
)

func TestGrayAdjacency(t *testing.T) {
	for r := 0; r < kmap.Side; r++ {
		for c := 0; c < kmap.Side; c++ {
			m := kmap.Minterm(r, c)
			for _, n := range []int{
				kmap.Minterm((r+1)%kmap.Side, c),
				kmap.Minterm(r, (c+1)%kmap.Side),
			} {
				if d := bits.OnesCount(uint(m ^ n)); d != 1 {
					t.Errorf("(%d,%d): minterms %d and %d differ by %d bits", r, c, m, n, d)
				}
			}
		}
	}
}

func TestPosition(t *testing.T) {
	seen := make(map[int]bool)
	for m := 0; m < kmap.Size; m++ {
		r, c := kmap.Position(m)
		if got := kmap.Minterm(r, c); got != m {
			t.Errorf("Minterm(Position(%d)) = %d", m, got)
		}
		seen[r*kmap.Side+c] = true
	}
	if len(seen) != kmap.Size {
		t.Errorf("expected %d distinct positions, got %d", kmap.Size, len(seen))
	}
	// A'BC'D
	if r, c := kmap.Position(5); r != 1 || c != 1 {
		t.Errorf("Position(5) = (%d,%d), expected (1,1)", r, c)
	}
	// AB'CD'
	if r, c := kmap.Position(10); r != 3 || c != 3 {
		t.Errorf("Position(10) = (%d,%d), expected (3,3)", r, c)
	}
}

func TestNewGrid(t *testing.T) {
	vs := make([]kmap.CellValue, kmap.Size)
	vs[3] = kmap.True
	vs[7] = kmap.DontCare
	g, err := kmap.NewGrid(vs)
	if err != nil {
		t.Fatal(err)
	}
	if g.ValueAt(3) != kmap.True || g.ValueAt(7) != kmap.DontCare || g.ValueAt(0) != kmap.False {
		t.Errorf("unexpected grid %v", g.Notation())
	}

	td := []struct {
		vs  []kmap.CellValue
		err string
	}{
		{nil, "expected 16 cell values, got 0"},
		{make([]kmap.CellValue, 17), "expected 16 cell values, got 17"},
		{append(make([]kmap.CellValue, 15), 3), "invalid value 3 for minterm 15"},
		{append([]kmap.CellValue{-1}, make([]kmap.CellValue, 15)...), "invalid value -1 for minterm 0"},
	}
	for _, d := range td {
		if _, err := kmap.NewGrid(d.vs); err == nil || err.Error() != d.err {
			t.Errorf("expected error %q, got %v", d.err, err)
		}
	}
}

func TestGrid_Cycle(t *testing.T) {
	var g kmap.Grid
	seq := []kmap.CellValue{kmap.True, kmap.DontCare, kmap.False, kmap.True}
	for _, v := range seq {
		prev := g
		g = g.Cycle(6)
		if g.ValueAt(6) != v {
			t.Fatalf("expected %v after cycle, got %v", v, g.ValueAt(6))
		}
		if prev.ValueAt(6) == v {
			t.Fatal("Cycle modified its receiver")
		}
	}
	g = g.Set(6, kmap.False).Set(2, kmap.DontCare)
	if g.Notation() != "d(2)" {
		t.Fatalf("unexpected grid %s", g.Notation())
	}
}

func TestGrid_String(t *testing.T) {
	g, err := kmap.ParseGrid("m(4, 5) + d(10)")
	if err != nil {
		t.Fatal(err)
	}
	ex := strings.Join([]string{
		`AB\CD  00  01  11  10`,
		`   00   0   0   0   0`,
		`   01   1   1   0   0`,
		`   11   0   0   0   0`,
		`   10   0   0   0   X`,
		``}, "\n")
	if s := g.String(); s != ex {
		t.Errorf("expected:\n%s\ngot:\n%s", ex, s)
	}
}

func TestCellValue_String(t *testing.T) {
	td := []struct {
		v kmap.CellValue
		s string
	}{
		{kmap.False, "0"}, {kmap.True, "1"}, {kmap.DontCare, "X"}, {kmap.CellValue(7), "CellValue(7)"},
	}
	for _, d := range td {
		if s := d.v.String(); s != d.s {
			t.Errorf("expected %q, got %q", d.s, s)
		}
	}
}
