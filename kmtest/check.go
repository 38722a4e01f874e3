// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package kmtest provides utility functions for testing minimization results.
//
package kmtest

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/db47h/kmap"
	"github.com/db47h/kmap/internal/notation"
	"github.com/db47h/kmap/netlist"
)

// RandomGrid returns a random grid where each cell is False, True or DontCare
// with the given probabilities in percent. The remaining percentage goes to
// False.
//
func RandomGrid(rnd *rand.Rand, truePct, dcPct int) kmap.Grid {
	var g kmap.Grid
	for m := range g {
		switch p := rnd.Intn(100); {
		case p < truePct:
			g[m] = kmap.True
		case p < truePct+dcPct:
			g[m] = kmap.DontCare
		default:
			g[m] = kmap.False
		}
	}
	return g
}

func varValue(m int) func(v rune) bool {
	return func(v rune) bool {
		return m>>uint('D'-v)&1 == 1
	}
}

// Check checks that r is a correct sum-of-products expression for g. The
// expression is evaluated for every minterm in three independent ways: by
// parsing the Equation string, by simulating its gate level realization and
// with kmap.Verify. Check also checks that the Equation matches the Terms, and
// that all true cells are spanned by a term.
//
func Check(t testing.TB, g kmap.Grid, r kmap.Result) {
	t.Helper()

	lits := make([]string, len(r.Terms))
	for i, tr := range r.Terms {
		lits[i] = tr.Literals
		if tr.Literals != tr.Term.String() {
			t.Errorf("%s: term %d: literals %q do not match term %s", g.Notation(), i, tr.Literals, tr.Term)
		}
	}
	if len(lits) == 0 {
		if r.Equation != "0" {
			t.Errorf("%s: expected equation 0 for an empty term list, got %q", g.Notation(), r.Equation)
		}
	} else if eq := strings.Join(lits, " + "); r.Equation != eq {
		t.Errorf("%s: equation %q does not match terms %q", g.Notation(), r.Equation, eq)
	}

	e, err := notation.ParseSOP(r.Equation)
	if err != nil {
		t.Fatalf("%s: %v", g.Notation(), err)
	}
	c := netlist.Build(r)

	for m, v := range g {
		if v == kmap.DontCare {
			continue
		}
		ex := v == kmap.True
		if got := e.Eval(varValue(m)); got != ex {
			t.Errorf("%s: %s at minterm %d: expected %v, got %v", g.Notation(), r.Equation, m, ex, got)
		}
		if got := c.Eval(m); got != ex {
			t.Errorf("%s: circuit for %s at minterm %d: expected %v, got %v", g.Notation(), r.Equation, m, ex, got)
		}
	}

	if err := kmap.Verify(g, r); err != nil {
		t.Errorf("%s: %v", g.Notation(), err)
	}
}
