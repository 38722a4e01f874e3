// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kmap

import (
	"github.com/dalzilio/rudd"
	"github.com/pkg/errors"
)

// Verify checks that r is a correct expression for g: it must be true for all
// true cells of g and false for all false cells. Don't-care cells are not
// checked. It also checks that every true cell is spanned by at least one of
// the result's terms.
//
// The check is done symbolically with binary decision diagrams built from the
// result's terms, with variable A at level 0.
//
func Verify(g Grid, r Result) error {
	bdd, err := rudd.New(varCount)
	if err != nil {
		return errors.Wrap(err, "failed to create BDD")
	}

	f := bdd.False()
	for _, t := range r.Terms {
		f = bdd.Or(f, termNode(bdd, t.Term))
	}
	for m, v := range g {
		if v == DontCare {
			continue
		}
		in := bdd.And(f, mintermNode(bdd, m))
		switch {
		case v == True && bdd.Equal(in, bdd.False()):
			return errors.Errorf("%s is false for true minterm %d", r.Equation, m)
		case v == False && !bdd.Equal(in, bdd.False()):
			return errors.Errorf("%s is true for false minterm %d", r.Equation, m)
		}
	}
	if bdd.Errored() {
		return errors.New(bdd.Error())
	}

	for _, m := range g.Minterms(True) {
		if !spanned(r, m) {
			return errors.Errorf("true minterm %d is not spanned by any term", m)
		}
	}
	return nil
}

func spanned(r Result, m int) bool {
	for _, t := range r.Terms {
		for _, c := range t.CellIndices {
			if c == m {
				return true
			}
		}
	}
	return false
}

func termNode(bdd *rudd.BDD, t Term) rudd.Node {
	n := bdd.True()
	for _, l := range t {
		if l.Neg {
			n = bdd.And(n, bdd.NIthvar(l.Var))
		} else {
			n = bdd.And(n, bdd.Ithvar(l.Var))
		}
	}
	return n
}

func mintermNode(bdd *rudd.BDD, m int) rudd.Node {
	t := make(Term, varCount)
	for v := range t {
		t[v] = Literal{Var: v, Neg: m>>bit(v)&1 == 0}
	}
	return termNode(bdd, t)
}
