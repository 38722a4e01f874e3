// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kmap

import "strings"

// Result is a minimized sum-of-products expression.
//
type Result struct {
	Equation string       `json:"equation"` // like "A + B'C", "0" or "1"
	Terms    []TermResult `json:"terms"`
}

// TermResult is a product term of a Result.
//
type TermResult struct {
	Literals    string `json:"literals"`    // like "A'B" or "1"
	CellIndices []int  `json:"cellIndices"` // minterms spanned by the term's region, ascending

	Term   Term   `json:"-"`
	Region Region `json:"-"`
}

// Build returns the Result for a cover. Terms appear in cover order and the
// equation is the terms joined by " + ", or "0" for an empty cover.
//
func Build(c Cover) Result {
	res := Result{Terms: make([]TermResult, 0, len(c))}
	if len(c) == 0 {
		res.Equation = "0"
		return res
	}
	lits := make([]string, len(c))
	for i, imp := range c {
		lits[i] = imp.Term.String()
		res.Terms = append(res.Terms, TermResult{
			Literals:    lits[i],
			CellIndices: imp.Region.Minterms(),
			Term:        imp.Term,
			Region:      imp.Region,
		})
	}
	res.Equation = strings.Join(lits, " + ")
	return res
}

// Minimize returns a sum-of-products expression for g using the greedy
// selection policy of Select. It is a pure function of g.
//
func Minimize(g Grid) Result {
	return Build(Select(g))
}

// Eval evaluates the expression for minterm m. It relies on the Term fields
// and cannot be used on a Result decoded from JSON.
//
func (r Result) Eval(m int) bool {
	for _, t := range r.Terms {
		if t.Term.Eval(m) {
			return true
		}
	}
	return false
}
