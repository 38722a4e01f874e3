// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kmap

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

// Primes returns the prime implicants of g: the regions that contain at least
// one true cell, no false cell, and are not strictly contained in another such
// region. When several catalog regions cover the same cells, only the first one
// is returned. Regions are returned in catalog order.
//
func Primes(g Grid) []Region {
	rs, _ := primes(g)
	return rs
}

func primes(g Grid) ([]Region, []uint16) {
	trues, falses := g.masks()
	var (
		rs   []Region
		ms   []uint16
		seen = make(map[uint16]bool)
	)
	for i, m := range catalogMasks {
		if m&falses != 0 || m&trues == 0 || seen[m] {
			continue
		}
		seen[m] = true
		prime := true
		for _, o := range catalogMasks {
			if o != m && o&falses == 0 && o&m == m {
				prime = false
				break
			}
		}
		if prime {
			rs = append(rs, catalog[i])
			ms = append(ms, m)
		}
	}
	return rs, ms
}

// SelectExact returns a cover of g with the smallest possible number of
// implicants, chosen among the prime implicants of g.
//
// The minimum is found with a SAT solver. Among the minimum covers, primes are
// preferred in catalog order, which makes the result deterministic.
// Implicants are returned in catalog order. Degenerate grids are handled like
// in Select.
//
func SelectExact(g Grid) (Cover, error) {
	trues, falses := g.masks()
	if trues == 0 || falses == 0 {
		return Select(g), nil
	}
	rs, ms := primes(g)
	p := &coverProblem{trues: trues, primes: ms}

	k := 1
	for ; k < len(ms); k++ {
		sat, err := p.solve(k, nil)
		if err != nil {
			return nil, err
		}
		if sat {
			break
		}
	}

	decided := make([]z.Lit, 0, len(ms))
	for i := range ms {
		sel := primeLit(i)
		sat, err := p.solve(k, append(decided, sel))
		if err != nil {
			return nil, err
		}
		if sat {
			decided = append(decided, sel)
		} else {
			decided = append(decided, sel.Not())
		}
	}

	var (
		covered uint16
		cover   = Cover{}
	)
	for i, l := range decided {
		if !l.IsPos() {
			continue
		}
		cover = append(cover, Implicant{Term: TermOf(rs[i]), Region: rs[i], Covered: bits(ms[i] & trues &^ covered)})
		covered |= ms[i]
	}
	if covered&trues != trues {
		return nil, errors.New("exact cover does not cover all true cells")
	}
	return cover, nil
}

// MinimizeExact returns a sum-of-products expression for g with the smallest
// possible number of terms. See SelectExact.
//
func MinimizeExact(g Grid) (Result, error) {
	c, err := SelectExact(g)
	if err != nil {
		return Result{}, errors.Wrap(err, "exact minimization failed")
	}
	return Build(c), nil
}

// coverProblem is a minimum set cover problem over prime implicants.
//
type coverProblem struct {
	trues  uint16
	primes []uint16
}

// primeLit returns the literal selecting prime i. Variable 0 is reserved.
//
func primeLit(i int) z.Lit {
	return z.Var(i + 1).Pos()
}

// solve reports whether the true cells can be covered by at most k primes
// under the given assumptions.
//
func (p *coverProblem) solve(k int, assumptions []z.Lit) (bool, error) {
	s := gini.New()

	// each true cell is covered by at least one selected prime
	for m := 0; m < Size; m++ {
		if p.trues&(1<<uint(m)) == 0 {
			continue
		}
		for i, pm := range p.primes {
			if pm&(1<<uint(m)) != 0 {
				s.Add(primeLit(i))
			}
		}
		s.Add(z.LitNull)
	}

	xs := make([]z.Lit, len(p.primes))
	for i := range xs {
		xs[i] = primeLit(i)
	}
	atMost(s, xs, k, z.Var(len(xs)+1))

	if len(assumptions) > 0 {
		s.Assume(assumptions...)
	}
	switch s.Solve() {
	case 1:
		return true, nil
	case -1:
		return false, nil
	}
	return false, errors.Errorf("solver returned unknown for k=%d", k)
}

// atMost adds clauses to s enforcing that at most k literals of xs are true,
// using a sequential counter. Auxiliary variables are allocated from first.
//
func atMost(s *gini.Gini, xs []z.Lit, k int, first z.Var) {
	n := len(xs)
	if k >= n {
		return
	}
	clause := func(ms ...z.Lit) {
		for _, m := range ms {
			s.Add(m)
		}
		s.Add(z.LitNull)
	}
	if k <= 0 {
		for _, x := range xs {
			clause(x.Not())
		}
		return
	}
	// r(i, j) is true if at least j+1 of xs[0..i] are true.
	r := func(i, j int) z.Lit {
		return (first + z.Var(i*k+j)).Pos()
	}

	clause(xs[0].Not(), r(0, 0))
	for j := 1; j < k; j++ {
		clause(r(0, j).Not())
	}
	for i := 1; i < n-1; i++ {
		clause(xs[i].Not(), r(i, 0))
		clause(r(i-1, 0).Not(), r(i, 0))
		for j := 1; j < k; j++ {
			clause(xs[i].Not(), r(i-1, j-1).Not(), r(i, j))
			clause(r(i-1, j).Not(), r(i, j))
		}
		clause(xs[i].Not(), r(i-1, k-1).Not())
	}
	clause(xs[n-1].Not(), r(n-2, k-1).Not())
}
