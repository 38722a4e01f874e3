// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kmap

// An Implicant is a region selected to cover true cells, together with its
// product term and the true cells it covered first.
//
type Implicant struct {
	Term    Term
	Region  Region
	Covered []int // true cells not covered by previous implicants, ascending
}

// A Cover is an ordered list of implicants that covers all true cells of a
// grid.
//
type Cover []Implicant

var catalogMasks = func() []uint16 {
	ms := make([]uint16, len(catalog))
	for i, r := range catalog {
		ms[i] = r.Mask()
	}
	return ms
}()

// fullRegion spans the whole map.
//
var fullRegion = Region{Height: Side, Width: Side}

// masks returns the bit sets of cells holding each value in g.
//
func (g Grid) masks() (trues, falses uint16) {
	for m, v := range g {
		switch v {
		case True:
			trues |= 1 << uint(m)
		case False:
			falses |= 1 << uint(m)
		}
	}
	return trues, falses
}

// Valid reports whether r contains no false cell of g.
//
// Valid is a convenience for callers checking a single region. It scans the
// whole grid on each call; Select and Primes compute the masks once and test
// the catalog against them.
//
func (g Grid) Valid(r Region) bool {
	_, falses := g.masks()
	return r.Mask()&falses == 0
}

// Select greedily selects regions covering all true cells of g.
//
// Regions are examined in catalog order (see Catalog). A region containing a
// false cell is skipped. Otherwise it is selected if it contains at least one
// true cell not covered by previously selected regions. Scanning stops as soon
// as all true cells are covered.
//
// If g has no true cell, the cover is empty. If g has no false cell, the
// cover is a single implicant spanning the whole map with the constant term 1.
//
// This is a heuristic: the result is always a correct cover of g but it is not
// guaranteed to have the smallest possible number of terms. See SelectExact.
//
func Select(g Grid) Cover {
	trues, falses := g.masks()
	if trues == 0 {
		return Cover{}
	}
	if falses == 0 {
		return Cover{{Term: Term{}, Region: fullRegion, Covered: bits(trues)}}
	}

	var (
		covered uint16
		cover   = Cover{}
	)
	for i, m := range catalogMasks {
		if m&falses != 0 {
			continue
		}
		newly := m & trues &^ covered
		if newly == 0 {
			continue
		}
		r := catalog[i]
		cover = append(cover, Implicant{Term: TermOf(r), Region: r, Covered: bits(newly)})
		covered |= newly
		if covered == trues {
			break
		}
	}
	return cover
}

// bits returns the indices of bits set in s in ascending order.
//
func bits(s uint16) []int {
	var ms []int
	for m := 0; m < Size; m++ {
		if s&(1<<uint(m)) != 0 {
			ms = append(ms, m)
		}
	}
	return ms
}
