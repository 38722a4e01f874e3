// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kmap

import (
	"fmt"
	"sort"
)

// A Region is a rectangular group of cells on the map. Rows and columns wrap
// around, so a Region with its origin on the last row and a height of 2 covers
// the last and first rows.
//
type Region struct {
	Row, Col      int // origin
	Height, Width int // 1, 2 or 4
}

// Area returns the number of cells in r.
//
func (r Region) Area() int { return r.Height * r.Width }

// Cells returns the minterms covered by r, row by row from its origin.
//
func (r Region) Cells() []int {
	cs := make([]int, 0, r.Area())
	for dr := 0; dr < r.Height; dr++ {
		for dc := 0; dc < r.Width; dc++ {
			cs = append(cs, Minterm((r.Row+dr)%Side, (r.Col+dc)%Side))
		}
	}
	return cs
}

// Mask returns the set of minterms covered by r as a bit set where bit m is
// set if minterm m is in r.
//
func (r Region) Mask() uint16 {
	var s uint16
	for _, m := range r.Cells() {
		s |= 1 << uint(m)
	}
	return s
}

// Minterms returns the minterms covered by r in ascending order.
//
func (r Region) Minterms() []int {
	cs := r.Cells()
	sort.Ints(cs)
	return cs
}

func (r Region) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Height, r.Width, r.Row, r.Col)
}

// shapes lists the region shapes by decreasing area. Shapes of equal area are
// grouped together.
//
var shapes = [...][][2]int{
	{{4, 4}},
	{{2, 4}, {4, 2}},
	{{1, 4}, {4, 1}, {2, 2}},
	{{1, 2}, {2, 1}},
	{{1, 1}},
}

var catalog = buildCatalog()

func buildCatalog() []Region {
	rs := make([]Region, 0, 9*Size)
	for _, group := range shapes {
		for row := 0; row < Side; row++ {
			for col := 0; col < Side; col++ {
				for _, s := range group {
					rs = append(rs, Region{Row: row, Col: col, Height: s[0], Width: s[1]})
				}
			}
		}
	}
	return rs
}

// Catalog returns all 144 candidate regions of the map: 9 shapes at 16 origins.
// Regions are ordered by decreasing area, then by ascending origin row and
// column. Regions of equal area sharing the same origin follow the shape order
// 2x4, 4x2, then 1x4, 4x1, 2x2, then 1x2, 2x1.
//
// Regions spanning a full axis are listed once per origin even though they
// cover the same cells.
//
func Catalog() []Region {
	rs := make([]Region, len(catalog))
	copy(rs, catalog)
	return rs
}
