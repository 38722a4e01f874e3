// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kmap

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Size is the number of cells in a 4 variable truth table.
//
const Size = 16

// Side is the number of rows and columns of the map.
//
const Side = 4

// A CellValue is the output value of a Boolean function for a given minterm.
//
type CellValue int

// Cell values.
//
const (
	False CellValue = iota
	True
	DontCare
)

func (v CellValue) String() string {
	switch v {
	case False:
		return "0"
	case True:
		return "1"
	case DontCare:
		return "X"
	}
	return "CellValue(" + strconv.Itoa(int(v)) + ")"
}

func (v CellValue) valid() bool {
	return v >= False && v <= DontCare
}

// A Grid is a 4 variable truth table, indexed by minterm. Bits 3 to 0 of a
// minterm index are the values of variables A, B, C and D respectively.
//
// The zero value is a function that is false everywhere.
//
type Grid [Size]CellValue

// NewGrid returns a Grid built from a slice of exactly 16 cell values.
//
func NewGrid(values []CellValue) (Grid, error) {
	var g Grid
	if len(values) != Size {
		return g, errors.Errorf("expected %d cell values, got %d", Size, len(values))
	}
	for m, v := range values {
		if !v.valid() {
			return g, errors.Errorf("invalid value %d for minterm %d", int(v), m)
		}
		g[m] = v
	}
	return g, nil
}

// ValueAt returns the value of minterm m.
//
func (g Grid) ValueAt(m int) CellValue {
	return g[m]
}

// Set returns a copy of g where minterm m is set to v.
//
func (g Grid) Set(m int, v CellValue) Grid {
	g[m] = v
	return g
}

// Cycle returns a copy of g where the value of minterm m is advanced from
// False to True, True to DontCare, and DontCare back to False.
//
func (g Grid) Cycle(m int) Grid {
	g[m] = (g[m] + 1) % 3
	return g
}

// Minterms returns the minterms holding value v, in ascending order.
//
func (g Grid) Minterms(v CellValue) []int {
	var ms []int
	for m, cv := range g {
		if cv == v {
			ms = append(ms, m)
		}
	}
	return ms
}

// gray maps a row or column position to the 2 bit value of its variables.
// Consecutive entries, including last and first, differ by exactly one bit.
// The mapping is its own inverse.
//
var gray = [Side]int{0, 1, 3, 2}

// Minterm returns the minterm index at the given map position. Rows are the AB
// variables, columns CD, both in Gray code order: 00, 01, 11, 10.
//
func Minterm(row, col int) int {
	return gray[row]<<2 | gray[col]
}

// Position returns the row and column of minterm m on the map.
//
func Position(m int) (row, col int) {
	return gray[m>>2&3], gray[m&3]
}

var rowLabels = [Side]string{"00", "01", "11", "10"}

// String renders g as a Karnaugh map.
//
func (g Grid) String() string {
	var b strings.Builder
	b.WriteString("AB\\CD")
	for _, l := range rowLabels {
		b.WriteString("  ")
		b.WriteString(l)
	}
	b.WriteByte('\n')
	for r := 0; r < Side; r++ {
		b.WriteString("   ")
		b.WriteString(rowLabels[r])
		for c := 0; c < Side; c++ {
			b.WriteString("   ")
			b.WriteString(g[Minterm(r, c)].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
