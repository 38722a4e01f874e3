// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kmap

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/db47h/kmap/internal/notation"
	"github.com/pkg/errors"
)

// ParseGrid parses a textual description of a grid. Two forms are accepted:
//
// A minterm list, where m(...) lists the true cells and d(...) the don't-care
// cells. All other cells are false:
//
//	m(0, 2) + d(8, 10)
//
// A table of exactly 16 symbols indexed by minterm, where 0 is false, 1 is true
// and x, X or - is a don't-care. White space is ignored:
//
//	1010 0000 x0x0 0000
//
func ParseGrid(s string) (Grid, error) {
	if t, ok := tableForm(s); ok {
		return parseTable(t)
	}
	var g Grid
	ms, err := notation.ParseMinterms(s)
	if err != nil {
		return g, err
	}
	set := func(idx []int, v CellValue) error {
		for _, m := range idx {
			if m < 0 || m >= Size {
				return errors.Errorf("in %q: minterm %d out of range [0,%d]", s, m, Size-1)
			}
			if g[m] != False {
				return errors.Errorf("in %q: minterm %d listed more than once", s, m)
			}
			g[m] = v
		}
		return nil
	}
	if err = set(ms.On, True); err != nil {
		return Grid{}, err
	}
	if err = set(ms.DC, DontCare); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// tableForm strips white space from s and reports whether the result only
// contains table symbols.
//
func tableForm(s string) (string, bool) {
	t := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if t == "" {
		return "", false
	}
	for _, r := range t {
		switch r {
		case '0', '1', 'x', 'X', '-':
		default:
			return "", false
		}
	}
	return t, true
}

func parseTable(t string) (Grid, error) {
	var g Grid
	if len(t) != Size {
		return g, errors.Errorf("truth table %q: expected %d cells, got %d", t, Size, len(t))
	}
	for m, r := range t {
		switch r {
		case '0':
			g[m] = False
		case '1':
			g[m] = True
		default:
			g[m] = DontCare
		}
	}
	return g, nil
}

// Notation returns the minterm list form of g, suitable for ParseGrid.
//
func (g Grid) Notation() string {
	var b strings.Builder
	group := func(name string, ms []int) {
		if len(ms) == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(name)
		b.WriteByte('(')
		for i, m := range ms {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(m))
		}
		b.WriteByte(')')
	}
	group("m", g.Minterms(True))
	group("d", g.Minterms(DontCare))
	if b.Len() == 0 {
		return "m()"
	}
	return b.String()
}
