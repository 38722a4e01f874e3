// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package kmap minimizes 4 variable Boolean functions with a Karnaugh map.

A function is given as a Grid: a truth table of 16 cells indexed by minterm,
where each cell is False, True or DontCare. Bits 3 to 0 of a minterm index are
the values of the variables A, B, C and D.

Cells are laid out on a 4x4 map whose rows (AB) and columns (CD) follow the
Gray code order 00, 01, 11, 10, so that neighboring cells, including across
the map edges, differ by exactly one variable. Any rectangle of 1, 2 or 4 rows
by 1, 2 or 4 columns, wrapping around the edges, is therefore a product term.

Minimize selects such rectangles greedily, largest first, until all true cells
are covered:

	g, _ := kmap.ParseGrid("m(4, 5)")
	r := kmap.Minimize(g)
	fmt.Println(r.Equation) // A'BC'

The greedy policy does not guarantee a minimal expression. MinimizeExact
returns an expression with the smallest possible number of terms.

*/
package kmap
