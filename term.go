// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kmap

import "strings"

// Variables, most significant first.
//
const (
	VarA = iota
	VarB
	VarC
	VarD
	varCount
)

var varNames = [varCount]string{"A", "B", "C", "D"}

// bit returns the minterm bit holding the value of variable v.
//
func bit(v int) uint { return uint(varCount - 1 - v) }

// A Literal is a possibly negated variable.
//
type Literal struct {
	Var int // VarA to VarD
	Neg bool
}

func (l Literal) String() string {
	if l.Neg {
		return varNames[l.Var] + "'"
	}
	return varNames[l.Var]
}

// Eval returns the value of l for minterm m.
//
func (l Literal) Eval(m int) bool {
	return (m>>bit(l.Var)&1 == 1) != l.Neg
}

// A Term is a product of literals, ordered by variable. The empty Term is the
// constant 1.
//
type Term []Literal

// String returns the printable form of t, like "A'BC'", or "1" if t is empty.
//
func (t Term) String() string {
	if len(t) == 0 {
		return "1"
	}
	var b strings.Builder
	for _, l := range t {
		b.WriteString(l.String())
	}
	return b.String()
}

// Eval returns the value of t for minterm m.
//
func (t Term) Eval(m int) bool {
	for _, l := range t {
		if !l.Eval(m) {
			return false
		}
	}
	return true
}

// TermOf returns the product term matching exactly the cells of r. Variables
// that are 1 in every cell appear as is, those that are 0 in every cell are
// negated, and the others are eliminated.
//
func TermOf(r Region) Term {
	ones, zeros := Size-1, Size-1
	for _, m := range r.Cells() {
		ones &= m
		zeros &= ^m
	}
	t := Term{}
	for v := VarA; v < varCount; v++ {
		b := bit(v)
		switch {
		case ones>>b&1 == 1:
			t = append(t, Literal{Var: v})
		case zeros>>b&1 == 1:
			t = append(t, Literal{Var: v, Neg: true})
		}
	}
	return t
}
