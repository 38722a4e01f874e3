// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package notation

import (
	"github.com/db47h/kmap/internal/lex"
	"github.com/pkg/errors"
)

// Minterms holds the minterm indices listed in a minterm list like
// "m(0, 2, 5) + d(8, 10)". Indices are not range checked and appear in input
// order.
//
type Minterms struct {
	On []int // m(...)
	DC []int // d(...)
}

// ParseMinterms parses a minterm list. Groups are introduced by "m" (true
// cells) or "d" (don't-care cells) and may be separated by "+". Indices within
// a group are separated by commas or white space. Groups may be repeated and
// an empty input yields an empty list.
//
func ParseMinterms(s string) (*Minterms, error) {
	var ms Minterms
	l := Lexer(s)

	i := l.Lex()
	for n := 0; i.Type != EOF; n++ {
		if n > 0 && i.Type == Plus {
			i = l.Lex()
		}
		if i.Type != Ident {
			return nil, parseError(s, i.Pos, "expected m or d")
		}
		var dst *[]int
		switch i.Value.(string) {
		case "m":
			dst = &ms.On
		case "d":
			dst = &ms.DC
		default:
			return nil, parseError(s, i.Pos, "unknown group "+i.Value.(string))
		}
		if i = l.Lex(); i.Type != ParenOpen {
			return nil, parseError(s, i.Pos, "expected opening parenthesis")
		}
		i = l.Lex()
	L:
		for {
			switch i.Type {
			case Int:
				*dst = append(*dst, i.Value.(int))
				i = l.Lex()
				if i.Type == Comma {
					if i = l.Lex(); i.Type != Int {
						return nil, parseError(s, i.Pos, "expected minterm index")
					}
				}
			case ParenClose:
				break L
			default:
				return nil, parseError(s, i.Pos, "expected minterm index or closing parenthesis")
			}
		}
		i = l.Lex()
	}
	return &ms, nil
}

// Literal is a possibly negated variable.
//
type Literal struct {
	Var rune
	Neg bool
}

// Product is a conjunction of literals. An empty Product is the constant 1.
//
type Product []Literal

// SOP is a disjunction of products. An empty SOP is the constant 0.
//
type SOP []Product

// Eval evaluates the expression, using val to get variable values.
//
func (e SOP) Eval(val func(v rune) bool) bool {
	for _, p := range e {
		if p.Eval(val) {
			return true
		}
	}
	return false
}

// Eval evaluates the product, using val to get variable values.
//
func (p Product) Eval(val func(v rune) bool) bool {
	for _, l := range p {
		if val(l.Var) == l.Neg {
			return false
		}
	}
	return true
}

// ParseSOP parses a sum-of-products expression like "A'B + CD'". Variables
// are single upper case letters, negation is a postfix "'". The constants 0
// and 1 are accepted as a whole expression or, for 1, as a product.
//
func ParseSOP(s string) (SOP, error) {
	l := Lexer(s)
	i := l.Lex()
	if i.Type == Int && i.Value.(int) == 0 {
		if i = l.Lex(); i.Type != EOF {
			return nil, parseError(s, i.Pos, "expected end of input after constant 0")
		}
		return SOP{}, nil
	}

	var e SOP
	for {
		p, next, err := parseProduct(s, l, i)
		if err != nil {
			return nil, err
		}
		e = append(e, p)
		switch next.Type {
		case EOF:
			return e, nil
		case Plus:
			i = l.Lex()
		default:
			return nil, parseError(s, next.Pos, "expected + or end of input")
		}
	}
}

// parseProduct parses a product starting at item i. It returns the product
// and the first item following it.
//
func parseProduct(s string, l *lex.Lexer, i lex.Item) (Product, lex.Item, error) {
	if i.Type == Int {
		if i.Value.(int) != 1 {
			return nil, i, parseError(s, i.Pos, "expected variable or constant 1")
		}
		return Product{}, l.Lex(), nil
	}
	if i.Type != Var {
		return nil, i, parseError(s, i.Pos, "expected variable")
	}
	var p Product
	for i.Type == Var {
		lit := Literal{Var: i.Value.(rune)}
		i = l.Lex()
		for i.Type == Tick {
			lit.Neg = !lit.Neg
			i = l.Lex()
		}
		p = append(p, lit)
	}
	return p, i, nil
}

func parseError(in string, pos lex.Pos, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
