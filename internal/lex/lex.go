// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lex provides a minimal state function based lexer.
//
// A lexer is driven by StateFn's. The initial state function is called each
// time the lexer needs a new item and has no pending state. A state function
// reads runes with Next, emits zero or more items with Emit and returns the
// next state, or nil to go back to the initial state.
//
package lex

import "unicode/utf8"

// EOF is both the rune returned by Next at end of input and the item type
// emitted by lexers when they reach the end of input.
//
const EOF = -1

// Type is the type of a lexical item.
//
type Type int

// Pos is a byte offset in the lexer input.
//
type Pos int

// Item is a lexical item.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

// A StateFn is a lexer state function.
//
type StateFn func(l *Lexer) StateFn

// Lexer holds the state of a lexer.
//
type Lexer struct {
	input string
	init  StateFn
	state StateFn
	items []Item

	start Pos  // start of the current item
	pos   Pos  // position of the next rune
	width int  // width of the last rune read
	cur   rune // last rune read
}

// New returns a new lexer for the given input.
//
func New(input string, init StateFn) *Lexer {
	return &Lexer{input: input, init: init}
}

// Lex returns the next item.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		st := l.state
		if st == nil {
			st = l.init
			l.start = l.pos
		}
		l.state = st(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// Next reads the next rune.
//
func (l *Lexer) Next() rune {
	if int(l.pos) >= len(l.input) {
		l.width = 0
		l.cur = EOF
		return EOF
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += Pos(w)
	l.cur = r
	return r
}

// Backup unreads the last rune. It can only be called once per call to Next.
//
func (l *Lexer) Backup() {
	l.pos -= Pos(l.width)
	l.width = 0
}

// Current returns the last rune read.
//
func (l *Lexer) Current() rune {
	return l.cur
}

// Pos returns the position of the last rune read.
//
func (l *Lexer) Pos() Pos {
	return l.pos - Pos(l.width)
}

// AcceptWhile reads runes for as long as f returns true. The first rune for
// which f returns false is unread.
//
func (l *Lexer) AcceptWhile(f func(r rune) bool) {
	for r := l.Next(); r != EOF && f(r); r = l.Next() {
	}
	l.Backup()
}

// Emit emits an item of type t with value v. The item's position is the
// position of the first rune read since the lexer last returned to its
// initial state.
//
func (l *Lexer) Emit(t Type, v interface{}) {
	l.items = append(l.items, Item{Type: t, Pos: l.start, Value: v})
}
