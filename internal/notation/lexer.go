// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package notation implements the lexer and parsers for the textual notations
// used to describe Boolean functions: minterm lists and sum-of-products
// expressions.
//
package notation

import (
	"strings"
	"unicode"

	"github.com/db47h/kmap/internal/lex"
)

// Tokens
const (
	EOF lex.Type = lex.EOF
	Raw lex.Type = iota
	Ident
	Var
	Int
	ParenOpen
	ParenClose
	Comma
	Plus
	Tick
)

const maxInt = 1 << 30

// Lexer returns a new lexer for minterm lists and SOP expressions.
//
func Lexer(input string) *lex.Lexer {
	return lex.New(input, lexInit)
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
	case 'A' <= r && r <= 'Z':
		l.Emit(Var, r)
	case 'a' <= r && r <= 'z' || r == '_':
		return lexIdent
	case '0' <= r && r <= '9':
		return lexNumber
	case r == '(':
		l.Emit(ParenOpen, "(")
	case r == ')':
		l.Emit(ParenClose, ")")
	case r == ',':
		l.Emit(Comma, ",")
	case r == '+':
		l.Emit(Plus, "+")
	case r == '\'':
		l.Emit(Tick, "'")
	default:
		l.Emit(Raw, r)
		return lexEOF
	}
	return nil
}

func lexNumber(l *lex.Lexer) lex.StateFn {
	i := int(l.Current() - '0')
	r := l.Next()
	for '0' <= r && r <= '9' {
		// saturate; callers reject out of range values anyway
		if i < maxInt {
			i = i*10 + int(r-'0')
		}
		r = l.Next()
	}
	l.Backup()
	l.Emit(Int, i)
	return nil
}

func lexIdent(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.Grow(8)
	buf.WriteRune(l.Current())
	r := l.Next()
	for 'a' <= r && r <= 'z' || unicode.IsDigit(r) || r == '_' {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Ident, buf.String())
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, "end of input")
	return lexEOF
}
