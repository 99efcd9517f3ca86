// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the jester language.
//
// The jester lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/jester/internal/common/struct/loc"
	"github.com/michaelmacinnis/jester/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	line  int    // Line of the current byte.
	runes int    // Runes scanned on the current line.
	saved action // Escaped action.
	state action // Current action.

	source loc.T // Location of the current token's first byte.

	tokens []*token.T
}

// New creates a new T for scanning text. Label can be a file name or
// other identifier.
func New(label, text string) *T {
	return &T{
		bytes: text,
		line:  1,
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		state: skipWhitespace,
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if there are no more tokens.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.source))
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped

	return a
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil

	return resumed
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.source.Line = l.line
	l.first = l.index
}

// T states.

func escapeNextCharacter(l *T) action {
	if l.next() == eof {
		l.emit(token.Error, "unterminated string "+l.Text())

		return nil
	}

	return l.resume()
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.emit(token.Error, "unterminated string "+l.Text())

			return nil
		case '"':
			l.emit(token.Symbol, l.Text())

			return skipWhitespace
		case '\\':
			return l.escape(scanString, escapeNextCharacter)
		}
	}
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.emit(token.Symbol, l.Text())

			return nil
		case delimiter(r):
			l.emit(token.Symbol, l.Text())

			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func skipComment(l *T) action {
	for {
		switch l.next() {
		case eof:
			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case ';':
			l.accept(r, w)

			return skipComment
		case '"':
			l.accept(r, w)

			return scanString
		case '(', ')', '\'', ',':
			l.accept(r, w)
			l.emit(token.Class(r), l.Text())
		case '[', ']', '{', '}':
			l.accept(r, w)
			l.emit(token.Symbol, l.Text())
		default:
			if !unicode.IsSpace(r) {
				return scanSymbol
			}

			l.accept(r, w)
			l.skip()
		}
	}
}

// Helper functions (well, function).

func delimiter(r rune) bool {
	switch r {
	case '(', ')', '\'', ',', ';', '"', '[', ']', '{', '}':
		return true
	}

	return unicode.IsSpace(r)
}
