// Released under an MIT license. See LICENSE.

// Package reader encapsulates the jester lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/struct/token"
	"github.com/michaelmacinnis/jester/internal/reader/lexer"
	"github.com/michaelmacinnis/jester/internal/reader/parser"
)

// Complete returns true if text does not end inside an expression or a
// string. An interactive reader keeps collecting lines until it is.
func Complete(text string) bool {
	depth := 0

	l := lexer.New("", text)
	for t := l.Token(); t != nil; t = l.Token() {
		switch t.Class() {
		case token.Beg:
			depth++
		case token.End:
			depth--
		case token.Error:
			return false
		}
	}

	return depth <= 0
}

// Read parses text, registering its names with r, and returns the program.
// The label names the source of the text in error messages.
func Read(r parser.Registry, label, text string) (*node.T, error) {
	return parser.New(r, lexer.New(label, text).Token).Parse()
}
