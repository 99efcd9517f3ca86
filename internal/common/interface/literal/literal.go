// Released under an MIT license. See LICENSE.

// Package literal renders jester values as text.
package literal

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/list"
	"github.com/michaelmacinnis/jester/internal/common/type/str"
	"github.com/michaelmacinnis/jester/internal/common/type/sym"
)

// I (literal) is any type that can be expressed as an escaped literal.
type I interface {
	Literal() string
}

// Namer recovers the name a slot was registered under.
type Namer interface {
	IsExpression(s *slot.T) bool
	NameOf(s *slot.T) (string, bool)
}

// Display returns the text for c with strings in double quotes.
func Display(c cell.I, n Namer) string {
	var b strings.Builder

	write(&b, c, n, true)

	return b.String()
}

// Escaped returns the escaped literal text for c, if it has one.
func Escaped(c cell.I) (string, bool) {
	l, ok := c.(I)
	if !ok {
		return "", false
	}

	return l.Literal(), true
}

// String returns the text for c with strings as they are.
func String(c cell.I, n Namer) string {
	var b strings.Builder

	write(&b, c, n, false)

	return b.String()
}

func reference(b *strings.Builder, s *slot.T, n Namer, quoted bool) {
	if n.IsExpression(s) {
		// A sub-expression displays as the code it holds.
		write(b, s.Get(), n, quoted)

		return
	}

	if name, ok := n.NameOf(s); ok {
		b.WriteString(name)

		return
	}

	write(b, s.Get(), n, quoted)
}

func write(b *strings.Builder, c cell.I, n Namer, quoted bool) {
	switch t := c.(type) {
	case *list.T:
		b.WriteByte('(')

		for i, s := range t.Node().View(0).Slots() {
			if i > 0 {
				b.WriteByte(' ')
			}

			// List elements always show strings quoted.
			write(b, s.Get(), n, true)
		}

		b.WriteByte(')')

	case *str.T:
		if quoted {
			b.WriteString(`"` + t.String() + `"`)
		} else {
			b.WriteString(t.String())
		}

	case *sym.T:
		reference(b, t.Ref(), n, quoted)

	case fmt.Stringer:
		b.WriteString(t.String())

	default:
		b.WriteString(c.Name())
	}
}
