// Released under an MIT license. See LICENSE.

// Package create provides helper functions for creating jester values.
package create

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/boolean"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/list"
	"github.com/michaelmacinnis/jester/internal/common/type/null"
	"github.com/michaelmacinnis/jester/internal/common/type/num"
	"github.com/michaelmacinnis/jester/internal/common/type/str"
	"github.com/michaelmacinnis/jester/internal/common/type/sym"
)

// Bool returns the jester value corresponding to the value of the boolean a.
func Bool(a bool) cell.I {
	return boolean.Bool(a)
}

// List returns a list holding the values in cs, each in its own slot.
func List(cs ...cell.I) cell.I {
	return list.New(node.Of(cs...))
}

// Literal converts the text of a token to the value it denotes: a number,
// a string or, for anything else, nil.
func Literal(text string) (cell.I, error) {
	c, err := num.Parse(text)
	if err == nil || !errsys.Is(err, errsys.MisForm) {
		return c, err
	}

	c, err = str.Parse(text)
	if err == nil {
		return c, nil
	}

	return null.Nil, nil
}

// Quoted wraps c so that evaluating the result produces c unchanged.
func Quoted(c cell.I) cell.I {
	return sym.New(slot.New(c))
}
