// Released under an MIT license. See LICENSE.

// Package truth decides the truth value of jester values.
package truth

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/type/null"
)

// I (truth) is anything with its own truth value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell. Nil is false. Types without
// their own truth value are true.
func Value(c cell.I) bool {
	if c == nil || null.Is(c) {
		return false
	}

	if b, ok := c.(I); ok {
		return b.Bool()
	}

	return true
}
