// Released under an MIT license. See LICENSE.

// Package null provides jester's nil value.
package null

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
)

const name = "nil"

// T (null) is the type of the single nil value.
type T struct{}

type null = T

// Nil is the absence of a value. It is also the value of unbound names.
var Nil cell.I = &null{} //nolint:gochecknoglobals

// Equal returns true if c is nil.
func (n *null) Equal(c cell.I) bool {
	return Is(c)
}

// Name returns the type name for nil.
func (n *null) Name() string {
	return name
}

// String returns the text for nil.
func (n *null) String() string {
	return name
}

// Is returns true if c is nil.
func Is(c cell.I) bool {
	_, ok := c.(*null)

	return ok
}
