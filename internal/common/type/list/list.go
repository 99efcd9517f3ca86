// Released under an MIT license. See LICENSE.

// Package list provides jester's list type. A list is a node of slots and
// represents both source expressions and runtime data.
package list

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
)

const name = "list"

// T (list) wraps a node.
type T struct {
	n *node.T
}

type list = T

// New creates a list from the node n.
func New(n *node.T) *list {
	if n == nil {
		n = node.New()
	}

	return &list{n: n}
}

// Of creates a list with a fresh slot for each cell in cs.
func Of(cs ...cell.I) *list {
	return New(node.Of(cs...))
}

// Copy creates a list with a new node that shares the slots of l.
// Structural changes to one are not seen by the other.
func (l *list) Copy() *list {
	return New(l.n.Copy())
}

// Equal returns true if c is a list with the same slots as l.
func (l *list) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c).n
	if l.n.Len() != o.Len() {
		return false
	}

	for i := 0; i < l.n.Len(); i++ {
		a, _ := l.n.Get(i)
		b, _ := o.Get(i)

		if a != b {
			return false
		}
	}

	return true
}

// Len returns the number of elements in l.
func (l *list) Len() int {
	return l.n.Len()
}

// Name returns the type name for the list l.
func (l *list) Name() string {
	return name
}

// Node returns the node underlying the list l.
func (l *list) Node() *node.T {
	return l.n
}

// Cast returns c as a list or a MisType error.
func Cast(c cell.I) (*list, error) {
	if t, ok := c.(*list); ok {
		return t, nil
	}

	return nil, errsys.New(errsys.MisType, "expected %s, got %s", name, c.Name())
}

// Is returns true if c is a list.
func Is(c cell.I) bool {
	_, ok := c.(*list)

	return ok
}

// To returns a list if c is a list; Otherwise it panics.
func To(c cell.I) *list {
	if t, ok := c.(*list); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)
}
