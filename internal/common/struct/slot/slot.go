// Released under an MIT license. See LICENSE.

// Package slot provides jester's shared, mutable value cell.
//
// Every binding, every list element and every node of parsed source is a
// slot. Slots are compared by identity: two slots holding equal values are
// still different slots.
package slot

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
)

// T (slot) holds a cell value.
type T struct {
	c cell.I
}

type slot = T

// New creates a new slot with the cell c.
func New(c cell.I) *slot {
	return &slot{c: c}
}

// Copy creates a new slot with the same cell as slot s.
func (s *slot) Copy() *slot {
	return New(s.Get())
}

// Get returns the cell in slot s.
func (s *slot) Get() cell.I {
	return s.c
}

// Same returns true if o is the slot s.
func (s *slot) Same(o *slot) bool {
	return s == o
}

// Set replaces the cell in slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.c = c
}
