// Released under an MIT license. See LICENSE.

// Package frame provides jester's saved bindings type.
//
// jester has a single, flat namespace. A call temporarily rebinds the
// slots of its parameters. The frame remembers what those slots held so
// that they can be put back when the call returns.
package frame

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
)

type saved struct {
	c cell.I
	s *slot.T
}

// T (frame) is a set of saved bindings.
type T struct {
	saved []saved
}

type frame = T

// New creates a new frame with room for n bindings.
func New(n int) *frame {
	return &frame{saved: make([]saved, 0, n)}
}

// Bind saves the value in s and then replaces it with c.
func (f *frame) Bind(s *slot.T, c cell.I) {
	f.saved = append(f.saved, saved{c: s.Get(), s: s})
	s.Set(c)
}

// Len returns the number of bindings saved in the frame f.
func (f *frame) Len() int {
	return len(f.saved)
}

// Restore puts back every saved value, most recent first.
// Restoring a slot bound twice leaves the oldest value.
func (f *frame) Restore() {
	for i := len(f.saved) - 1; i >= 0; i-- {
		f.saved[i].s.Set(f.saved[i].c)
	}

	f.saved = f.saved[:0]
}
