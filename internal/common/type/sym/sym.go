// Released under an MIT license. See LICENSE.

// Package sym provides jester's symbol type: a quoted reference to a slot.
package sym

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
)

const name = "quote"

// T (sym) refers to a slot. Evaluating a sym dereferences it once.
type T struct {
	ref *slot.T
}

type sym = T

// New creates a sym referring to the slot s.
func New(s *slot.T) *sym {
	if s == nil {
		panic("symbol must refer to a slot")
	}

	return &sym{ref: s}
}

// Equal returns true if c is a sym referring to the same slot as s.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.ref == To(c).ref
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// Ref returns the slot the sym s refers to.
func (s *sym) Ref() *slot.T {
	return s.ref
}

// Assign replaces the value in the slot referred to by c with v.
// Assigning through anything other than a sym is a programming error.
func Assign(c, v cell.I) {
	if v == nil {
		panic("cannot assign a nil cell")
	}

	To(c).ref.Set(v)
}

// Cast returns c as a sym or a MisType error.
func Cast(c cell.I) (*sym, error) {
	if t, ok := c.(*sym); ok {
		return t, nil
	}

	return nil, errsys.New(errsys.MisType, "expected %s, got %s", name, c.Name())
}

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a sym if c is a sym; Otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic(c.Name() + " cannot be assigned through")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)
}
