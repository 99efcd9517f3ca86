// Released under an MIT license. See LICENSE.

// Package hash provides jester's name to slot mapping type.
package hash

import (
	"sort"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
)

// T (hash) maps names to slots and slots back to names.
type T struct {
	m map[string]*slot.T
	r map[*slot.T]string
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{
		m: map[string]*slot.T{},
		r: map[*slot.T]string{},
	}
}

// Add associates the name k with a new slot holding v.
// It returns the new slot and true, or the existing slot and false.
func (h *hash) Add(k string, v cell.I) (*slot.T, bool) {
	if s, ok := h.m[k]; ok {
		return s, false
	}

	s := slot.New(v)

	h.m[k] = s
	h.r[s] = k

	return s, true
}

// Get retrieves the slot associated with the name k in the hash h.
func (h *hash) Get(k string) *slot.T {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Keys returns the names in the hash h in sorted order.
func (h *hash) Keys() []string {
	ks := make([]string, 0, len(h.m))
	for k := range h.m {
		ks = append(ks, k)
	}

	sort.Strings(ks)

	return ks
}

// NameOf returns the name that the slot s was added under.
func (h *hash) NameOf(s *slot.T) (string, bool) {
	if h == nil {
		return "", false
	}

	k, ok := h.r[s]

	return k, ok
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	return len(h.m)
}
