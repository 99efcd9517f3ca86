// Released under an MIT license. See LICENSE.

// Package node provides the ordered sequence of slots used for both
// parsed source and runtime lists.
package node

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
)

// T (node) is a growable sequence of shared slots.
type T struct {
	slots []*slot.T
}

type node = T

// New creates a node holding the slots in ss.
func New(ss ...*slot.T) *node {
	n := &node{}
	if len(ss) > 0 {
		n.slots = append(make([]*slot.T, 0, len(ss)), ss...)
	}

	return n
}

// Of creates a node with a fresh slot for each cell in cs.
func Of(cs ...cell.I) *node {
	n := &node{slots: make([]*slot.T, len(cs))}
	for i, c := range cs {
		n.slots[i] = slot.New(c)
	}

	return n
}

// Copy creates a new node that shares every slot in n.
func (n *node) Copy() *node {
	return New(n.slots...)
}

// Get returns the slot at index i.
func (n *node) Get(i int) (*slot.T, error) {
	if i < 0 || i >= n.Len() {
		return nil, outOfBound(i, n.Len())
	}

	return n.slots[i], nil
}

// Insert places s at index i, shifting later slots back.
// An index equal to the length appends.
func (n *node) Insert(i int, s *slot.T) error {
	if i < 0 || i > len(n.slots) {
		return outOfBound(i, len(n.slots))
	}

	n.slots = append(n.slots, nil)
	copy(n.slots[i+1:], n.slots[i:])
	n.slots[i] = s

	return nil
}

// Len returns the number of slots in n.
func (n *node) Len() int {
	if n == nil {
		return 0
	}

	return len(n.slots)
}

// Push appends s to n.
func (n *node) Push(s *slot.T) {
	n.slots = append(n.slots, s)
}

// Remove deletes the slot at index i and returns the cell it held.
func (n *node) Remove(i int) (cell.I, error) {
	s, err := n.Get(i)
	if err != nil {
		return nil, err
	}

	n.slots = append(n.slots[:i], n.slots[i+1:]...)

	return s.Get(), nil
}

// View returns a view of n starting at index beg.
func (n *node) View(beg int) View {
	return View{node: n, beg: beg}
}

func outOfBound(i, length int) error {
	return errsys.New(errsys.OutOfBound, "index %d, length %d", i, length)
}
