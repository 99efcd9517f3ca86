// Released under an MIT license. See LICENSE.

package node

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
)

// View is an offset into a node. Function arguments are passed as a view
// of the calling expression so that no copy is made.
type View struct {
	node *T
	beg  int
}

// Cell returns the cell held by the slot at index i of the view.
func (v View) Cell(i int) (cell.I, error) {
	s, err := v.Get(i)
	if err != nil {
		return nil, err
	}

	return s.Get(), nil
}

// Empty returns true if there is nothing in view.
func (v View) Empty() bool {
	return v.Len() == 0
}

// Get returns the slot at index i of the view.
func (v View) Get(i int) (*slot.T, error) {
	if i < 0 {
		return nil, outOfBound(i, v.Len())
	}

	return v.node.Get(v.beg + i)
}

// Len returns the number of slots in view.
func (v View) Len() int {
	if n := v.node.Len() - v.beg; n > 0 {
		return n
	}

	return 0
}

// Shift returns a view that starts one slot later.
func (v View) Shift() View {
	return View{node: v.node, beg: v.beg + 1}
}

// Slots returns the slots in view. The slice must not be modified.
func (v View) Slots() []*slot.T {
	if v.Len() == 0 {
		return nil
	}

	return v.node.slots[v.beg:]
}
