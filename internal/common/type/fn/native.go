// Released under an MIT license. See LICENSE.

package fn

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
)

// Native is a function written in jester.
type Native struct {
	*Signature
}

// NewNative creates a function with the parameters and body given.
func NewNative(e *env.T, label string, params, body *node.T, fold bool) (*Native, error) {
	s, err := signature(e, label, params, body, fold)
	if err != nil {
		return nil, err
	}

	return &Native{s}, nil
}

// Equal returns true if c is the same function as n.
func (n *Native) Equal(c cell.I) bool {
	o, ok := c.(*Native)

	return ok && o == n
}

// Name returns the type name for a native function.
func (n *Native) Name() string {
	return "native"
}

func (n *Native) String() string {
	return "<native " + n.label + ">"
}
