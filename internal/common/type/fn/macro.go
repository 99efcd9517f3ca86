// Released under an MIT license. See LICENSE.

package fn

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
)

// Macro is a function whose arguments are not evaluated. The value it
// returns is evaluated in place of the call.
type Macro struct {
	*Signature
}

// NewMacro creates a macro with the parameters and body given.
func NewMacro(e *env.T, label string, params, body *node.T, fold bool) (*Macro, error) {
	s, err := signature(e, label, params, body, fold)
	if err != nil {
		return nil, err
	}

	return &Macro{s}, nil
}

// Equal returns true if c is the same macro as m.
func (m *Macro) Equal(c cell.I) bool {
	o, ok := c.(*Macro)

	return ok && o == m
}

// Name returns the type name for a macro.
func (m *Macro) Name() string {
	return "macro"
}

func (m *Macro) String() string {
	return "<macro " + m.label + ">"
}
