// Released under an MIT license. See LICENSE.

package fn

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
)

// Bridge is a function written in Go.
type Bridge struct {
	f     Func
	label string
}

// NewBridge creates a bridge to the Go function f.
func NewBridge(label string, f Func) *Bridge {
	return &Bridge{f: f, label: label}
}

// Call invokes the Go function with the unevaluated arguments.
func (b *Bridge) Call(e *env.T, args node.View) (cell.I, error) {
	return b.f(e, args)
}

// Equal returns true if c is the same bridge as b.
func (b *Bridge) Equal(c cell.I) bool {
	o, ok := c.(*Bridge)

	return ok && o == b
}

// Label returns the name the bridge was registered with.
func (b *Bridge) Label() string {
	return b.label
}

// Name returns the type name for a bridge.
func (b *Bridge) Name() string {
	return "bridge"
}

func (b *Bridge) String() string {
	return "<bridge " + b.label + ">"
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var (
		b Bridge
		m Macro
		n Native
	)

	// Every callable is an fn.
	_ = I(&b)
	_ = I(&m)
	_ = I(&n)
}
