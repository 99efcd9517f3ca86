// Released under an MIT license. See LICENSE.

// Package fn provides jester's callable types.
//
// A native is a function written in jester. A macro is a native that
// receives its arguments unevaluated. A bridge is a function written in Go.
package fn

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/sym"
)

// Func is the signature of a function written in Go. The arguments are
// passed unevaluated.
type Func func(e *env.T, args node.View) (cell.I, error)

// I (fn) is any callable.
type I interface {
	cell.I

	Label() string
}

// Signature is the shape shared by natives and macros.
type Signature struct {
	body   *node.T
	fold   bool
	label  string
	params []*slot.T
}

// Body returns the statements of the signature's body.
func (s *Signature) Body() *node.T {
	return s.body
}

// Fold returns true if the last parameter collects any extra arguments.
func (s *Signature) Fold() bool {
	return s.fold
}

// Label returns the name the callable was defined with.
func (s *Signature) Label() string {
	return s.label
}

// Params returns the slots bound to the arguments of a call.
func (s *Signature) Params() []*slot.T {
	return s.params
}

func signature(e *env.T, label string, params, body *node.T, fold bool) (*Signature, error) {
	ps := make([]*slot.T, 0, params.Len())

	for _, s := range params.View(0).Slots() {
		p, err := sym.Cast(s.Get())
		if err != nil || e.IsExpression(p.Ref()) {
			return nil, errsys.New(errsys.MisType, "parameters of %s must be names", label)
		}

		ps = append(ps, p.Ref())
	}

	if fold && len(ps) == 0 {
		return nil, errsys.New(errsys.Params, "%s folds arguments but has no parameters", label)
	}

	return &Signature{
		body:   body,
		fold:   fold,
		label:  label,
		params: ps,
	}, nil
}

// Is returns true if c is callable.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}
