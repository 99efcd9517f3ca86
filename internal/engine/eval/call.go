// Released under an MIT license. See LICENSE.

package eval

import (
	"context"
	"log/slog"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/interface/literal"
	"github.com/michaelmacinnis/jester/internal/common/struct/frame"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/fn"
	"github.com/michaelmacinnis/jester/internal/common/type/list"
)

// Call invokes the callable f with the unevaluated arguments in args.
func Call(e *env.T, f cell.I, args node.View) (cell.I, error) {
	switch t := f.(type) {
	case *fn.Bridge:
		return t.Call(e, args)

	case *fn.Native:
		vs, err := arguments(t.Signature, args, func(c cell.I) (cell.I, error) {
			return Eval(e, c)
		})
		if err != nil {
			return nil, err
		}

		e.Log().Debug("function call", "name", t.Label(), "argument-count", args.Len())

		return Scoped(e, t.Params(), vs, t.Body().View(0))

	case *fn.Macro:
		expansion, err := Expand(e, t, args)
		if err != nil {
			return nil, err
		}

		return Eval(e, expansion)
	}

	return nil, notCallable(f)
}

// Expand binds the parameters of the macro m to the unevaluated arguments
// in args and returns the value of its body.
func Expand(e *env.T, m *fn.Macro, args node.View) (cell.I, error) {
	vs, err := arguments(m.Signature, args, func(c cell.I) (cell.I, error) {
		return c, nil
	})
	if err != nil {
		return nil, err
	}

	e.Log().Debug("macro call", "name", m.Label(), "argument-count", args.Len())

	expansion, err := Scoped(e, m.Params(), vs, m.Body().View(0))
	if err != nil {
		return nil, err
	}

	if l := e.Log(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("macro expansion", "name", m.Label(), "expansion", literal.Display(expansion, e))
	}

	return expansion, nil
}

// Scoped binds each slot in params to the corresponding value in vs,
// evaluates body and then restores the slots. The slots are restored
// whether or not evaluating body succeeds.
func Scoped(e *env.T, params []*slot.T, vs []cell.I, body node.View) (cell.I, error) {
	f := frame.New(len(params))

	for i, p := range params {
		f.Bind(p, vs[i])
	}

	defer f.Restore()

	return Progn(e, body)
}

// arguments applies get to each argument in args. When s folds, the values
// of the last parameter and any extra arguments are collected into a list.
func arguments(s *fn.Signature, args node.View, get func(cell.I) (cell.I, error)) ([]cell.I, error) {
	params := len(s.Params())
	delta := args.Len() - params

	if delta < 0 || (!s.Fold() && delta != 0) {
		return nil, arity(s, args.Len())
	}

	fixed := params
	if s.Fold() {
		fixed--
	}

	vs := make([]cell.I, 0, params)
	rest := args.Slots()

	for _, a := range rest[:fixed] {
		v, err := get(a.Get())
		if err != nil {
			return nil, err
		}

		vs = append(vs, v)
	}

	if !s.Fold() {
		return vs, nil
	}

	folded := node.New()

	for _, a := range rest[fixed:] {
		v, err := get(a.Get())
		if err != nil {
			return nil, err
		}

		folded.Push(slot.New(v))
	}

	return append(vs, list.New(folded)), nil
}

func arity(s *fn.Signature, n int) error {
	if s.Fold() {
		return errsys.New(errsys.Params, "%s expected at least %d arguments, passed %d",
			s.Label(), len(s.Params()), n)
	}

	return errsys.New(errsys.Params, "%s expected %d arguments, passed %d",
		s.Label(), len(s.Params()), n)
}
