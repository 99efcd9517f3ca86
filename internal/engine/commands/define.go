// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/fn"
	"github.com/michaelmacinnis/jester/internal/common/type/list"
	"github.com/michaelmacinnis/jester/internal/common/type/sym"
	"github.com/michaelmacinnis/jester/internal/common/validate"
	"github.com/michaelmacinnis/jester/internal/engine/eval"
)

type constructor func(e *env.T, label string, params, body *node.T, fold bool) (cell.I, error)

func makeMacro(e *env.T, label string, params, body *node.T, fold bool) (cell.I, error) {
	m, err := fn.NewMacro(e, label, params, body, fold)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func makeNative(e *env.T, label string, params, body *node.T, fold bool) (cell.I, error) {
	n, err := fn.NewNative(e, label, params, body, fold)
	if err != nil {
		return nil, err
	}

	return n, nil
}

func defmacro(fold bool) fn.Func {
	return define(label("defmacro", fold), makeMacro, fold)
}

func defun(fold bool) fn.Func {
	return define(label("defun", fold), makeNative, fold)
}

// define returns a bridge for (name (params...) body...). The callable is
// bound to name, rebinding it if it is already bound.
func define(cmd string, build constructor, fold bool) fn.Func {
	return func(e *env.T, args node.View) (cell.I, error) {
		if err := validate.Variadic(cmd, args, 2, -1); err != nil {
			return nil, err
		}

		c, _ := args.Cell(0)

		s, err := target(e, c)
		if err != nil {
			return nil, err
		}

		name, _ := e.NameOf(s.Ref())

		p, _ := args.Cell(1)

		params, err := expression(e, p, cmd+" parameters")
		if err != nil {
			return nil, err
		}

		f, err := build(e, name, params, body(args.Shift().Shift()), fold)
		if err != nil {
			return nil, err
		}

		sym.Assign(s, f)

		return f, nil
	}
}

func lambda(fold bool) fn.Func {
	cmd := label("lambda", fold)

	return func(e *env.T, args node.View) (cell.I, error) {
		if err := validate.Variadic(cmd, args, 1, -1); err != nil {
			return nil, err
		}

		p, _ := args.Cell(0)

		params, err := expression(e, p, cmd+" parameters")
		if err != nil {
			return nil, err
		}

		return makeNative(e, "lambda", params, body(args.Shift()), fold)
	}
}

func macroExpand(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("macro-expand", args, 1); err != nil {
		return nil, err
	}

	v, err := arg(e, args, 0)
	if err != nil {
		return nil, err
	}

	form, err := list.Cast(v)
	if err != nil {
		return nil, err
	}

	h, err := form.Node().View(0).Cell(0)
	if err != nil {
		return nil, errsys.New(errsys.ErrList, "cannot expand an empty list")
	}

	if s, ok := h.(*sym.T); ok {
		h = s.Ref().Get()
	}

	m, ok := h.(*fn.Macro)
	if !ok {
		return nil, errsys.New(errsys.MisType, "macro-expand expected a macro call")
	}

	return eval.Expand(e, m, form.Node().View(1))
}

func label(cmd string, fold bool) string {
	if fold {
		return cmd + "*"
	}

	return cmd
}
