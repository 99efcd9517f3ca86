// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/jester/internal/common/compare"
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/interface/literal"
	"github.com/michaelmacinnis/jester/internal/common/interface/truth"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/boolean"
	"github.com/michaelmacinnis/jester/internal/common/type/create"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/fn"
	"github.com/michaelmacinnis/jester/internal/common/type/list"
	"github.com/michaelmacinnis/jester/internal/common/type/null"
	"github.com/michaelmacinnis/jester/internal/common/type/str"
	"github.com/michaelmacinnis/jester/internal/common/type/sym"
	"github.com/michaelmacinnis/jester/internal/common/validate"
	"github.com/michaelmacinnis/jester/internal/engine/eval"
)

func apply(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("apply", args, 2); err != nil {
		return nil, err
	}

	f, err := arg(e, args, 0)
	if err != nil {
		return nil, err
	}

	if !fn.Is(f) {
		return nil, errsys.New(errsys.MisType, "apply expected a function, got %s", f.Name())
	}

	v, err := arg(e, args, 1)
	if err != nil {
		return nil, err
	}

	l, err := list.Cast(v)
	if err != nil {
		return nil, err
	}

	// Wrap each value so that it evaluates to itself.
	n := node.New()
	for _, s := range l.Node().View(0).Slots() {
		c, err := element(e, s.Get())
		if err != nil {
			return nil, err
		}

		n.Push(slot.New(create.Quoted(c)))
	}

	return eval.Call(e, f, n.View(0))
}

func assert(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Variadic("assert", args, 1, 2); err != nil {
		return nil, err
	}

	v, err := arg(e, args, 0)
	if err != nil {
		return nil, err
	}

	if truth.Value(v) {
		return boolean.True, nil
	}

	c, _ := args.Cell(0)
	msg := literal.Display(c, e)

	if args.Len() > 1 {
		m, err := arg(e, args, 1)
		if err != nil {
			return nil, err
		}

		msg = literal.String(m, e)
	}

	return nil, errsys.New(errsys.RuntimeAssert, "%s", msg)
}

func assertEq(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("assert-eq", args, 2); err != nil {
		return nil, err
	}

	vs, err := values(e, args)
	if err != nil {
		return nil, err
	}

	ok, err := compare.Eq(vs[0], vs[1])
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, errsys.New(errsys.RuntimeAssert, "%s != %s",
			literal.Display(vs[0], e), literal.Display(vs[1], e))
	}

	return boolean.True, nil
}

func do(e *env.T, args node.View) (cell.I, error) {
	return eval.Progn(e, args)
}

func evaluate(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("eval", args, 1); err != nil {
		return nil, err
	}

	v, err := arg(e, args, 0)
	if err != nil {
		return nil, err
	}

	return eval.Eval(e, v)
}

func genSym(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("gen-sym", args, 0); err != nil {
		return nil, err
	}

	return sym.New(e.Symbol(e.Unique())), nil
}

func ifElse(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Variadic("if", args, 2, 3); err != nil {
		return nil, err
	}

	c, err := arg(e, args, 0)
	if err != nil {
		return nil, err
	}

	if truth.Value(c) {
		return arg(e, args, 1)
	}

	if args.Len() == 3 {
		return arg(e, args, 2)
	}

	return null.Nil, nil
}

func let(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Variadic("let", args, 1, -1); err != nil {
		return nil, err
	}

	c, _ := args.Cell(0)

	n, err := expression(e, c, "let bindings")
	if err != nil {
		return nil, err
	}

	if n.Len()%2 != 0 {
		return nil, errsys.New(errsys.ErrList, "let bindings must be name value pairs")
	}

	bindings := n.View(0)
	params := make([]*slot.T, 0, n.Len()/2)
	vs := make([]cell.I, 0, n.Len()/2)

	for i := 0; i < n.Len(); i += 2 {
		b, _ := bindings.Cell(i)

		s, err := sym.Cast(b)
		if err != nil || e.IsExpression(s.Ref()) {
			return nil, errsys.New(errsys.MisType, "let binding %d must be a name", i/2)
		}

		v, err := arg(e, bindings, i+1)
		if err != nil {
			return nil, err
		}

		params = append(params, s.Ref())
		vs = append(vs, v)
	}

	return eval.Scoped(e, params, vs, args.Shift())
}

func loop(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Variadic("loop", args, 1, -1); err != nil {
		return nil, err
	}

	var r cell.I = null.Nil

	for {
		c, err := arg(e, args, 0)
		if err != nil {
			return nil, err
		}

		if !truth.Value(c) {
			return r, nil
		}

		r, err = eval.Progn(e, args.Shift())
		if err != nil {
			return nil, err
		}
	}
}

func makeList(e *env.T, args node.View) (cell.I, error) {
	vs, err := values(e, args)
	if err != nil {
		return nil, err
	}

	return create.List(vs...), nil
}

func quote(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("quote", args, 1); err != nil {
		return nil, err
	}

	c, _ := args.Cell(0)

	if s, ok := c.(*sym.T); ok && e.IsExpression(s.Ref()) {
		return list.To(s.Ref().Get()).Copy(), nil
	}

	return c, nil
}

func set(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("set", args, 2); err != nil {
		return nil, err
	}

	c, _ := args.Cell(0)

	s, err := target(e, c)
	if err != nil {
		return nil, err
	}

	v, err := arg(e, args, 1)
	if err != nil {
		return nil, err
	}

	sym.Assign(s, v)

	return v, nil
}

func typeOf(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("type-of", args, 1); err != nil {
		return nil, err
	}

	v, err := arg(e, args, 0)
	if err != nil {
		return nil, err
	}

	return str.New(v.Name()), nil
}

func unless(e *env.T, args node.View) (cell.I, error) {
	return conditional(e, "unless", args, false)
}

func when(e *env.T, args node.View) (cell.I, error) {
	return conditional(e, "when", args, true)
}

func conditional(e *env.T, label string, args node.View, want bool) (cell.I, error) {
	if err := validate.Variadic(label, args, 1, -1); err != nil {
		return nil, err
	}

	c, err := arg(e, args, 0)
	if err != nil {
		return nil, err
	}

	if truth.Value(c) != want {
		return null.Nil, nil
	}

	return eval.Progn(e, args.Shift())
}
