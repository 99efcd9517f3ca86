// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/interface/integer"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/list"
	"github.com/michaelmacinnis/jester/internal/common/type/num"
	"github.com/michaelmacinnis/jester/internal/common/type/str"
	"github.com/michaelmacinnis/jester/internal/common/type/sym"
	"github.com/michaelmacinnis/jester/internal/common/validate"
	"github.com/michaelmacinnis/jester/internal/engine/eval"
)

// (append v l)
func appendTo(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("append", args, 2); err != nil {
		return nil, err
	}

	v, l, err := operands(e, args, 0)
	if err != nil {
		return nil, err
	}

	l.Node().Push(slot.New(v))

	return l.Copy(), nil
}

// (insert i v l)
func insert(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("insert", args, 3); err != nil {
		return nil, err
	}

	i, err := index(e, args)
	if err != nil {
		return nil, err
	}

	v, l, err := operands(e, args, 1)
	if err != nil {
		return nil, err
	}

	if err := l.Node().Insert(i, slot.New(v)); err != nil {
		return nil, err
	}

	return l.Copy(), nil
}

// (len l) or (len s)
func length(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("len", args, 1); err != nil {
		return nil, err
	}

	v, err := arg(e, args, 0)
	if err != nil {
		return nil, err
	}

	switch {
	case list.Is(v):
		return num.Int64(list.To(v).Len()), nil
	case str.Is(v):
		return num.Int64(len(str.To(v).String())), nil
	}

	return nil, errsys.New(errsys.MisType, "len expected a list or string, got %s", v.Name())
}

// (nth i l)
func nth(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("nth", args, 2); err != nil {
		return nil, err
	}

	i, err := index(e, args)
	if err != nil {
		return nil, err
	}

	v, err := arg(e, args, 1)
	if err != nil {
		return nil, err
	}

	l, err := list.Cast(v)
	if err != nil {
		return nil, err
	}

	s, err := l.Node().Get(i)
	if err != nil {
		return nil, err
	}

	return element(e, s.Get())
}

// (prepend v l)
func prepend(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("prepend", args, 2); err != nil {
		return nil, err
	}

	v, l, err := operands(e, args, 0)
	if err != nil {
		return nil, err
	}

	if err := l.Node().Insert(0, slot.New(v)); err != nil {
		return nil, err
	}

	return l.Copy(), nil
}

// (remove i l)
func remove(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("remove", args, 2); err != nil {
		return nil, err
	}

	i, err := index(e, args)
	if err != nil {
		return nil, err
	}

	c, _ := args.Cell(1)

	l, err := named(e, c)
	if err != nil {
		return nil, err
	}

	return l.Node().Remove(i)
}

// (replace i v l)
func replace(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("replace", args, 3); err != nil {
		return nil, err
	}

	i, err := index(e, args)
	if err != nil {
		return nil, err
	}

	v, l, err := operands(e, args, 1)
	if err != nil {
		return nil, err
	}

	s, err := l.Node().Get(i)
	if err != nil {
		return nil, err
	}

	s.Set(v)

	return v, nil
}

// element returns the value of a list element. Elements of quoted data
// are names and are looked up. Anything else is returned as is.
func element(e *env.T, c cell.I) (cell.I, error) {
	if sym.Is(c) {
		return eval.Eval(e, c)
	}

	return c, nil
}

// index evaluates the first argument as a list index.
func index(e *env.T, args node.View) (int, error) {
	v, err := arg(e, args, 0)
	if err != nil {
		return 0, err
	}

	return integer.Value(v)
}

// operands evaluates the value at offset i and finds the list named after it.
func operands(e *env.T, args node.View, i int) (cell.I, *list.T, error) {
	v, err := arg(e, args, i)
	if err != nil {
		return nil, nil, err
	}

	c, _ := args.Cell(i + 1)

	l, err := named(e, c)
	if err != nil {
		return nil, nil, err
	}

	return v, l, nil
}
