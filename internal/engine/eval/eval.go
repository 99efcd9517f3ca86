// Released under an MIT license. See LICENSE.

// Package eval provides the jester evaluator.
//
// The evaluator walks syntax trees produced by the reader. Every name is a
// slot in a single, flat environment. Calls fake lexical scope by saving
// the values of their parameter slots, rebinding them for the duration of
// the call, and putting the saved values back afterwards.
package eval

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/fn"
	"github.com/michaelmacinnis/jester/internal/common/type/list"
	"github.com/michaelmacinnis/jester/internal/common/type/null"
	"github.com/michaelmacinnis/jester/internal/common/type/sym"
)

// Eval evaluates c in the environment e.
func Eval(e *env.T, c cell.I) (cell.I, error) {
	switch t := c.(type) {
	case *sym.T:
		return Deref(e, t.Ref())
	case *list.T:
		return combination(e, t)
	}

	return c, nil
}

// Deref returns the value of the slot s. A slot holding a sub-expression
// is evaluated. A list is copied so that structural changes to the result
// are not seen through s.
func Deref(e *env.T, s *slot.T) (cell.I, error) {
	if e.IsExpression(s) {
		return Eval(e, s.Get())
	}

	c := s.Get()
	if l, ok := c.(*list.T); ok {
		return l.Copy(), nil
	}

	return c, nil
}

// Progn evaluates each statement in v and returns the value of the last.
func Progn(e *env.T, v node.View) (cell.I, error) {
	var r cell.I = null.Nil

	for _, s := range v.Slots() {
		c, err := Eval(e, s.Get())
		if err != nil {
			return nil, err
		}

		r = c
	}

	return r, nil
}

func combination(e *env.T, l *list.T) (cell.I, error) {
	n := l.Node()
	if n.Len() == 0 {
		return l.Copy(), nil
	}

	h, _ := n.Get(0)

	head, err := operator(e, h.Get())
	if err != nil {
		return nil, err
	}

	args := n.View(1)

	if fn.Is(head) {
		return Call(e, head, args)
	}

	return data(e, head, args)
}

// data builds a new list from head and the values of the remaining elements.
func data(e *env.T, head cell.I, rest node.View) (cell.I, error) {
	n := node.New(slot.New(head))

	for _, s := range rest.Slots() {
		c, err := Eval(e, s.Get())
		if err != nil {
			return nil, err
		}

		n.Push(slot.New(c))
	}

	return list.New(n), nil
}

// operator resolves the head of a combination without touching its arguments.
func operator(e *env.T, c cell.I) (cell.I, error) {
	if s, ok := c.(*sym.T); ok && !e.IsExpression(s.Ref()) {
		if f := s.Ref().Get(); fn.Is(f) {
			return f, nil
		}
	}

	return Eval(e, c)
}

func notCallable(c cell.I) error {
	return errsys.New(errsys.MisType, "%s is not callable", c.Name())
}
