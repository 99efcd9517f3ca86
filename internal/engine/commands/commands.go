// Released under an MIT license. See LICENSE.

// Package commands provides jester's built-in library.
package commands

import (
	"math"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/type/boolean"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/fn"
	"github.com/michaelmacinnis/jester/internal/common/type/list"
	"github.com/michaelmacinnis/jester/internal/common/type/null"
	"github.com/michaelmacinnis/jester/internal/common/type/num"
	"github.com/michaelmacinnis/jester/internal/common/type/sym"
	"github.com/michaelmacinnis/jester/internal/engine/eval"
)

// Bridges returns the built-in functions by name.
func Bridges() map[string]fn.Func {
	return map[string]fn.Func{
		// Arithmetic.
		"%": mod,
		"*": mul,
		"+": add,
		"-": sub,
		"/": div,

		// Relational.
		"!=":  ne,
		"<":   lt,
		"<=":  le,
		"=":   eq,
		">":   gt,
		">=":  ge,
		"not": not,

		// Core.
		"apply":     apply,
		"assert":    assert,
		"assert-eq": assertEq,
		"do":        do,
		"eval":      evaluate,
		"gen-sym":   genSym,
		"if":        ifElse,
		"let":       let,
		"list":      makeList,
		"loop":      loop,
		"quote":     quote,
		"set":       set,
		"type-of":   typeOf,
		"unless":    unless,
		"when":      when,

		// Definitions.
		"defmacro":     defmacro(false),
		"defmacro*":    defmacro(true),
		"defun":        defun(false),
		"defun*":       defun(true),
		"lambda":       lambda(false),
		"lambda*":      lambda(true),
		"macro-expand": macroExpand,

		// Lists.
		"append":  appendTo,
		"insert":  insert,
		"len":     length,
		"nth":     nth,
		"prepend": prepend,
		"remove":  remove,
		"replace": replace,

		// Strings and I/O.
		"format":  format,
		"literal": literalString,
		"load":    load,
		"match":   match,
		"print":   printValues,
		"println": printLine,
	}
}

// Constants returns the built-in constants by name.
func Constants() map[string]cell.I {
	return map[string]cell.I{
		"E":     num.Float64(math.E),
		"False": boolean.False,
		"Nil":   null.Nil,
		"PI":    num.Float64(math.Pi),
		"Pi":    num.Float64(math.Pi),
		"True":  boolean.True,
		"false": boolean.False,
		"nil":   null.Nil,
		"true":  boolean.True,
	}
}

// Helper functions.

// arg evaluates the i-th argument.
func arg(e *env.T, args node.View, i int) (cell.I, error) {
	c, err := args.Cell(i)
	if err != nil {
		return nil, err
	}

	return eval.Eval(e, c)
}

// expression returns the node of a parenthesized, unevaluated argument.
func expression(e *env.T, c cell.I, what string) (*node.T, error) {
	s, ok := c.(*sym.T)
	if !ok || !e.IsExpression(s.Ref()) {
		return nil, errsys.New(errsys.MisType, "%s must be a parenthesized list", what)
	}

	return list.To(s.Ref().Get()).Node(), nil
}

// target returns the symbol named by an unevaluated argument. A
// sub-expression is evaluated and must produce a symbol.
func target(e *env.T, c cell.I) (*sym.T, error) {
	s, err := sym.Cast(c)
	if err != nil {
		return nil, err
	}

	if !e.IsExpression(s.Ref()) {
		return s, nil
	}

	v, err := eval.Eval(e, c)
	if err != nil {
		return nil, err
	}

	return sym.Cast(v)
}

// values evaluates every argument in args.
func values(e *env.T, args node.View) ([]cell.I, error) {
	vs := make([]cell.I, 0, args.Len())

	for _, s := range args.Slots() {
		v, err := eval.Eval(e, s.Get())
		if err != nil {
			return nil, err
		}

		vs = append(vs, v)
	}

	return vs, nil
}

// body copies the statements in v into a new node.
func body(v node.View) *node.T {
	return node.New(v.Slots()...)
}

// named returns the list held by the slot an unevaluated argument refers
// to. Changes to the list are seen through the name.
func named(e *env.T, c cell.I) (*list.T, error) {
	s, ok := c.(*sym.T)
	if !ok || e.IsExpression(s.Ref()) {
		v, err := eval.Eval(e, c)
		if err != nil {
			return nil, err
		}

		return list.Cast(v)
	}

	return list.Cast(s.Ref().Get())
}
