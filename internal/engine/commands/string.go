// Released under an MIT license. See LICENSE.

package commands

import (
	"io"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/interface/literal"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/type/boolean"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/null"
	"github.com/michaelmacinnis/jester/internal/common/type/str"
	"github.com/michaelmacinnis/jester/internal/common/validate"
	"github.com/michaelmacinnis/jester/internal/engine/eval"
)

const placeholder = "{}"

// (format "template {}" v...)
func format(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Variadic("format", args, 1, -1); err != nil {
		return nil, err
	}

	vs, err := values(e, args)
	if err != nil {
		return nil, err
	}

	t, err := str.Cast(vs[0])
	if err != nil {
		return nil, err
	}

	t, err = adapted.ActualBytes(t)
	if err != nil {
		return nil, errsys.New(errsys.MisForm, "format: %v", err)
	}

	parts := strings.Split(t, placeholder)
	if len(parts)-1 != len(vs)-1 {
		return nil, errsys.New(errsys.Params, "format has %s, passed %d",
			validate.Count(len(parts)-1, "placeholder", "s"), len(vs)-1)
	}

	var b strings.Builder

	b.WriteString(parts[0])

	for i, v := range vs[1:] {
		b.WriteString(literal.String(v, e))
		b.WriteString(parts[i+1])
	}

	return str.New(b.String()), nil
}

// (literal v)
func literalString(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("literal", args, 1); err != nil {
		return nil, err
	}

	v, err := arg(e, args, 0)
	if err != nil {
		return nil, err
	}

	if s, ok := literal.Escaped(v); ok {
		return str.New(s), nil
	}

	return str.New(literal.Display(v, e)), nil
}

// (match pattern s)
func match(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("match", args, 2); err != nil {
		return nil, err
	}

	vs, err := values(e, args)
	if err != nil {
		return nil, err
	}

	pattern, err := str.Cast(vs[0])
	if err != nil {
		return nil, err
	}

	s, err := str.Cast(vs[1])
	if err != nil {
		return nil, err
	}

	ok, err := adapted.Match(pattern, s)
	if err != nil {
		return nil, errsys.New(errsys.MisForm, "match: %v", err)
	}

	return boolean.Bool(ok), nil
}

func printLine(e *env.T, args node.View) (cell.I, error) {
	r, err := printValues(e, args)
	if err != nil {
		return nil, err
	}

	if _, err := io.WriteString(e.Stdout, "\n"); err != nil {
		return nil, errsys.Wrap(errsys.IoErr, err)
	}

	return r, nil
}

func printValues(e *env.T, args node.View) (cell.I, error) {
	var r cell.I = null.Nil

	for _, s := range args.Slots() {
		v, err := eval.Eval(e, s.Get())
		if err != nil {
			return nil, err
		}

		if _, err := io.WriteString(e.Stdout, literal.String(v, e)); err != nil {
			return nil, errsys.Wrap(errsys.IoErr, err)
		}

		r = v
	}

	return r, nil
}
