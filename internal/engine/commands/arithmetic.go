// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/num"
	"github.com/michaelmacinnis/jester/internal/common/validate"
)

func add(e *env.T, args node.View) (cell.I, error) {
	return fold(e, "+", args, num.Add)
}

func div(e *env.T, args node.View) (cell.I, error) {
	return fold(e, "/", args, num.Div)
}

func mod(e *env.T, args node.View) (cell.I, error) {
	return fold(e, "%", args, num.Mod)
}

func mul(e *env.T, args node.View) (cell.I, error) {
	return fold(e, "*", args, num.Mul)
}

func sub(e *env.T, args node.View) (cell.I, error) {
	if args.Len() == 1 {
		v, err := arg(e, args, 0)
		if err != nil {
			return nil, err
		}

		return num.Neg(v)
	}

	return fold(e, "-", args, num.Sub)
}

// fold combines the values of args from left to right. The result has the
// type of the first value.
func fold(e *env.T, label string, args node.View, op func(x, y cell.I) (cell.I, error)) (cell.I, error) {
	if err := validate.Variadic(label, args, 1, -1); err != nil {
		return nil, err
	}

	vs, err := values(e, args)
	if err != nil {
		return nil, err
	}

	acc := vs[0]
	if !num.Is(acc) {
		return nil, errsys.New(errsys.MisType, "%s is not defined for %s", label, acc.Name())
	}

	for _, v := range vs[1:] {
		acc, err = op(acc, v)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}
