// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/jester/internal/common/compare"
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/interface/truth"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/type/boolean"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/validate"
)

func eq(e *env.T, args node.View) (cell.I, error) {
	return chain(e, "=", args, compare.Eq)
}

func ge(e *env.T, args node.View) (cell.I, error) {
	return chain(e, ">=", args, func(a, b cell.I) (bool, error) {
		return compare.LtEq(b, a)
	})
}

func gt(e *env.T, args node.View) (cell.I, error) {
	return chain(e, ">", args, func(a, b cell.I) (bool, error) {
		return compare.Lt(b, a)
	})
}

func le(e *env.T, args node.View) (cell.I, error) {
	return chain(e, "<=", args, compare.LtEq)
}

func lt(e *env.T, args node.View) (cell.I, error) {
	return chain(e, "<", args, compare.Lt)
}

func ne(e *env.T, args node.View) (cell.I, error) {
	return chain(e, "!=", args, func(a, b cell.I) (bool, error) {
		r, err := compare.Eq(a, b)

		return !r, err
	})
}

func not(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("not", args, 1); err != nil {
		return nil, err
	}

	v, err := arg(e, args, 0)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(!truth.Value(v)), nil
}

// chain returns true if test holds for every adjacent pair of values.
// Every argument is evaluated, even after test fails.
func chain(e *env.T, label string, args node.View, test func(a, b cell.I) (bool, error)) (cell.I, error) {
	if err := validate.Variadic(label, args, 2, -1); err != nil {
		return nil, err
	}

	vs, err := values(e, args)
	if err != nil {
		return nil, err
	}

	result := true

	for i := 1; i < len(vs); i++ {
		ok, err := test(vs[i-1], vs[i])
		if err != nil {
			return nil, err
		}

		result = result && ok
	}

	return boolean.Bool(result), nil
}
