// Released under an MIT license. See LICENSE.

// Package compare provides equality and ordering for jester values.
package compare

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/type/boolean"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/list"
	"github.com/michaelmacinnis/jester/internal/common/type/null"
	"github.com/michaelmacinnis/jester/internal/common/type/num"
	"github.com/michaelmacinnis/jester/internal/common/type/str"
	"github.com/michaelmacinnis/jester/internal/common/type/sym"
)

// Eq returns true if a and b are equal.
//
// Numbers of any width compare by magnitude. Booleans and strings compare
// only against their own type. Lists compare element by element. Nil is
// equal only to itself but may be compared against anything.
func Eq(a, b cell.I) (bool, error) {
	switch {
	case null.Is(a) || null.Is(b):
		return null.Is(a) && null.Is(b), nil

	case num.Is(a) && num.Is(b):
		x, _ := num.AsFloat64(a)
		y, _ := num.AsFloat64(b)

		return x == y, nil

	case boolean.Is(a) && boolean.Is(b):
		return boolean.To(a).Bool() == boolean.To(b).Bool(), nil

	case str.Is(a) && str.Is(b):
		return str.To(a).String() == str.To(b).String(), nil

	case list.Is(a) && list.Is(b):
		return lists(list.To(a), list.To(b))

	case sym.Is(a) && sym.Is(b):
		return a.Equal(b), nil

	case a.Name() == b.Name() && !num.Is(a):
		return a.Equal(b), nil
	}

	return false, incomparable(a, b)
}

// Lt returns true if a is less than b.
func Lt(a, b cell.I) (bool, error) {
	switch {
	case num.Is(a) && num.Is(b):
		x, _ := num.AsFloat64(a)
		y, _ := num.AsFloat64(b)

		return x < y, nil

	case str.Is(a) && str.Is(b):
		return str.To(a).String() < str.To(b).String(), nil
	}

	return false, incomparable(a, b)
}

// LtEq returns true if a is less than or equal to b.
func LtEq(a, b cell.I) (bool, error) {
	switch {
	case num.Is(a) && num.Is(b):
		x, _ := num.AsFloat64(a)
		y, _ := num.AsFloat64(b)

		return x <= y, nil

	case str.Is(a) && str.Is(b):
		return str.To(a).String() <= str.To(b).String(), nil
	}

	return false, incomparable(a, b)
}

func lists(a, b *list.T) (bool, error) {
	if a.Len() != b.Len() {
		return false, nil
	}

	x, y := a.Node(), b.Node()

	for i := 0; i < a.Len(); i++ {
		s, _ := x.Get(i)
		t, _ := y.Get(i)

		if s == t {
			continue
		}

		eq, err := Eq(s.Get(), t.Get())
		if err != nil || !eq {
			return false, err
		}
	}

	return true, nil
}

func incomparable(a, b cell.I) error {
	return errsys.New(errsys.MisComp, "cannot compare %s with %s", a.Name(), b.Name())
}
