// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to a bridge.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
)

// Fixed returns a Params error unless exactly n arguments were passed.
func Fixed(label string, args node.View, n int) error {
	return Variadic(label, args, n, n)
}

// Variadic returns a Params error unless min to max arguments were passed.
// A negative max means there is no upper limit.
func Variadic(label string, args node.View, min, max int) error {
	n := args.Len()

	switch {
	case min == max && n != min:
		return errsys.New(errsys.Params, "%s expected %s, passed %d", label, Count(min, "argument", "s"), n)
	case n < min:
		return errsys.New(errsys.Params, "%s expected at least %s, passed %d", label, Count(min, "argument", "s"), n)
	case max >= 0 && n > max:
		return errsys.New(errsys.Params, "%s expected at most %s, passed %d", label, Count(max, "argument", "s"), n)
	}

	return nil
}

// Count returns n followed by the label, pluralized with p when n != 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
