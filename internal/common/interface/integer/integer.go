// Released under an MIT license. See LICENSE.

// Package integer converts a jester cell to an index, if possible.
package integer

import (
	"math"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/num"
)

// Value returns the int value for a cell, if possible.
func Value(c cell.I) (int, error) {
	if _, ok := c.(num.Float64); ok {
		return 0, errsys.New(errsys.MisType, "index must be an integer, got %s", c.Name())
	}

	i, err := num.AsInt64(c)
	if err != nil {
		return 0, errsys.New(errsys.MisType, "index must be an integer, got %s", c.Name())
	}

	if i > math.MaxInt32 || i < math.MinInt32 {
		return 0, errsys.New(errsys.OutOfBound, "index %d", i)
	}

	return int(i), nil
}
