// Released under an MIT license. See LICENSE.

package num

import (
	"math"
	"math/big"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
)

//nolint:gochecknoglobals
var mask64 = new(big.Int).SetUint64(math.MaxUint64)

// AsInt32 converts any numeric cell to an int32.
func AsInt32(c cell.I) (int32, error) {
	switch n := c.(type) {
	case Int32:
		return int32(n), nil
	case Int64:
		return int32(n), nil
	case *Int128:
		return int32(low64(n.v)), nil
	case Float64:
		return int32(saturate(float64(n), math.MinInt32, math.MaxInt32)), nil
	}

	return 0, errCast(c, "i32")
}

// AsInt64 converts any numeric cell to an int64.
func AsInt64(c cell.I) (int64, error) {
	switch n := c.(type) {
	case Int32:
		return int64(n), nil
	case Int64:
		return int64(n), nil
	case *Int128:
		return low64(n.v), nil
	case Float64:
		return saturate(float64(n), math.MinInt64, math.MaxInt64), nil
	}

	return 0, errCast(c, "i64")
}

// AsInt128 converts any numeric cell to a *big.Int in the 128-bit range.
func AsInt128(c cell.I) (*big.Int, error) {
	switch n := c.(type) {
	case Int32:
		return big.NewInt(int64(n)), nil
	case Int64:
		return big.NewInt(int64(n)), nil
	case *Int128:
		return n.Big(), nil
	case Float64:
		f := float64(n)
		if math.IsNaN(f) {
			return new(big.Int), nil
		}

		b, _ := big.NewFloat(math.Trunc(f)).Int(nil)
		if b.Cmp(max128) > 0 {
			return new(big.Int).Set(max128), nil
		} else if b.Cmp(min128) < 0 {
			return new(big.Int).Set(min128), nil
		}

		return b, nil
	}

	return nil, errCast(c, "i128")
}

// AsFloat64 converts any numeric cell to a float64.
func AsFloat64(c cell.I) (float64, error) {
	if n, ok := c.(Number); ok {
		return n.Float(), nil
	}

	return 0, errCast(c, "f64")
}

func errCast(c cell.I, to string) error {
	return errsys.New(errsys.ErrCast, "cannot cast %s to %s", c.Name(), to)
}

// low64 returns the low 64 bits of v in two's complement.
func low64(v *big.Int) int64 {
	return int64(new(big.Int).And(v, mask64).Uint64())
}

// saturate truncates f and clamps it into [lo, hi]. NaN becomes zero.
func saturate(f float64, lo, hi int64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= float64(hi):
		return hi
	case f <= float64(lo):
		return lo
	}

	return int64(f)
}
