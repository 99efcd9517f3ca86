// Released under an MIT license. See LICENSE.

package num

import (
	"math"
	"math/big"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
)

type op struct {
	name string
	i32  func(a, b int32) int32
	i64  func(a, b int64) int64
	i128 func(z, a, b *big.Int) *big.Int
	f64  func(a, b float64) float64
}

//nolint:gochecknoglobals
var (
	add = &op{
		name: "+",
		i32:  func(a, b int32) int32 { return a + b },
		i64:  func(a, b int64) int64 { return a + b },
		i128: (*big.Int).Add,
		f64:  func(a, b float64) float64 { return a + b },
	}
	sub = &op{
		name: "-",
		i32:  func(a, b int32) int32 { return a - b },
		i64:  func(a, b int64) int64 { return a - b },
		i128: (*big.Int).Sub,
		f64:  func(a, b float64) float64 { return a - b },
	}
	mul = &op{
		name: "*",
		i32:  func(a, b int32) int32 { return a * b },
		i64:  func(a, b int64) int64 { return a * b },
		i128: (*big.Int).Mul,
		f64:  func(a, b float64) float64 { return a * b },
	}
	div = &op{
		name: "/",
		i32:  func(a, b int32) int32 { return a / b },
		i64:  func(a, b int64) int64 { return a / b },
		i128: (*big.Int).Quo,
		f64:  func(a, b float64) float64 { return a / b },
	}
	mod = &op{
		name: "%",
		i32:  func(a, b int32) int32 { return a % b },
		i64:  func(a, b int64) int64 { return a % b },
		i128: (*big.Int).Rem,
		f64:  math.Mod,
	}
)

// Add returns x + y with the variant of x.
func Add(x, y cell.I) (cell.I, error) {
	return add.apply(x, y)
}

// Sub returns x - y with the variant of x.
func Sub(x, y cell.I) (cell.I, error) {
	return sub.apply(x, y)
}

// Mul returns x * y with the variant of x.
func Mul(x, y cell.I) (cell.I, error) {
	return mul.apply(x, y)
}

// Div returns x / y with the variant of x.
// Integer division by zero panics.
func Div(x, y cell.I) (cell.I, error) {
	return div.apply(x, y)
}

// Mod returns the remainder of x / y with the variant of x.
// The result has the sign of x. Integer modulo by zero panics.
func Mod(x, y cell.I) (cell.I, error) {
	return mod.apply(x, y)
}

// Neg returns -x.
func Neg(x cell.I) (cell.I, error) {
	switch n := x.(type) {
	case Int32:
		return -n, nil
	case Int64:
		return -n, nil
	case *Int128:
		return NewInt128(new(big.Int).Neg(n.v)), nil
	case Float64:
		return -n, nil
	}

	return nil, errMisType(x, "-")
}

func (o *op) apply(x, y cell.I) (cell.I, error) {
	switch n := x.(type) {
	case Int32:
		v, err := AsInt32(y)
		if err != nil {
			return nil, err
		}

		return Int32(o.i32(int32(n), v)), nil

	case Int64:
		v, err := AsInt64(y)
		if err != nil {
			return nil, err
		}

		return Int64(o.i64(int64(n), v)), nil

	case *Int128:
		v, err := AsInt128(y)
		if err != nil {
			return nil, err
		}

		return NewInt128(o.i128(new(big.Int), n.v, v)), nil

	case Float64:
		v, err := AsFloat64(y)
		if err != nil {
			return nil, err
		}

		return Float64(o.f64(float64(n), v)), nil
	}

	return nil, errMisType(x, o.name)
}

func errMisType(c cell.I, op string) error {
	return errsys.New(errsys.MisType, "%s is not defined for %s", op, c.Name())
}
