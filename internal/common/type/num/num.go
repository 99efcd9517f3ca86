// Released under an MIT license. See LICENSE.

// Package num provides jester's numeric types.
//
// Integers come in three widths. The narrowest width that can represent a
// literal is chosen when it is parsed. Arithmetic keeps the width of the
// left operand and wraps on overflow, as the host integer types do.
package num

import (
	"math"
	"math/big"
	"strconv"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
)

// Int32 is a 32-bit signed integer.
type Int32 int32

// Int64 is a 64-bit signed integer.
type Int64 int64

// Int128 is a 128-bit signed integer.
type Int128 struct {
	v *big.Int
}

// Float64 is a double precision float.
type Float64 float64

// Number is satisfied by all numeric types.
type Number interface {
	cell.I

	Float() float64
}

//nolint:gochecknoglobals
var (
	max128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	min128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	mod128 = new(big.Int).Lsh(big.NewInt(1), 128)
)

// NewInt128 creates an Int128 from v, wrapping it into 128 bits.
func NewInt128(v *big.Int) *Int128 {
	return &Int128{v: wrap128(v)}
}

// Equal returns true if c is an Int32 with the same value.
func (n Int32) Equal(c cell.I) bool {
	o, ok := c.(Int32)

	return ok && o == n
}

// Float returns the value of n as a float64.
func (n Int32) Float() float64 {
	return float64(n)
}

// Name returns the type name for Int32.
func (n Int32) Name() string {
	return "i32"
}

// String returns the text of n.
func (n Int32) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Equal returns true if c is an Int64 with the same value.
func (n Int64) Equal(c cell.I) bool {
	o, ok := c.(Int64)

	return ok && o == n
}

// Float returns the value of n as a float64.
func (n Int64) Float() float64 {
	return float64(n)
}

// Name returns the type name for Int64.
func (n Int64) Name() string {
	return "i64"
}

// String returns the text of n.
func (n Int64) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Big returns a copy of the value of n.
func (n *Int128) Big() *big.Int {
	return new(big.Int).Set(n.v)
}

// Equal returns true if c is an Int128 with the same value.
func (n *Int128) Equal(c cell.I) bool {
	o, ok := c.(*Int128)

	return ok && o.v.Cmp(n.v) == 0
}

// Float returns the value of n as a float64.
func (n *Int128) Float() float64 {
	f, _ := new(big.Float).SetInt(n.v).Float64()

	return f
}

// Name returns the type name for Int128.
func (n *Int128) Name() string {
	return "i128"
}

// String returns the text of n.
func (n *Int128) String() string {
	return n.v.String()
}

// Equal returns true if c is a Float64 with the same value.
func (n Float64) Equal(c cell.I) bool {
	o, ok := c.(Float64)

	return ok && o == n
}

// Float returns the value of n.
func (n Float64) Float() float64 {
	return float64(n)
}

// Name returns the type name for Float64.
func (n Float64) Name() string {
	return "f64"
}

// String returns the text of n.
func (n Float64) String() string {
	f := float64(n)

	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Is returns true if c is any of the numeric types.
func Is(c cell.I) bool {
	_, ok := c.(Number)

	return ok
}

func wrap128(v *big.Int) *big.Int {
	if v.Cmp(min128) >= 0 && v.Cmp(max128) <= 0 {
		return new(big.Int).Set(v)
	}

	w := new(big.Int).Mod(v, mod128)
	if w.Cmp(max128) > 0 {
		w.Sub(w, mod128)
	}

	return w
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var (
		i32  Int32
		i64  Int64
		i128 Int128
		f64  Float64
	)

	// The numeric types are cells with a float value.
	_ = Number(i32)
	_ = Number(i64)
	_ = Number(&i128)
	_ = Number(f64)
}
