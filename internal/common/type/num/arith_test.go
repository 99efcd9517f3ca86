// Released under an MIT license. See LICENSE.

package num

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
)

type fakeCell struct{}

func (fakeCell) Equal(c cell.I) bool { return false }
func (fakeCell) Name() string        { return "fake" }

func TestArithmeticKeepsReceiverType(t *testing.T) {
	tests := []struct {
		op   func(x, y cell.I) (cell.I, error)
		x, y cell.I
		want cell.I
	}{
		{Add, Int32(1), Int32(2), Int32(3)},
		{Add, Int32(1), Float64(2.9), Int32(3)},
		{Add, Float64(1.5), Int32(2), Float64(3.5)},
		{Sub, Int64(10), Int32(4), Int64(6)},
		{Mul, Int32(6), Int64(7), Int32(42)},
		{Div, Int32(7), Int32(2), Int32(3)},
		{Div, Float64(7), Int32(2), Float64(3.5)},
		{Mod, Int32(-7), Int32(3), Int32(-1)},
		{Mod, Float64(7.5), Int32(2), Float64(1.5)},
		{Add, NewInt128(big.NewInt(5)), Int32(5), NewInt128(big.NewInt(10))},
	}

	for _, tt := range tests {
		got, err := tt.op(tt.x, tt.y)
		require.NoError(t, err)
		assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
	}
}

func TestArithmeticWraps(t *testing.T) {
	got, err := Add(Int32(math.MaxInt32), Int32(1))
	require.NoError(t, err)
	assert.Equal(t, Int32(math.MinInt32), got)

	top := NewInt128(new(big.Int).Set(max128))

	got, err = Add(top, Int32(1))
	require.NoError(t, err)
	assert.Equal(t, min128.String(), got.(*Int128).String())
}

func TestArithmeticErrors(t *testing.T) {
	_, err := Add(fakeCell{}, Int32(1))
	assert.True(t, errsys.Is(err, errsys.MisType))

	_, err = Add(Int32(1), fakeCell{})
	assert.True(t, errsys.Is(err, errsys.ErrCast))

	_, err = Neg(fakeCell{})
	assert.True(t, errsys.Is(err, errsys.MisType))
}

func TestFloatDivisionByZero(t *testing.T) {
	got, err := Div(Float64(1), Int32(0))
	require.NoError(t, err)
	assert.Equal(t, "inf", got.(Float64).String())

	got, err = Div(Float64(-1), Int32(0))
	require.NoError(t, err)
	assert.Equal(t, "-inf", got.(Float64).String())
}

func TestIntegerDivisionByZeroPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = Div(Int32(1), Int32(0))
	})
}

func TestCasts(t *testing.T) {
	i, err := AsInt32(Float64(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), i)

	j, err := AsInt64(Float64(math.NaN()))
	require.NoError(t, err)
	assert.Equal(t, int64(0), j)

	k, err := AsInt32(Int64(1 << 32))
	require.NoError(t, err)
	assert.Equal(t, int32(0), k)

	b, err := AsInt128(Float64(-1e40))
	require.NoError(t, err)
	assert.Equal(t, 0, b.Cmp(min128))

	n, err := AsInt64(NewInt128(new(big.Int).Neg(big.NewInt(3))))
	require.NoError(t, err)
	assert.Equal(t, int64(-3), n)

	_, err = AsFloat64(fakeCell{})
	assert.True(t, errsys.Is(err, errsys.ErrCast))
}

func TestNeg(t *testing.T) {
	got, err := Neg(Float64(2.5))
	require.NoError(t, err)
	assert.Equal(t, Float64(-2.5), got)

	got, err = Neg(NewInt128(big.NewInt(9)))
	require.NoError(t, err)
	assert.Equal(t, "-9", got.(*Int128).String())
}
