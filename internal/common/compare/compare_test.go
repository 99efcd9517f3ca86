// Released under an MIT license. See LICENSE.

package compare_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jester/internal/common/compare"
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/boolean"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/list"
	"github.com/michaelmacinnis/jester/internal/common/type/null"
	"github.com/michaelmacinnis/jester/internal/common/type/num"
	"github.com/michaelmacinnis/jester/internal/common/type/str"
	"github.com/michaelmacinnis/jester/internal/common/type/sym"
)

func TestEq(t *testing.T) {
	s := slot.New(num.Int32(1))

	tests := []struct {
		a, b cell.I
		want bool
	}{
		{num.Int32(1), num.Int64(1), true},
		{num.Int32(1), num.Float64(1), true},
		{num.NewInt128(big.NewInt(7)), num.Int32(7), true},
		{num.Int32(1), num.Int32(2), false},
		{str.New("a"), str.New("a"), true},
		{str.New("a"), str.New("b"), false},
		{boolean.True, boolean.Bool(true), true},
		{boolean.True, boolean.False, false},
		{null.Nil, null.Nil, true},
		{null.Nil, num.Int32(0), false},
		{str.New("a"), null.Nil, false},
		{list.Of(num.Int32(1), str.New("x")), list.Of(num.Int64(1), str.New("x")), true},
		{list.Of(num.Int32(1)), list.Of(num.Int32(1), num.Int32(2)), false},
		{list.Of(), list.Of(), true},
		{sym.New(s), sym.New(s), true},
		{sym.New(s), sym.New(slot.New(num.Int32(1))), false},
	}

	for _, tt := range tests {
		got, err := compare.Eq(tt.a, tt.b)
		require.NoError(t, err, "%v %v", tt.a, tt.b)
		assert.Equal(t, tt.want, got, "%v %v", tt.a, tt.b)
	}
}

func TestEqIncomparable(t *testing.T) {
	for _, pair := range [][2]cell.I{
		{num.Int32(1), str.New("1")},
		{boolean.True, num.Int32(1)},
		{list.Of(), str.New("")},
		{list.Of(num.Int32(1)), list.Of(str.New("1"))},
	} {
		_, err := compare.Eq(pair[0], pair[1])
		assert.True(t, errsys.Is(err, errsys.MisComp), "%v %v", pair[0], pair[1])
	}
}

func TestOrdering(t *testing.T) {
	lt, err := compare.Lt(num.Int32(1), num.Float64(1.5))
	require.NoError(t, err)
	assert.True(t, lt)

	lt, err = compare.Lt(str.New("b"), str.New("a"))
	require.NoError(t, err)
	assert.False(t, lt)

	le, err := compare.LtEq(num.Int64(2), num.Int32(2))
	require.NoError(t, err)
	assert.True(t, le)

	_, err = compare.Lt(boolean.True, boolean.False)
	assert.True(t, errsys.Is(err, errsys.MisComp))

	_, err = compare.LtEq(list.Of(), list.Of())
	assert.True(t, errsys.Is(err, errsys.MisComp))
}
