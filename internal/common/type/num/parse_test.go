// Released under an MIT license. See LICENSE.

package num

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
)

func TestParse(t *testing.T) {
	i128, _ := new(big.Int).SetString("9223372036854775808", 10)

	tests := []struct {
		text string
		want cell.I
	}{
		{"0", Int32(0)},
		{"42", Int32(42)},
		{"-7", Int32(-7)},
		{"+7", Int32(7)},
		{"1_000_000", Int32(1000000)},
		{"2147483647", Int32(2147483647)},
		{"2147483648", Int64(2147483648)},
		{"-2147483648", Int32(-2147483648)},
		{"-2147483649", Int64(-2147483649)},
		{"9223372036854775808", &Int128{v: i128}},
		{"#b101101", Int32(45)},
		{"#b0001_1010_0100", Int32(420)},
		{"#hDD6FF", Int32(906239)},
		{"#h6_68a0", Int32(420000)},
		{"-213897.388", Float64(-213897.388)},
		{"1.", Float64(1)},
		{".5", Float64(0.5)},
		{"1_0.2_5", Float64(10.25)},
	}

	for _, tt := range tests {
		got, err := Parse(tt.text)
		require.NoError(t, err, tt.text)
		assert.True(t, tt.want.Equal(got), "%s: want %v, got %v", tt.text, tt.want, got)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, text := range []string{
		"", "-", "+", ".", "_", "1.2.3", "1-2", "--1", "+-1",
		"abc", "1a", "#b102", "#h-1", "#b1.0", "#x12", "#h", `"1"`,
	} {
		_, err := Parse(text)
		assert.True(t, errsys.Is(err, errsys.MisForm), "%q: %v", text, err)
	}
}

func TestParseOverflow(t *testing.T) {
	// 2^127 is one too many for 128 bits.
	_, err := Parse("170141183460469231731687303715884105728")
	assert.True(t, errsys.Is(err, errsys.OverFlow))

	c, err := Parse("-170141183460469231731687303715884105728")
	require.NoError(t, err)
	assert.Equal(t, "i128", c.Name())
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{
		"1_000_000", "-213897.388", "#b101101", "#hDD6FF",
		"9223372036854775807", "-99999999999999999999", "0.125",
	} {
		c, err := Parse(text)
		require.NoError(t, err, text)

		again, err := Parse(c.(interface{ String() string }).String())
		require.NoError(t, err, text)

		assert.True(t, c.Equal(again), "%s: %v != %v", text, c, again)
	}
}
