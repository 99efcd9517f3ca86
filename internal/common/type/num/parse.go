// Released under an MIT license. See LICENSE.

package num

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
)

// Parse converts the text of a numeric literal to a number.
//
// A literal may start with #b (binary) or #h (hexadecimal). Decimal
// literals may have a leading sign and a single decimal point. Digits
// may be separated by underscores. Integers get the narrowest width
// that holds them.
func Parse(text string) (cell.I, error) {
	base := 10
	digits := text

	switch {
	case strings.HasPrefix(text, "#b"):
		base = 2
		digits = text[2:]
	case strings.HasPrefix(text, "#h"):
		base = 16
		digits = text[2:]
	}

	var b strings.Builder

	decimal := false
	seen := false

	for i, r := range digits {
		switch {
		case isDigit(r, base):
			seen = true
		case r == '_':
			continue
		case r == '+' || r == '-':
			if i != 0 || base != 10 {
				return nil, misForm(text)
			}
		case r == '.':
			if decimal || base != 10 {
				return nil, misForm(text)
			}

			decimal = true
		default:
			return nil, misForm(text)
		}

		b.WriteRune(r)
	}

	if !seen {
		return nil, misForm(text)
	}

	clean := b.String()

	if decimal {
		// Out of range values become +/-inf.
		f, _ := strconv.ParseFloat(clean, 64)

		return Float64(f), nil
	}

	v, ok := new(big.Int).SetString(clean, base)
	if !ok {
		return nil, misForm(text)
	}

	return narrowest(v, text)
}

func isDigit(r rune, base int) bool {
	switch base {
	case 2:
		return r == '0' || r == '1'
	case 16:
		return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
	}

	return '0' <= r && r <= '9'
}

func misForm(text string) error {
	return errsys.New(errsys.MisForm, "%q is not a number", text)
}

func narrowest(v *big.Int, text string) (cell.I, error) {
	if v.IsInt64() {
		i := v.Int64()
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return Int32(i), nil
		}

		return Int64(i), nil
	}

	if v.Cmp(min128) < 0 || v.Cmp(max128) > 0 {
		return nil, errsys.New(errsys.OverFlow, "%s does not fit in 128 bits", text)
	}

	return &Int128{v: v}, nil
}
