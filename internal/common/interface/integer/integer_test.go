// Released under an MIT license. See LICENSE.

package integer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jester/internal/common/interface/integer"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/num"
	"github.com/michaelmacinnis/jester/internal/common/type/str"
)

func TestValue(t *testing.T) {
	i, err := integer.Value(num.Int64(3))
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = integer.Value(num.Float64(1))
	assert.True(t, errsys.Is(err, errsys.MisType))

	_, err = integer.Value(str.New("1"))
	assert.True(t, errsys.Is(err, errsys.MisType))

	_, err = integer.Value(num.Int64(1 << 40))
	assert.True(t, errsys.Is(err, errsys.OutOfBound))
}
