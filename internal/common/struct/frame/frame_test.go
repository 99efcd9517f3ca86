// Released under an MIT license. See LICENSE.

package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/jester/internal/common/struct/frame"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/num"
)

func TestBindRestore(t *testing.T) {
	a := slot.New(num.Int32(1))
	b := slot.New(num.Int32(2))

	f := frame.New(2)
	f.Bind(a, num.Int32(10))
	f.Bind(b, num.Int32(20))

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, num.Int32(10), a.Get())
	assert.Equal(t, num.Int32(20), b.Get())

	f.Restore()

	assert.Equal(t, 0, f.Len())
	assert.Equal(t, num.Int32(1), a.Get())
	assert.Equal(t, num.Int32(2), b.Get())
}

func TestRestoreSameSlotTwice(t *testing.T) {
	s := slot.New(num.Int32(1))

	f := frame.New(0)
	f.Bind(s, num.Int32(2))
	f.Bind(s, num.Int32(3))

	assert.Equal(t, num.Int32(3), s.Get())

	f.Restore()

	assert.Equal(t, num.Int32(1), s.Get())
}
