// Released under an MIT license. See LICENSE.

package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/num"
)

func TestCopySharesSlots(t *testing.T) {
	n := node.Of(num.Int32(1), num.Int32(2))
	c := n.Copy()

	a, _ := n.Get(0)
	b, _ := c.Get(0)
	assert.True(t, a.Same(b))

	a.Set(num.Int32(10))
	v, _ := c.Get(0)
	assert.Equal(t, num.Int32(10), v.Get())

	c.Push(slot.New(num.Int32(3)))
	assert.Equal(t, 2, n.Len())
	assert.Equal(t, 3, c.Len())
}

func TestInsertRemove(t *testing.T) {
	n := node.Of(num.Int32(1), num.Int32(3))

	require.NoError(t, n.Insert(1, slot.New(num.Int32(2))))
	require.NoError(t, n.Insert(3, slot.New(num.Int32(4))))
	require.NoError(t, n.Insert(0, slot.New(num.Int32(0))))

	for i := 0; i < n.Len(); i++ {
		s, err := n.Get(i)
		require.NoError(t, err)
		assert.Equal(t, num.Int32(i), s.Get())
	}

	err := n.Insert(6, slot.New(num.Int32(6)))
	assert.True(t, errsys.Is(err, errsys.OutOfBound))

	c, err := n.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, num.Int32(2), c)
	assert.Equal(t, 4, n.Len())

	_, err = n.Remove(4)
	assert.True(t, errsys.Is(err, errsys.OutOfBound))

	_, err = n.Get(-1)
	assert.True(t, errsys.Is(err, errsys.OutOfBound))
}

func TestView(t *testing.T) {
	n := node.Of(num.Int32(1), num.Int32(2), num.Int32(3))

	v := n.View(1)
	assert.Equal(t, 2, v.Len())
	assert.False(t, v.Empty())

	c, err := v.Cell(0)
	require.NoError(t, err)
	assert.Equal(t, num.Int32(2), c)

	_, err = v.Cell(-1)
	assert.True(t, errsys.Is(err, errsys.OutOfBound))

	v = v.Shift().Shift()
	assert.True(t, v.Empty())
	assert.Nil(t, v.Slots())

	v = v.Shift()
	assert.Equal(t, 0, v.Len())

	var empty *node.T
	assert.Equal(t, 0, empty.Len())
}
