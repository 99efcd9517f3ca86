// Released under an MIT license. See LICENSE.

package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/reader"
)

func TestComplete(t *testing.T) {
	for text, want := range map[string]bool{
		"":              true,
		"(a b)":         true,
		"(a (b)":        false,
		"(print \"a":    false,
		"(print \"(\")": true,
		")":             true,
		"; (":           true,
	} {
		assert.Equal(t, want, reader.Complete(text), text)
	}
}

func TestRead(t *testing.T) {
	program, err := reader.Read(env.New(), "test", "(a) b\n(c d)")
	require.NoError(t, err)
	assert.Equal(t, 3, program.Len())
}
