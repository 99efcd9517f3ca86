// Released under an MIT license. See LICENSE.

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteractiveDefault(t *testing.T) {
	parse([]string{}, true)
	assert.True(t, Interactive())

	parse([]string{}, false)
	assert.False(t, Interactive())

	parse([]string{"-i"}, true)
	assert.False(t, Interactive())

	parse([]string{"-i"}, false)
	assert.True(t, Interactive())
}

func TestScripts(t *testing.T) {
	parse([]string{"-dt", "a.jst", "b.jst"}, true)

	assert.Equal(t, []string{"a.jst", "b.jst"}, Scripts())
	assert.True(t, Debug())
	assert.True(t, Timed())
	assert.False(t, Interactive())
	assert.Empty(t, Expression())
}

func TestExpression(t *testing.T) {
	parse([]string{"-c", "(+ 1 2)"}, true)

	assert.Equal(t, "(+ 1 2)", Expression())
	assert.Empty(t, Scripts())
	assert.False(t, Debug())
	assert.False(t, Interactive())
}
