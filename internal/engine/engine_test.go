// Released under an MIT license. See LICENSE.

package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/num"
	"github.com/michaelmacinnis/jester/internal/common/type/str"
	"github.com/michaelmacinnis/jester/internal/interptest"
)

func TestScenarios(t *testing.T) {
	e, _ := interptest.New(t)

	for _, tt := range []struct {
		expr string
		want string
	}{
		{"(+ 1 2 3)", "6"},
		{"(set x 10) (set x (* x 2)) x", "20"},
		{"(set y 1) (let (y 10 z 20) (+ y z))", "30"},
		{"y", "1"},
		{"(defun sq (x) (* x x)) (sq 5)", "25"},
		{`"hello"`, `"hello"`},
		{"abc", "nil"},
		{"(defmacro twice (x) (list x x)) (twice (+ 1 2))", "(3 3)"},
	} {
		assert.Equal(t, tt.want, interptest.Result(e, tt.expr), tt.expr)
	}
}

func TestAddSymbol(t *testing.T) {
	e, _ := interptest.New(t)

	s, err := e.AddSymbol("answer", num.Int32(42))
	require.NoError(t, err)
	assert.Equal(t, num.Int32(42), s.Get())

	_, err = e.AddSymbol("answer", num.Int32(43))
	assert.True(t, errsys.Is(err, errsys.DupSym))

	_, err = e.AddSymbol("+", num.Int32(0))
	assert.True(t, errsys.Is(err, errsys.DupSym))

	assert.Equal(t, "43", interptest.Result(e, "(+ answer 1)"))
}

func TestAddBridge(t *testing.T) {
	e, _ := interptest.New(t)

	_, err := e.AddBridge("argc", func(_ *env.T, args node.View) (cell.I, error) {
		return num.Int32(args.Len()), nil
	})
	require.NoError(t, err)

	assert.Equal(t, "3", interptest.Result(e, "(argc (fail) 2 3)"))
	assert.Equal(t, `"bridge"`, interptest.Result(e, "(type-of argc)"))
}

func TestAddFromFile(t *testing.T) {
	e, stdout := interptest.New(t)

	path := filepath.Join(t.TempDir(), "script.jst")
	require.NoError(t, os.WriteFile(path, []byte("(defun cube (n) (* n n n))\n(println (cube 3))\n"), 0o600))

	c, err := e.AddFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, num.Int32(27), c)
	assert.Equal(t, "27\n", stdout.String())

	assert.Equal(t, "8", interptest.Result(e, "(cube 2)"))

	_, err = e.AddFromFile(filepath.Join(t.TempDir(), "missing.jst"))
	assert.True(t, errsys.Is(err, errsys.IoErr))
}

func TestLoad(t *testing.T) {
	e, _ := interptest.New(t)

	path := filepath.Join(t.TempDir(), "lib.jst")
	require.NoError(t, os.WriteFile(path, []byte("(set loaded true)"), 0o600))

	_, err := e.AddSymbol("path", str.New(path))
	require.NoError(t, err)

	assert.Equal(t, "true", interptest.Result(e, "(load path)"))
	assert.Equal(t, "true", interptest.Result(e, "loaded"))
	assert.Equal(t, "error: type mismatch", interptest.Result(e, "(load 1)"))
}

func TestDisplayAndString(t *testing.T) {
	e, _ := interptest.New(t)

	assert.Equal(t, `"s"`, e.Display(str.New("s")))
	assert.Equal(t, "s", e.String(str.New("s")))
}
