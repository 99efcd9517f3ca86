// Released under an MIT license. See LICENSE.

package history_test

import (
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jester/internal/system/history"
)

func writer(s string) func(w io.Writer) (int, error) {
	return func(w io.Writer) (int, error) {
		return io.WriteString(w, s)
	}
}

func TestSaveLoad(t *testing.T) {
	t.Setenv("JESTER_HISTORY", filepath.Join(t.TempDir(), "history"))

	require.NoError(t, history.Save(writer("(+ 1 2)\n(sq 5)\n")))
	require.NoError(t, history.Save(writer("x\n")))

	var got string

	err := history.Load(func(r io.Reader) (int, error) {
		b, err := io.ReadAll(r)
		got = string(b)

		return len(b), err
	})
	require.NoError(t, err)
	assert.Equal(t, "x\n", got)
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("JESTER_HISTORY", filepath.Join(t.TempDir(), "missing"))

	err := history.Load(func(r io.Reader) (int, error) {
		return 0, nil
	})
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestPath(t *testing.T) {
	t.Setenv("JESTER_HISTORY", "/tmp/elsewhere")
	assert.Equal(t, "/tmp/elsewhere", history.Path())

	t.Setenv("JESTER_HISTORY", "")
	assert.True(t, strings.HasSuffix(history.Path(), ".jester_history"))
}
