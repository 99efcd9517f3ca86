// Released under an MIT license. See LICENSE.

package commands

import (
	"os"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/str"
	"github.com/michaelmacinnis/jester/internal/common/validate"
	"github.com/michaelmacinnis/jester/internal/engine/eval"
	"github.com/michaelmacinnis/jester/internal/reader"
)

// Load reads the file at path and evaluates it in e.
func Load(e *env.T, path string) (cell.I, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errsys.Wrap(errsys.IoErr, err)
	}

	return Source(e, path, string(b))
}

// Source reads text and evaluates it in e. The label names the source
// of the text in error messages.
func Source(e *env.T, label, text string) (cell.I, error) {
	program, err := reader.Read(e, label, text)
	if err != nil {
		return nil, err
	}

	return eval.Progn(e, program.View(0))
}

// (load "path")
func load(e *env.T, args node.View) (cell.I, error) {
	if err := validate.Fixed("load", args, 1); err != nil {
		return nil, err
	}

	v, err := arg(e, args, 0)
	if err != nil {
		return nil, err
	}

	path, err := str.Cast(v)
	if err != nil {
		return nil, err
	}

	return Load(e, path)
}
