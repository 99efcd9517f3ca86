// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for jester code.
package engine

import (
	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/interface/literal"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/fn"
	"github.com/michaelmacinnis/jester/internal/engine/boot"
	"github.com/michaelmacinnis/jester/internal/engine/commands"
)

// T (engine) is a facade in front of the machinery for evaluating jester code.
type T struct {
	env *env.T
}

// New creates a new T with the library and prelude loaded.
func New(opts ...env.Option) (*T, error) {
	e := &T{env: env.New(opts...)}

	for k, v := range commands.Constants() {
		if _, err := e.AddSymbol(k, v); err != nil {
			return nil, err
		}
	}

	for k, f := range commands.Bridges() {
		if _, err := e.AddBridge(k, f); err != nil {
			return nil, err
		}
	}

	if _, err := e.AddFromSource("boot", boot.Script()); err != nil {
		return nil, err
	}

	return e, nil
}

// AddBridge binds name to the Go function f.
func (e *T) AddBridge(name string, f fn.Func) (*slot.T, error) {
	return e.env.Define(name, fn.NewBridge(name, f))
}

// AddFromFile evaluates the contents of the file at path.
func (e *T) AddFromFile(path string) (cell.I, error) {
	return commands.Load(e.env, path)
}

// AddFromSource evaluates text. The label names the source in error messages.
func (e *T) AddFromSource(label, text string) (cell.I, error) {
	return commands.Source(e.env, label, text)
}

// AddFromString evaluates text.
func (e *T) AddFromString(text string) (cell.I, error) {
	return e.AddFromSource("string", text)
}

// AddSymbol binds name to the value v.
func (e *T) AddSymbol(name string, v cell.I) (*slot.T, error) {
	return e.env.Define(name, v)
}

// Display returns the text for c with strings in double quotes.
func (e *T) Display(c cell.I) string {
	return literal.Display(c, e.env)
}

// Env returns the environment in which code is evaluated.
func (e *T) Env() *env.T {
	return e.env
}

// String returns the text for c.
func (e *T) String(c cell.I) string {
	return literal.String(c, e.env)
}
