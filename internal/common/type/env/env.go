// Released under an MIT license. See LICENSE.

// Package env provides jester's environment type.
//
// An environment is a single, flat mapping of names to slots. A name is
// given a slot the first time it is read or defined and keeps that slot
// for the life of the environment.
package env

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/hash"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/list"
	"github.com/michaelmacinnis/jester/internal/common/type/null"
)

// UniquePrefix starts every generated name.
const UniquePrefix = "G#"

// T (env) maps names to slots.
type T struct {
	*hash.T

	// Stdout receives everything printed by the library.
	Stdout io.Writer

	expressions map[*slot.T]struct{}
	logger      *slog.Logger
	unique      uint64
}

type env = T

// Option configures an env.
type Option func(*env)

// Logger sets the logger used for tracing evaluation.
func Logger(l *slog.Logger) Option {
	return func(e *env) {
		e.logger = l
	}
}

// Stdout sets the writer used for printing.
func Stdout(w io.Writer) Option {
	return func(e *env) {
		e.Stdout = w
	}
}

// New creates a new, empty env.
func New(opts ...Option) *env {
	e := &env{
		T:           hash.New(),
		Stdout:      os.Stdout,
		expressions: map[*slot.T]struct{}{},
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	}

	return e
}

// Define associates the name k with a new slot holding v.
// Defining a name that is already bound is an error.
func (e *env) Define(k string, v cell.I) (*slot.T, error) {
	s, added := e.Add(k, v)
	if !added {
		return nil, errsys.New(errsys.DupSym, "%s is already defined", k)
	}

	return s, nil
}

// Expression registers the node n under a unique name and returns its slot.
func (e *env) Expression(n *node.T) *slot.T {
	s, _ := e.Add(e.Unique(), list.New(n))

	e.expressions[s] = struct{}{}

	return s
}

// Has returns true if the name k is bound.
func (e *env) Has(k string) bool {
	return e.Get(k) != nil
}

// Intern returns the slot for k. If k is not bound it is bound to v.
func (e *env) Intern(k string, v cell.I) *slot.T {
	s, _ := e.Add(k, v)

	return s
}

// IsExpression returns true if s holds a sub-expression registered by the reader.
func (e *env) IsExpression(s *slot.T) bool {
	_, ok := e.expressions[s]

	return ok
}

// Log returns the env's logger.
func (e *env) Log() *slog.Logger {
	return e.logger
}

// Lookup returns the slot for k or a NonSym error.
func (e *env) Lookup(k string) (*slot.T, error) {
	if s := e.Get(k); s != nil {
		return s, nil
	}

	return nil, errsys.New(errsys.NonSym, "%s is not defined", k)
}

// Symbol returns the slot for k, binding k to nil if it is not yet bound.
func (e *env) Symbol(k string) *slot.T {
	return e.Intern(k, null.Nil)
}

// Unique returns a name that has not been, and will not be, generated before.
func (e *env) Unique() string {
	for {
		e.unique++

		k := UniquePrefix + strconv.FormatUint(e.unique, 10)
		if !e.Has(k) {
			return k
		}
	}
}
