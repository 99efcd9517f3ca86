// Released under an MIT license. See LICENSE.

// Package interptest runs tables of jester expressions against a fresh
// interpreter and checks what each one evaluates to and prints.
package interptest

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/engine"
)

// TestSequence is a sequence of expressions evaluated in order against
// one interpreter. Result is the display form of the value or, if
// evaluation fails, "error: " followed by the kind of error. Output is what
// the expression printed.
type TestSequence []struct {
	Expr   string
	Result string
	Output string
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// New returns an interpreter that prints to the returned buffer.
func New(t testing.TB) (*engine.T, *bytes.Buffer) {
	t.Helper()

	var stdout bytes.Buffer

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e, err := engine.New(env.Stdout(&stdout), env.Logger(logger))
	require.NoError(t, err)

	return e, &stdout
}

// Result evaluates expr and returns its display form or, if evaluation
// fails, "error: " followed by the kind of error.
func Result(e *engine.T, expr string) string {
	c, err := e.AddFromString(expr)
	if err != nil {
		var k *errsys.T
		if errors.As(err, &k) {
			return "error: " + k.Kind().String()
		}

		return "error: " + err.Error()
	}

	return e.Display(c)
}

// RunTestSuite runs each TestSequence in tests on its own interpreter.
func RunTestSuite(t *testing.T, tests TestSuite) {
	t.Helper()

	for _, test := range tests {
		test := test

		t.Run(test.Name, func(t *testing.T) {
			e, stdout := New(t)

			for j, expr := range test.TestSequence {
				stdout.Reset()

				result := Result(e, expr.Expr)

				assert.Equal(t, expr.Result, result, "expr %d: %s", j, expr.Expr)
				assert.Equal(t, expr.Output, stdout.String(), "expr %d output: %s", j, expr.Expr)
			}
		})
	}
}
