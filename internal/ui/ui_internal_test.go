// Released under an MIT license. See LICENSE.

package ui

import (
	"bytes"
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/interptest"
)

type input struct {
	line string
	err  error
}

type prompter struct {
	history []string
	inputs  []input
	prompts []string
}

func (p *prompter) AppendHistory(item string) {
	p.history = append(p.history, item)
}

func (p *prompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)

	if len(p.inputs) == 0 {
		return "", io.EOF
	}

	i := p.inputs[0]
	p.inputs = p.inputs[1:]

	return i.line, i.err
}

func lines(ss ...string) []input {
	is := make([]input, len(ss))
	for i, s := range ss {
		is[i] = input{line: s}
	}

	return is
}

func TestLoop(t *testing.T) {
	e, _ := interptest.New(t)

	p := &prompter{inputs: lines(
		"", "(+ 1", " 2)", `"a"`, "(assert false)", "--time", "--quit", "(never)",
	)}

	var stdout, stderr bytes.Buffer

	Loop(e, p, &stdout, &stderr, false)

	assert.Equal(t, []string{"(+ 1", " 2)", `"a"`, "(assert false)"}, p.history)
	assert.Equal(t, []string{">> ", ">> ", ".. ", ">> ", ">> ", ">> ", ">> "}, p.prompts)
	assert.Contains(t, stdout.String(), "3\n\"a\"\ncompleted in: ")
	assert.Contains(t, stderr.String(), "error: assertion failed")
	assert.Len(t, p.inputs, 1)
}

func TestLoopAbortAndEOF(t *testing.T) {
	e, _ := interptest.New(t)

	p := &prompter{inputs: []input{
		{line: "(+ 1"},
		{err: liner.ErrPromptAborted},
		{line: "(+ 2 3)"},
	}}

	var stdout, stderr bytes.Buffer

	Loop(e, p, &stdout, &stderr, true)

	assert.Equal(t, "5\n\n", stdout.String())
	assert.Contains(t, stderr.String(), "completed in: ")
	assert.Equal(t, []string{">> ", ".. ", ">> ", ">> "}, p.prompts)
}

func TestLoopHelp(t *testing.T) {
	e, _ := interptest.New(t)

	p := &prompter{inputs: lines("--help")}

	var stdout, stderr bytes.Buffer

	Loop(e, p, &stdout, &stderr, false)

	assert.Equal(t, help+"\n", stdout.String())
	assert.Empty(t, stderr.String())
}

type panicking struct{}

func (panicking) AddFromSource(string, string) (cell.I, error) {
	panic("boom")
}

func (panicking) Display(cell.I) string {
	return ""
}

func TestEvaluateRecovers(t *testing.T) {
	_, err := evaluate(panicking{}, "x")
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}
