// Released under an MIT license. See LICENSE.

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jester/internal/common/interface/literal"
	"github.com/michaelmacinnis/jester/internal/common/type/env"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/num"
	"github.com/michaelmacinnis/jester/internal/common/type/str"
	"github.com/michaelmacinnis/jester/internal/common/type/sym"
	"github.com/michaelmacinnis/jester/internal/reader/lexer"
	"github.com/michaelmacinnis/jester/internal/reader/parser"
)

func parse(e *env.T, text string) ([]string, error) {
	program, err := parser.New(e, lexer.New("test", text).Token).Parse()
	if err != nil {
		return nil, err
	}

	var ss []string

	for _, s := range program.View(0).Slots() {
		ss = append(ss, literal.Display(s.Get(), e))
	}

	return ss, nil
}

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"(+ 1 2)", []string{"(+ 1 2)"}},
		{"a (b) ()", []string{"a", "(b)", "()"}},
		{"(a (b (c)))", []string{"(a (b (c)))"}},
		{"'x", []string{"(quote x)"}},
		{"'(a b)", []string{"(quote (a b))"}},
		{"'(a ,b c)", []string{"((quote a) b (quote c))"}},
		{"'(a (,b) (c))", []string{"((quote a) (b) (quote (c)))"}},
		{"('a b)", []string{"((quote a) b)"}},
	}

	for _, tt := range tests {
		got, err := parse(env.New(), tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestLiterals(t *testing.T) {
	e := env.New()

	_, err := parse(e, `(f 42 "hi" x)`)
	require.NoError(t, err)

	s, err := e.Lookup("42")
	require.NoError(t, err)
	assert.Equal(t, num.Int32(42), s.Get())

	s, err = e.Lookup(`"hi"`)
	require.NoError(t, err)
	assert.True(t, str.New("hi").Equal(s.Get()))

	s, err = e.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, "nil", s.Get().Name())
}

func TestNamesAreShared(t *testing.T) {
	e := env.New()

	program, err := parser.New(e, lexer.New("test", "x x").Token).Parse()
	require.NoError(t, err)

	a, _ := program.Get(0)
	b, _ := program.Get(1)

	assert.True(t, sym.To(a.Get()).Ref().Same(sym.To(b.Get()).Ref()))
}

func TestBoundNamesKeepTheirValues(t *testing.T) {
	e := env.New()

	e.Intern("7", str.New("seven"))

	_, err := parse(e, "7")
	require.NoError(t, err)

	s, _ := e.Lookup("7")
	assert.True(t, str.New("seven").Equal(s.Get()))
}

func TestErrors(t *testing.T) {
	tests := []struct {
		text string
		kind errsys.Kind
	}{
		{"(a", errsys.Unbalanced},
		{"(a (b)", errsys.Unbalanced},
		{"a)", errsys.Unbalanced},
		{"'", errsys.MisForm},
		{"(a ')", errsys.MisForm},
		{"(a ,)", errsys.MisForm},
		{`(print "abc`, errsys.MisForm},
		{"170141183460469231731687303715884105728", errsys.OverFlow},
	}

	for _, tt := range tests {
		_, err := parse(env.New(), tt.text)
		assert.True(t, errsys.Is(err, tt.kind), "%s: %v", tt.text, err)
	}
}
