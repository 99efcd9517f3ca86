// Released under an MIT license. See LICENSE.

// Package parser builds jester syntax trees from tokens.
//
// Parsing happens in three passes. The first groups tokens into nested
// expressions, noting which are quoted (') or escaped (,). The second
// rewrites each quoted expression 'x as (quote x). A quoted expression
// containing an escaped expression is not quoted as a whole. Instead each
// of its elements is quoted except the escaped ones. The third pass turns
// expressions into nodes. Every sub-expression is registered under a
// unique name and every other token is registered under its own text.
package parser

import (
	"errors"

	"github.com/michaelmacinnis/jester/internal/common/interface/cell"
	"github.com/michaelmacinnis/jester/internal/common/struct/loc"
	"github.com/michaelmacinnis/jester/internal/common/struct/node"
	"github.com/michaelmacinnis/jester/internal/common/struct/slot"
	"github.com/michaelmacinnis/jester/internal/common/struct/token"
	"github.com/michaelmacinnis/jester/internal/common/type/create"
	"github.com/michaelmacinnis/jester/internal/common/type/errsys"
	"github.com/michaelmacinnis/jester/internal/common/type/null"
	"github.com/michaelmacinnis/jester/internal/common/type/sym"
)

// Registry is where the parser registers names.
type Registry interface {
	Expression(n *node.T) *slot.T
	Has(k string) bool
	Intern(k string, v cell.I) *slot.T
}

// T holds the state of the parser.
type T struct {
	item     func() *token.T // Function to call to get another token.
	registry Registry
}

type expr struct {
	elems  []*expr
	esc    bool
	list   bool
	qte    bool
	source loc.T
	text   string
}

// New creates a new parser.
// It connects a producer of tokens with a registry of names.
func New(r Registry, item func() *token.T) *T {
	return &T{item: item, registry: r}
}

// Parse consumes every token and returns the program they form.
func (p *T) Parse() (program *node.T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*errsys.T)
		if !ok {
			panic(r)
		}

		program, err = nil, e
	}()

	top := p.group()

	program = node.New()
	for _, e := range top.elems {
		program.Push(p.build(expand(e)))
	}

	return program, nil
}

func (p *T) build(e *expr) *slot.T {
	if !e.list {
		return slot.New(sym.New(p.literal(e)))
	}

	n := node.New()
	for _, c := range e.elems {
		n.Push(p.build(c))
	}

	return slot.New(sym.New(p.registry.Expression(n)))
}

// group collects the tokens into nested expressions under a top-level list.
func (p *T) group() *expr {
	var (
		esc, qte bool
		stack    []*expr
	)

	cur := &expr{list: true}

	add := func(e *expr) {
		e.esc, e.qte = esc, qte
		esc, qte = false, false

		cur.elems = append(cur.elems, e)
	}

	for t := p.item(); t != nil; t = p.item() {
		switch t.Class() {
		case token.Beg:
			e := &expr{list: true, source: t.Source()}
			add(e)

			stack = append(stack, cur)
			cur = e

		case token.End:
			if len(stack) == 0 {
				panic(errsys.New(errsys.Unbalanced, "%s: unexpected ')'", t.Source()))
			}

			if esc || qte {
				panic(dangling(t))
			}

			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

		case token.Escape:
			esc = true

		case token.Quote:
			qte = true

		case token.Symbol:
			add(&expr{source: t.Source(), text: t.Value()})

		default:
			panic(errsys.New(errsys.MisForm, "%s: %s", t.Source(), t.Value()))
		}
	}

	if len(stack) > 0 {
		panic(errsys.New(errsys.Unbalanced, "%s: missing ')'", cur.source))
	}

	if esc || qte {
		panic(errsys.New(errsys.MisForm, "quote or escape at end of input"))
	}

	return cur
}

func (p *T) literal(e *expr) *slot.T {
	var v cell.I = null.Nil

	if !p.registry.Has(e.text) {
		var err error

		v, err = create.Literal(e.text)
		if err != nil {
			panic(errsys.New(kind(err), "%s: %s", e.source, e.text))
		}
	}

	return p.registry.Intern(e.text, v)
}

func dangling(t *token.T) *errsys.T {
	return errsys.New(errsys.MisForm, "%s: nothing to quote before ')'", t.Source())
}

// escaped returns true if any expression below e is escaped.
func escaped(e *expr) bool {
	for _, c := range e.elems {
		if c.esc || escaped(c) {
			return true
		}
	}

	return false
}

// expand rewrites quoted expressions below and including e.
func expand(e *expr) *expr {
	for i, c := range e.elems {
		e.elems[i] = expand(c)
	}

	if !e.qte {
		return e
	}

	e.qte = false

	return quote(e)
}

func kind(err error) errsys.Kind {
	var e *errsys.T
	if errors.As(err, &e) {
		return e.Kind()
	}

	return errsys.MisForm
}

func quote(e *expr) *expr {
	if e.esc {
		return e
	}

	if !escaped(e) {
		return &expr{
			elems:  []*expr{{source: e.source, text: "quote"}, e},
			list:   true,
			source: e.source,
		}
	}

	for i, c := range e.elems {
		e.elems[i] = quote(c)
	}

	return e
}
