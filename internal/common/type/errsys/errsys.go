// Released under an MIT license. See LICENSE.

// Package errsys provides jester's error type.
package errsys

import (
	"errors"
	"fmt"
)

// Kind classifies a jester error.
type Kind int

// Error kinds.
const (
	IoErr Kind = iota
	NonSym
	DupSym
	NonMod
	DupMod
	MisType
	MisComp
	MisForm
	ErrCast
	ErrList
	OverFlow
	Unbalanced
	OutOfBound
	Params
	RuntimeAssert
)

//nolint:gochecknoglobals
var kinds = map[Kind]string{
	IoErr:         "io error",
	NonSym:        "unknown symbol",
	DupSym:        "duplicate symbol",
	NonMod:        "unknown module",
	DupMod:        "duplicate module",
	MisType:       "type mismatch",
	MisComp:       "incomparable types",
	MisForm:       "malformed literal",
	ErrCast:       "invalid cast",
	ErrList:       "malformed list operation",
	OverFlow:      "numeric overflow",
	Unbalanced:    "unbalanced parentheses",
	OutOfBound:    "index out of bounds",
	Params:        "arity mismatch",
	RuntimeAssert: "assertion failed",
}

// String returns the text for the kind k.
func (k Kind) String() string {
	if s, ok := kinds[k]; ok {
		return s
	}

	return "unknown error"
}

// T (errsys) is an error of a particular kind.
type T struct {
	cause  error
	detail string
	kind   Kind
}

type errsys = T

// New creates a new errsys of kind k. The detail is formatted with fmt.Sprintf.
func New(k Kind, format string, a ...interface{}) *errsys {
	return &errsys{detail: fmt.Sprintf(format, a...), kind: k}
}

// Wrap creates a new errsys of kind k caused by err.
func Wrap(k Kind, err error) *errsys {
	return &errsys{cause: err, detail: err.Error(), kind: k}
}

// Error returns the text of the errsys e.
func (e *errsys) Error() string {
	if e.detail == "" {
		return e.kind.String()
	}

	return e.kind.String() + ": " + e.detail
}

// Kind returns the kind of the errsys e.
func (e *errsys) Kind() Kind {
	return e.kind
}

// Unwrap returns the error that caused e, if any.
func (e *errsys) Unwrap() error {
	return e.cause
}

// Is returns true if err is, or wraps, an errsys of kind k.
func Is(err error, k Kind) bool {
	var e *errsys
	if errors.As(err, &e) {
		return e.kind == k
	}

	return false
}
