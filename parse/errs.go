package parse

import (
	"errors"
	"fmt"

	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/token"
)

var (
	errInternal = errors.New("internal parse error")

	ErrParse              = errors.New("parse error")
	ErrSyntax             = fmt.Errorf("%w: syntax", ErrParse)
	ErrSemantic           = fmt.Errorf("%w: bad literal", ErrParse)
	ErrUnsupportedLiteral = fmt.Errorf("%w: unsupported literal kind", ErrSemantic)
	ErrAnonymous          = fmt.Errorf("%w: anonymous tag without values", ErrSyntax)
)

// SyntaxError reports a token which the grammar does not allow where it
// was found.
type SyntaxError struct {
	Expected string
	Found    token.Token
	Pos      *token.Pos
	Err      error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil && e.Err != ErrSyntax {
		return fmt.Sprintf("%s: expected %s, found %s", e.Err, e.Expected, describe(&e.Found))
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, describe(&e.Found))
}

func (e *SyntaxError) Unwrap() error {
	if e.Err == nil {
		return ErrSyntax
	}
	return e.Err
}

func describe(t *token.Token) string {
	switch t.Type {
	case token.TEOF:
		return "end of input"
	case token.TNewline:
		return "newline"
	}
	return fmt.Sprintf("%q", t.Bytes)
}

// SemanticError reports a literal which lexes but does not denote a
// value: an out of range number, a bad calendar date, an invalid
// duration or zone, or a kind of literal which is not supported.
type SemanticError struct {
	Literal string
	Pos     *token.Pos
	Err     error
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Literal)
}

func (e *SemanticError) Unwrap() error {
	return e.Err
}

func semanticErr(t *token.Token, err error) *SemanticError {
	if !errors.Is(err, ErrSemantic) {
		err = fmt.Errorf("%w: %w", ErrSemantic, err)
	}
	return &SemanticError{Literal: string(t.Bytes), Pos: t.Pos, Err: err}
}

// Error is the error returned by Parse. Line and Col are 1-based. Err is
// a *token.LexError, *SyntaxError, *SemanticError or
// *ir.IllegalIdentifierError.
type Error struct {
	Msg  string
	Line int
	Col  int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(err error, pos *token.Pos) *Error {
	res := &Error{Err: err, Msg: err.Error()}
	if le, ok := err.(*token.LexError); ok {
		pos = le.Pos
		res.Msg = le.Err.Error()
		if le.Char != 0 {
			res.Msg = fmt.Sprintf("%s %q", le.Err, le.Char)
		}
	}
	if pos != nil {
		l, c := pos.LineCol()
		res.Line, res.Col = l+1, c+1
	}
	return res
}

// toError wraps a failure from lexing, parsing or building in an *Error.
func toError(err error) error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}
	var (
		se  *SyntaxError
		me  *SemanticError
		iie *ir.IllegalIdentifierError
	)
	switch {
	case errors.As(err, &se):
		return newError(se, se.Pos)
	case errors.As(err, &me):
		return newError(me, me.Pos)
	case errors.As(err, &iie):
		return newError(iie, nil)
	}
	return newError(err, nil)
}
