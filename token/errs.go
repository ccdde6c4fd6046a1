package token

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalChar  = errors.New("illegal character")
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadChar      = errors.New("malformed character literal")
	ErrNumber       = errors.New("malformed number")
)

// LexError reports a lexical failure at Pos. Char is the offending
// character, or 0 when the failure is not about a single character.
type LexError struct {
	Err  error
	Char rune
	Pos  *Pos
}

func NewLexError(e error, c rune, p *Pos) *LexError {
	return &LexError{Err: e, Char: c, Pos: p}
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func (e *LexError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("%s %q at %s", e.Err.Error(), e.Char, e.Pos.String())
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnterminatedErr(what string, p *Pos) error {
	return NewLexError(fmt.Errorf("%w %s", ErrUnterminated, what), 0, p)
}
