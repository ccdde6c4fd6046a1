package ir

import (
	"errors"
	"fmt"
)

var (
	ErrOwned   = errors.New("tag already has a parent")
	ErrCycle   = errors.New("tag would become its own ancestor")
	ErrNilTag  = errors.New("nil tag")
	ErrBadName = errors.New("illegal identifier")
)

// IllegalIdentifierError reports a tag name, namespace or attribute
// name which is not a legal identifier.
type IllegalIdentifierError struct {
	Ident string
	// Index is the byte offset of the first offending rune, 0 for an
	// empty identifier.
	Index int
	// Keyword is set when Ident is a literal keyword used as a tag name
	// or namespace.
	Keyword bool
}

func (e *IllegalIdentifierError) Error() string {
	if e.Ident == "" {
		return fmt.Sprintf("%s: empty", ErrBadName)
	}
	if e.Keyword {
		return fmt.Sprintf("%s %q: keyword cannot name a tag", ErrBadName, e.Ident)
	}
	return fmt.Sprintf("%s %q: bad character at offset %d", ErrBadName, e.Ident, e.Index)
}

func (e *IllegalIdentifierError) Unwrap() error {
	return ErrBadName
}
