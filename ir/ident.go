package ir

import (
	"unicode"
	"unicode/utf8"
)

// IdentifierIsLegal reports whether s may be used as a tag name, a
// namespace or an attribute name: a letter or underscore followed by
// letters, digits, underscores, dashes, dots or dollar signs. The
// keywords true, false, on, off and null are legal identifiers but
// cannot name a tag or its namespace.
func IdentifierIsLegal(s string) bool {
	return ValidateIdentifier(s) == nil
}

// ValidateIdentifier returns an *IllegalIdentifierError if s is not a
// legal identifier.
func ValidateIdentifier(s string) error {
	if s == "" {
		return &IllegalIdentifierError{}
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return &IllegalIdentifierError{Ident: s, Index: i}
		}
		if i == 0 {
			if r != '_' && !unicode.IsLetter(r) {
				return &IllegalIdentifierError{Ident: s, Index: i}
			}
			continue
		}
		switch r {
		case '_', '-', '.', '$':
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return &IllegalIdentifierError{Ident: s, Index: i}
		}
	}
	return nil
}

// keywords read as values wherever a tag name could start, so they name
// attributes only.
var keywords = map[string]bool{
	"true":  true,
	"false": true,
	"on":    true,
	"off":   true,
	"null":  true,
}

// validateTagName is ValidateIdentifier also rejecting keywords.
func validateTagName(s string) error {
	if keywords[s] {
		return &IllegalIdentifierError{Ident: s, Keyword: true}
	}
	return ValidateIdentifier(s)
}

func validateTagNamespace(ns string) error {
	if ns == "" {
		return nil
	}
	return validateTagName(ns)
}

func validateNamespace(ns string) error {
	if ns == "" {
		return nil
	}
	return ValidateIdentifier(ns)
}
