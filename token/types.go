package token

import (
	"fmt"
)

type TokenType int

const (
	TEOF TokenType = iota
	TNewline
	TSemi
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
	TEquals
	TComment
	TIdent
	TString
	TRawString
	TChar
	TInteger
	TLong
	TFloat
	TDouble
	TDecimal
	THex
	TBin
	TTrue
	TFalse
	TNull
	TDate
	TDateTime
	TDuration
	TBinary
	TVersion
	TURL
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:       "TEOF",
		TNewline:   "TNewline",
		TSemi:      "TSemi",
		TLCurl:     "TLCurl",
		TRCurl:     "TRCurl",
		TLSquare:   "TLSquare",
		TRSquare:   "TRSquare",
		TComma:     "TComma",
		TColon:     "TColon",
		TEquals:    "TEquals",
		TComment:   "TComment",
		TIdent:     "TIdent",
		TString:    "TString",
		TRawString: "TRawString",
		TChar:      "TChar",
		TInteger:   "TInteger",
		TLong:      "TLong",
		TFloat:     "TFloat",
		TDouble:    "TDouble",
		TDecimal:   "TDecimal",
		THex:       "THex",
		TBin:       "TBin",
		TTrue:      "TTrue",
		TFalse:     "TFalse",
		TNull:      "TNull",
		TDate:      "TDate",
		TDateTime:  "TDateTime",
		TDuration:  "TDuration",
		TBinary:    "TBinary",
		TVersion:   "TVersion",
		TURL:       "TURL",
	}[t]
}

// IsLiteral reports whether tokens of type t can stand as a value.
func (t TokenType) IsLiteral() bool {
	switch t {
	case TString, TRawString, TChar, TInteger, TLong, TFloat, TDouble,
		TDecimal, THex, TBin, TTrue, TFalse, TNull, TDate, TDateTime,
		TDuration, TBinary, TVersion, TURL, TIdent:
		return true
	default:
		return false
	}
}

// IsNumber reports whether t is one of the numeric literal types.
func (t TokenType) IsNumber() bool {
	switch t {
	case TInteger, TLong, TFloat, TDouble, TDecimal, THex, TBin:
		return true
	default:
		return false
	}
}

// Token is a lexical unit. Bytes is the source text of the token, quotes
// and suffixes included.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the decoded text of string, character and comment
// tokens, and the source text of every other token.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return unquote(t.Bytes)
	case TRawString:
		return rawToString(t.Bytes)
	case TChar:
		return string(charToRune(t.Bytes))
	case TComment:
		return commentText(t.Bytes)
	default:
		return string(t.Bytes)
	}
}

// Char returns the rune of a TChar token.
func (t *Token) Char() rune {
	return charToRune(t.Bytes)
}

// End returns the offset just past the token.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}
