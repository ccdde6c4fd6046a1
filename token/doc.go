// Package token provides the lexer for SDL documents.
//
// [NewLexer] returns a [Lexer] whose Next method yields one [Token] at a
// time; [Tokenize] collects them all. Tokens carry a [Pos] that resolves
// to a line and column through the document's [PosDoc].
//
// Failures are reported as [*LexError], which wraps one of the sentinel
// errors such as [ErrIllegalChar] or [ErrUnterminated].
package token
