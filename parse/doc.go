// Package parse parses SDL documents into ir.Tag trees.
//
// Parsing runs in two stages. A recursive descent parser reads the
// tokens of package token into a Tree of TagNodes, checking only the
// grammar. The tree is then built into tags, resolving each literal
// into an ir.Value.
//
// Tags are separated by newlines or semicolons and consist of an
// optional namespaced name, values, attributes and a block of children:
//
//	ns:name "value" 10L attr=true {
//	    child 1.5F
//	}
//
// A tag written without a name is named "content"; such a tag must have
// at least one value.
//
// Every failure is returned as an *Error carrying a 1-based line and
// column, which unwraps to a *token.LexError, a *SyntaxError, a
// *SemanticError or an *ir.IllegalIdentifierError. Lists, maps, URLs,
// versions and hexadecimal or binary integers are read by the grammar
// but fail to resolve with ErrUnsupportedLiteral.
package parse
