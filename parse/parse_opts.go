package parse

import (
	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/token"
)

type parseOpts struct {
	comments  bool
	positions map[*ir.Tag]*token.Pos
}

type ParseOption func(*parseOpts)

// ParseComments keeps the line comment directly above a tag as the
// tag's comment.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// ParsePositions records in m the position of the first token of each
// parsed tag.
func ParsePositions(m map[*ir.Tag]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
