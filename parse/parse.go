package parse

import (
	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/token"
)

// Parse parses a whole document and returns its top level tags. On
// failure no tags are returned and the error is an *Error.
func Parse(d []byte, opts ...ParseOption) ([]*ir.Tag, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	tree, err := newParser(d).tree()
	if err != nil {
		return nil, toError(err)
	}
	tags, err := build(tree, pOpts)
	if err != nil {
		return nil, toError(err)
	}
	return tags, nil
}

// ParseTree returns the parse tree of d without resolving its values.
func ParseTree(d []byte) (*Tree, error) {
	tree, err := newParser(d).tree()
	if err != nil {
		return nil, toError(err)
	}
	return tree, nil
}

// Value parses a single literal.
func Value(literal string) (ir.Value, error) {
	p := newParser([]byte(literal))
	vn, err := p.value()
	if err != nil {
		return ir.Value{}, toError(err)
	}
	t, err := p.next()
	if err != nil {
		return ir.Value{}, toError(err)
	}
	if t.Type != token.TEOF {
		return ir.Value{}, toError(syntaxErr("end of literal", t))
	}
	v, err := resolve(vn)
	if err != nil {
		return ir.Value{}, toError(err)
	}
	return v, nil
}
