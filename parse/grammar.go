package parse

import (
	"bytes"

	"github.com/SingingBush/SDL/debug"
	"github.com/SingingBush/SDL/token"
)

// parser is a recursive descent parser over the lexer's tokens with
// arbitrary lookahead.
type parser struct {
	lex *token.Lexer
	buf []token.Token
}

func newParser(d []byte) *parser {
	return &parser{lex: token.NewLexer(d)}
}

func (p *parser) peekN(n int) (token.Token, error) {
	for len(p.buf) <= n {
		t, err := p.lex.Next()
		if err != nil {
			return token.Token{}, err
		}
		p.buf = append(p.buf, t)
	}
	return p.buf[n], nil
}

func (p *parser) peek() (token.Token, error) {
	return p.peekN(0)
}

func (p *parser) next() (token.Token, error) {
	t, err := p.peekN(0)
	if err != nil {
		return t, err
	}
	p.buf = p.buf[1:]
	return t, nil
}

func (p *parser) trace(what string, t *token.Token) {
	if debug.Parse() {
		debug.Logf("parse %s at %s\n", what, t.Pos)
	}
}

func syntaxErr(expected string, t token.Token) *SyntaxError {
	return &SyntaxError{Expected: expected, Found: t, Pos: t.Pos}
}

func (p *parser) tree() (*Tree, error) {
	tags, err := p.tagList(false)
	if err != nil {
		return nil, err
	}
	return &Tree{Tags: tags, Doc: p.lex.Doc()}, nil
}

// tagList parses tags separated by newlines or semicolons up to the end
// of input, or through the closing '}' when inBlock.
//
// A line comment alone on the line right before a tag is attached to
// that tag.
func (p *parser) tagList(inBlock bool) ([]*TagNode, error) {
	var (
		res      []*TagNode
		pending  *token.Token
		newlines int
	)
	for {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch t.Type {
		case token.TEOF:
			if inBlock {
				return nil, syntaxErr("'}'", t)
			}
			return res, nil
		case token.TRCurl:
			if !inBlock {
				return nil, syntaxErr("tag", t)
			}
			_, _ = p.next()
			return res, nil
		case token.TNewline:
			_, _ = p.next()
			newlines++
			continue
		case token.TSemi:
			_, _ = p.next()
			continue
		case token.TComment:
			_, _ = p.next()
			pending = nil
			if ownLine(&t) {
				pending = &t
				newlines = 0
			}
			continue
		}
		tag, err := p.tag()
		if err != nil {
			return nil, err
		}
		if pending != nil && newlines == 1 {
			tag.Comment = pending
		}
		pending = nil
		res = append(res, tag)
	}
}

func ownLine(t *token.Token) bool {
	l, c := t.Pos.LineCol()
	line := t.Pos.D.Line(l)
	return len(bytes.TrimSpace(line[:min(c, len(line))])) == 0
}

func (p *parser) tag() (*TagNode, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}
	p.trace("tag", &t)
	node := &TagNode{Pos: t.Pos}
	if t.Type == token.TIdent {
		name, err := p.nsName(false)
		if err != nil {
			return nil, err
		}
		node.Name = name
	}
	for {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !isValueStart(t.Type) {
			break
		}
		if t.Type == token.TIdent || isKeyword(t.Type) {
			attr, err := p.isAttr()
			if err != nil {
				return nil, err
			}
			if attr {
				break
			}
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		node.Values = append(node.Values, v)
	}
	if node.Name == nil && len(node.Values) == 0 {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}
		se := syntaxErr("tag name or value", t)
		se.Err = ErrAnonymous
		return nil, se
	}
	for {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}
		if t.Type != token.TIdent && !isKeyword(t.Type) {
			break
		}
		if t.Type != token.TIdent {
			attr, err := p.isAttr()
			if err != nil {
				return nil, err
			}
			if !attr {
				break
			}
		}
		a, err := p.attribute()
		if err != nil {
			return nil, err
		}
		node.Attrs = append(node.Attrs, a)
	}
	t, err = p.peek()
	if err != nil {
		return nil, err
	}
	if t.Type == token.TLCurl {
		_, _ = p.next()
		node.Block = true
		children, err := p.tagList(true)
		if err != nil {
			return nil, err
		}
		node.Children = children
		t, err = p.peek()
		if err != nil {
			return nil, err
		}
	}
	switch t.Type {
	case token.TNewline, token.TSemi, token.TEOF, token.TRCurl, token.TComment:
		return node, nil
	}
	if node.Block {
		return nil, syntaxErr("end of tag after '}'", t)
	}
	return nil, syntaxErr("value, attribute, '{' or end of tag", t)
}

// isAttr reports whether the name at the head of the input starts an
// attribute: N '=' or N ':' N '=', where N is an identifier or a keyword.
func (p *parser) isAttr() (bool, error) {
	t1, err := p.peekN(1)
	if err != nil {
		return false, err
	}
	switch t1.Type {
	case token.TEquals:
		return true, nil
	case token.TColon:
	default:
		return false, nil
	}
	t2, err := p.peekN(2)
	if err != nil || t2.Type != token.TIdent && !isKeyword(t2.Type) {
		return false, err
	}
	t3, err := p.peekN(3)
	if err != nil {
		return false, err
	}
	return t3.Type == token.TEquals, nil
}

// nsName parses a name with an optional namespace. Attribute names may
// be keywords.
func (p *parser) nsName(attr bool) (*NSName, error) {
	isName := func(t token.TokenType) bool {
		return t == token.TIdent || attr && isKeyword(t)
	}
	id, err := p.next()
	if err != nil {
		return nil, err
	}
	if !isName(id.Type) {
		return nil, syntaxErr("identifier", id)
	}
	t, err := p.peek()
	if err != nil {
		return nil, err
	}
	if t.Type != token.TColon {
		return &NSName{Name: &id}, nil
	}
	_, _ = p.next()
	name, err := p.next()
	if err != nil {
		return nil, err
	}
	if !isName(name.Type) {
		return nil, syntaxErr("identifier after ':'", name)
	}
	return &NSName{Namespace: &id, Name: &name}, nil
}

func (p *parser) attribute() (*AttrNode, error) {
	name, err := p.nsName(true)
	if err != nil {
		return nil, err
	}
	p.trace("attribute", name.Name)
	eq, err := p.next()
	if err != nil {
		return nil, err
	}
	if eq.Type != token.TEquals {
		return nil, syntaxErr("'=' in attribute", eq)
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	return &AttrNode{Name: *name, Value: v}, nil
}

func isKeyword(t token.TokenType) bool {
	return t == token.TTrue || t == token.TFalse || t == token.TNull
}

func isValueStart(t token.TokenType) bool {
	return t == token.TLSquare || t.IsLiteral()
}

func (p *parser) value() (*ValueNode, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}
	if t.Type == token.TLSquare {
		return p.bracketed()
	}
	if !t.Type.IsLiteral() {
		return nil, syntaxErr("value", t)
	}
	_, _ = p.next()
	return &ValueNode{Kind: LiteralValue, Tok: t}, nil
}

// bracketed parses a list [v, v, ...] or a map [k: v, k: v, ...]. Commas
// are optional and newlines are ignored inside the brackets.
func (p *parser) bracketed() (*ValueNode, error) {
	open, err := p.next()
	if err != nil {
		return nil, err
	}
	p.trace("list", &open)
	node := &ValueNode{Kind: ListValue, Tok: open}
	for i := 0; ; i++ {
		t, err := p.skipNewlines()
		if err != nil {
			return nil, err
		}
		if t.Type == token.TRSquare {
			_, _ = p.next()
			return node, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		t, err = p.skipNewlines()
		if err != nil {
			return nil, err
		}
		if i == 0 && t.Type == token.TColon {
			node.Kind = MapValue
		}
		if node.Kind == MapValue {
			if t.Type != token.TColon {
				return nil, syntaxErr("':' in map", t)
			}
			_, _ = p.next()
			if _, err := p.skipNewlines(); err != nil {
				return nil, err
			}
			mv, err := p.value()
			if err != nil {
				return nil, err
			}
			node.Elems = append(node.Elems, v)
			node.Vals = append(node.Vals, mv)
		} else {
			node.Elems = append(node.Elems, v)
		}
		t, err = p.skipNewlines()
		if err != nil {
			return nil, err
		}
		switch {
		case t.Type == token.TComma:
			_, _ = p.next()
		case t.Type == token.TRSquare, isValueStart(t.Type):
		default:
			return nil, syntaxErr("',' or ']'", t)
		}
	}
}

func (p *parser) skipNewlines() (token.Token, error) {
	for {
		t, err := p.peek()
		if err != nil || t.Type != token.TNewline {
			return t, err
		}
		_, _ = p.next()
	}
}
