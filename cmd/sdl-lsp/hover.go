package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/parse"
	"github.com/SingingBush/SDL/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tree == nil {
		return nil, nil
	}
	off := offset(doc.pd, params.Position)
	hit := findAt(doc.tree.Tags, off)
	if hit == nil {
		return nil, nil
	}
	text := buildHoverText(doc, hit)
	if text == "" {
		return nil, nil
	}
	rng := protocol.Range{
		Start: lspPosition(doc.pd, hit.tok.Pos.I),
		End:   lspPosition(doc.pd, hit.tok.End()),
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
		Range: &rng,
	}, nil
}

type hitKind int

const (
	hitTag hitKind = iota
	hitValue
	hitAttr
)

// hit is the token under a position and what it belongs to.
type hit struct {
	kind hitKind
	tok  *token.Token
	tag  *parse.TagNode
	attr *parse.AttrNode
}

func walkTree(tns []*parse.TagNode, f func(*parse.TagNode)) {
	for _, tn := range tns {
		f(tn)
		walkTree(tn.Children, f)
	}
}

func contains(t *token.Token, off int) bool {
	return t != nil && t.Pos != nil && off >= t.Pos.I && off < t.End()
}

func findAt(tns []*parse.TagNode, off int) *hit {
	var res *hit
	walkTree(tns, func(tn *parse.TagNode) {
		if res != nil {
			return
		}
		if tn.Name != nil && (contains(tn.Name.Namespace, off) || contains(tn.Name.Name, off)) {
			res = &hit{kind: hitTag, tok: tn.Name.Name, tag: tn}
			return
		}
		for _, vn := range tn.Values {
			if contains(&vn.Tok, off) {
				res = &hit{kind: hitValue, tok: &vn.Tok, tag: tn}
				return
			}
		}
		for _, an := range tn.Attrs {
			if contains(an.Name.Namespace, off) || contains(an.Name.Name, off) {
				res = &hit{kind: hitAttr, tok: an.Name.Name, tag: tn, attr: an}
				return
			}
			if contains(&an.Value.Tok, off) {
				res = &hit{kind: hitValue, tok: &an.Value.Tok, tag: tn}
				return
			}
		}
	})
	return res
}

func buildHoverText(doc *document, h *hit) string {
	var parts []string
	switch h.kind {
	case hitTag:
		t := doc.tagAt(h.tag.Pos.I)
		if t == nil {
			return ""
		}
		parts = append(parts,
			fmt.Sprintf("**Tag:** `%s`", t.QualifiedName()),
			fmt.Sprintf("**Path:** `%s`", t.Path()))
		if c := t.Comment(); c != "" {
			parts = append(parts, c)
		}
		parts = append(parts, fmt.Sprintf("%d values, %d attributes, %d children",
			len(t.Values()), t.NumAttributes(), t.NumChildren()))
	case hitAttr:
		ns, name := h.attr.Name.Strings()
		parts = append(parts, fmt.Sprintf("**Attribute:** `%s`", qualified(ns, name)))
		parts = append(parts, valueInfo(&h.attr.Value.Tok)...)
	case hitValue:
		parts = append(parts, valueInfo(h.tok)...)
	}
	return strings.Join(parts, "\n\n")
}

func qualified(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + ":" + name
}

func valueInfo(t *token.Token) []string {
	switch t.Type {
	case token.TLSquare:
		return []string{"unsupported bracketed literal"}
	}
	v, err := parse.Value(string(t.Bytes))
	if err != nil {
		return []string{fmt.Sprintf("**Error:** %s", err)}
	}
	return []string{
		fmt.Sprintf("**Type:** %s", v.Type()),
		fmt.Sprintf("**Value:** `%s`", encode.Value(v)),
		fmt.Sprintf("**Truth:** %t", ir.Truth(v)),
	}
}
