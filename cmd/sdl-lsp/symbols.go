package main

import (
	"context"
	"strings"

	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/parse"
	"github.com/SingingBush/SDL/token"
	"go.lsp.dev/protocol"
)

const maxDetail = 40

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tree == nil {
		return nil, nil
	}
	syms := documentSymbols(doc, doc.tree.Tags)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

func documentSymbols(doc *document, tns []*parse.TagNode) []protocol.DocumentSymbol {
	res := make([]protocol.DocumentSymbol, 0, len(tns))
	for _, tn := range tns {
		t := doc.tagAt(tn.Pos.I)
		if t == nil {
			continue
		}
		sel := protocol.Range{
			Start: lspPosition(doc.pd, tn.Pos.I),
			End:   lspPosition(doc.pd, tn.Pos.I),
		}
		if tn.Name != nil {
			sel.End = lspPosition(doc.pd, tn.Name.Name.End())
		}
		sym := protocol.DocumentSymbol{
			Name:           t.QualifiedName(),
			Kind:           protocol.SymbolKindField,
			Range:          protocol.Range{Start: sel.Start, End: lspPosition(doc.pd, tagEnd(tn))},
			SelectionRange: sel,
		}
		if tn.Block {
			sym.Kind = protocol.SymbolKindObject
		}
		var vs []string
		for _, v := range t.Values() {
			vs = append(vs, encode.Value(v))
		}
		sym.Detail = strings.Join(vs, " ")
		if len(sym.Detail) > maxDetail {
			sym.Detail = sym.Detail[:maxDetail] + "..."
		}
		for _, an := range tn.Attrs {
			ns, name := an.Name.Strings()
			start := an.Name.Name.Pos.I
			if an.Name.Namespace != nil {
				start = an.Name.Namespace.Pos.I
			}
			rng := protocol.Range{
				Start: lspPosition(doc.pd, start),
				End:   lspPosition(doc.pd, an.Value.Tok.End()),
			}
			detail := ""
			if v, ok := t.AttributeNS(ns, name); ok {
				detail = encode.Value(v)
			}
			sym.Children = append(sym.Children, protocol.DocumentSymbol{
				Name:           qualified(ns, name),
				Detail:         detail,
				Kind:           protocol.SymbolKindProperty,
				Range:          rng,
				SelectionRange: rng,
			})
		}
		sym.Children = append(sym.Children, documentSymbols(doc, tn.Children)...)
		res = append(res, sym)
	}
	return res
}

// tagEnd returns the end of the last token of tn or its children.
func tagEnd(tn *parse.TagNode) int {
	end := tn.Pos.I
	last := func(t *token.Token) {
		if t != nil && t.Pos != nil {
			end = max(end, t.End())
		}
	}
	if tn.Name != nil {
		last(tn.Name.Name)
	}
	for _, vn := range tn.Values {
		last(&vn.Tok)
	}
	for _, an := range tn.Attrs {
		last(&an.Value.Tok)
	}
	for _, c := range tn.Children {
		end = max(end, tagEnd(c))
	}
	return end
}
