package main

import (
	"context"
	"sort"

	"github.com/SingingBush/SDL/ir"
	"go.lsp.dev/protocol"
)

var keywords = []string{"true", "false", "on", "off", "null"}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	return &protocol.CompletionList{Items: completions(doc)}, nil
}

// completions offers the keywords, then the tag and attribute names
// already used in doc.
func completions(doc *document) []protocol.CompletionItem {
	res := make([]protocol.CompletionItem, 0, len(keywords))
	for _, k := range keywords {
		res = append(res, protocol.CompletionItem{
			Label:  k,
			Kind:   protocol.CompletionItemKindKeyword,
			Detail: "literal",
		})
	}
	if doc == nil || doc.root == nil {
		return res
	}
	tags, attrs := map[string]bool{}, map[string]bool{}
	for _, c := range doc.root.Children() {
		c.Walk(func(t *ir.Tag, _ int) (bool, error) {
			tags[t.QualifiedName()] = true
			for _, a := range t.Attributes() {
				attrs[a.QualifiedName()] = true
			}
			return true, nil
		})
	}
	for _, n := range sortedKeys(tags) {
		res = append(res, protocol.CompletionItem{
			Label:  n,
			Kind:   protocol.CompletionItemKindClass,
			Detail: "tag",
		})
	}
	for _, n := range sortedKeys(attrs) {
		res = append(res, protocol.CompletionItem{
			Label:      n,
			Kind:       protocol.CompletionItemKindProperty,
			Detail:     "attribute",
			InsertText: n + "=",
		})
	}
	return res
}

func sortedKeys(m map[string]bool) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
