package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/SingingBush/SDL/encode"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	formatted, err := formatDocument(doc, params.Options)
	if err != nil {
		return nil, nil
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	// a single edit replacing the whole document
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   lspPosition(doc.pd, len(doc.content)),
			},
			NewText: formatted,
		},
	}, nil
}

func formatDocument(doc *document, fo protocol.FormattingOptions) (string, error) {
	opts := []encode.EncodeOption{
		encode.EncodePretty(true),
		encode.EncodeComments(true),
	}
	if fo.InsertSpaces && fo.TabSize > 0 {
		opts = append(opts, encode.Indent(strings.Repeat(" ", int(fo.TabSize))))
	}
	var buf bytes.Buffer
	if err := encode.EncodeAll(doc.root.Children(), &buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
