package main

import (
	"context"
	"errors"
	"sync"

	sdl "github.com/SingingBush/SDL"
	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/parse"
	"github.com/SingingBush/SDL/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open text document with what could be parsed of it.
// On a parse failure root and tree are nil and err is set; toks is nil
// when the document does not lex.
type document struct {
	uri     string
	content string
	version int32
	pd      *token.PosDoc
	err     error

	root      *ir.Tag
	positions map[*ir.Tag]*token.Pos
	tree      *parse.Tree
	toks      []token.Token
}

func newDocument(uri, content string, version int32) *document {
	d := []byte(content)
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		pd:        token.NewPosDoc(d),
		positions: make(map[*ir.Tag]*token.Pos),
	}
	doc.toks, _ = token.Tokenize(d)
	doc.root, doc.err = sdl.Root(d, parse.ParseComments(true), parse.ParsePositions(doc.positions))
	if doc.err != nil {
		return doc
	}
	doc.tree, doc.err = parse.ParseTree(d)
	return doc
}

// tagAt returns the tag whose first token starts at off.
func (doc *document) tagAt(off int) *ir.Tag {
	for t, p := range doc.positions {
		if p != nil && p.I == off {
			return t
		}
	}
	return nil
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: validateDocument(doc),
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "sdl",
	}
	var pe *parse.Error
	if errors.As(doc.err, &pe) {
		diagnostic.Message = pe.Msg
		if pe.Line > 0 {
			off := doc.pd.Offset(pe.Line-1, pe.Col-1)
			start := lspPosition(doc.pd, off)
			end := start
			end.Character++
			diagnostic.Range = protocol.Range{Start: start, End: end}
		}
	}
	return append(diagnostics, diagnostic)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole text
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
