package main

import (
	"bytes"
	"context"

	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/parse"
	"github.com/SingingBush/SDL/token"
	"go.lsp.dev/protocol"
)

// tokenTypes and tokenModifiers are the semantic token legend; the
// encoded tokens index into them.
var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenComment,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenNamespace,
		protocol.SemanticTokenClass,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
	}
)

// Map encoder color attributes to LSP semantic token types
func mapColorToSemanticTokenType(t ir.Type, attr encode.ColorAttr) protocol.SemanticTokenTypes {
	switch attr {
	case encode.CommentColor:
		return protocol.SemanticTokenComment
	case encode.NameColor:
		return protocol.SemanticTokenClass
	case encode.NamespaceColor:
		return protocol.SemanticTokenNamespace
	case encode.AttrColor:
		return protocol.SemanticTokenProperty
	case encode.SepColor:
		return protocol.SemanticTokenOperator
	case encode.ValueColor:
		switch {
		case t.IsNumber():
			return protocol.SemanticTokenNumber
		case t == ir.BoolType, t == ir.NullType:
			return protocol.SemanticTokenKeyword
		}
	}
	return protocol.SemanticTokenString
}

func mapColorToSemanticTokenModifiers(attr encode.ColorAttr) []protocol.SemanticTokenModifiers {
	if attr == encode.NameColor {
		return []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDefinition}
	}
	return nil
}

// literalTypes gives the kind of value each literal token denotes.
var literalTypes = map[token.TokenType]ir.Type{
	token.TIdent:     ir.StringType,
	token.TString:    ir.StringType,
	token.TRawString: ir.RawStringType,
	token.TChar:      ir.CharType,
	token.TInteger:   ir.Int32Type,
	token.TLong:      ir.Int64Type,
	token.TFloat:     ir.Float32Type,
	token.TDouble:    ir.Float64Type,
	token.TDecimal:   ir.DecimalType,
	token.THex:       ir.Int64Type,
	token.TBin:       ir.Int64Type,
	token.TTrue:      ir.BoolType,
	token.TFalse:     ir.BoolType,
	token.TNull:      ir.NullType,
	token.TDate:      ir.DateType,
	token.TDateTime:  ir.DateTimeType,
	token.TDuration:  ir.DurationType,
	token.TBinary:    ir.BinaryType,
	token.TVersion:   ir.StringType,
	token.TURL:       ir.StringType,
}

// nameRoles returns the color attribute of identifiers naming tags,
// namespaces and attributes, keyed by offset.
func nameRoles(doc *document) map[int]encode.ColorAttr {
	res := map[int]encode.ColorAttr{}
	if doc.tree == nil {
		return res
	}
	walkTree(doc.tree.Tags, func(tn *parse.TagNode) {
		if tn.Name != nil {
			if ns := tn.Name.Namespace; ns != nil {
				res[ns.Pos.I] = encode.NamespaceColor
			}
			res[tn.Name.Name.Pos.I] = encode.NameColor
		}
		for _, an := range tn.Attrs {
			if ns := an.Name.Namespace; ns != nil {
				res[ns.Pos.I] = encode.NamespaceColor
			}
			res[an.Name.Name.Pos.I] = encode.AttrColor
		}
	})
	return res
}

func tokenColor(t *token.Token, roles map[int]encode.ColorAttr) (ir.Type, encode.ColorAttr, bool) {
	switch t.Type {
	case token.TComment:
		return ir.NullType, encode.CommentColor, true
	case token.TLCurl, token.TRCurl, token.TLSquare, token.TRSquare,
		token.TComma, token.TColon, token.TEquals, token.TSemi:
		return ir.NullType, encode.SepColor, true
	case token.TIdent, token.TTrue, token.TFalse, token.TNull:
		if a, ok := roles[t.Pos.I]; ok {
			return ir.NullType, a, true
		}
	}
	typ, ok := literalTypes[t.Type]
	return typ, encode.ValueColor, ok
}

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
	modifiers []protocol.SemanticTokenModifiers
}

// collectSemanticTokens encodes the tokens of doc on lines first to last
// inclusive. Tokens spanning lines are split at line ends.
func collectSemanticTokens(doc *document, first, last uint32) []uint32 {
	roles := nameRoles(doc)
	var tokenList []tokenInfo
	for i := range doc.toks {
		t := &doc.toks[i]
		typ, attr, ok := tokenColor(t, roles)
		if !ok {
			continue
		}
		tt := mapColorToSemanticTokenType(typ, attr)
		mods := mapColorToSemanticTokenModifiers(attr)
		off := t.Pos.I
		for j, seg := range bytes.Split(t.Bytes, []byte{'\n'}) {
			if j > 0 {
				off++
			}
			seg = bytes.TrimSuffix(seg, []byte{'\r'})
			p := lspPosition(doc.pd, off)
			off += len(seg)
			if len(seg) == 0 || p.Line < first || p.Line > last {
				continue
			}
			tokenList = append(tokenList, tokenInfo{
				line:      p.Line,
				character: p.Character,
				length:    uint32(utf16Len(seg)),
				tokenType: tt,
				modifiers: mods,
			})
		}
	}
	return encodeTokens(tokenList)
}

func encodeTokens(tokenList []tokenInfo) []uint32 {
	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range tokenTypes {
		typeMap[tt] = uint32(i)
	}
	modifierMap := make(map[protocol.SemanticTokenModifiers]uint32)
	for i, tm := range tokenModifiers {
		modifierMap[tm] = uint32(i)
	}

	tokens := []uint32{}
	var prevLine, prevChar uint32
	for _, ti := range tokenList {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		bits := uint32(0)
		for _, mod := range ti.modifiers {
			if idx, ok := modifierMap[mod]; ok {
				bits |= 1 << idx
			}
		}
		tokens = append(tokens, deltaLine, deltaChar, ti.length, typeMap[ti.tokenType], bits)
		prevLine = ti.line
		prevChar = ti.character
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc, 0, ^uint32(0)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc, params.Range.Start.Line, params.Range.End.Line),
	}, nil
}
