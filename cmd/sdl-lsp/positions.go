package main

import (
	"unicode/utf8"

	"github.com/SingingBush/SDL/token"
	"go.lsp.dev/protocol"
)

// LSP columns count UTF-16 code units; token columns count bytes.

func utf16Len(d []byte) int {
	n := 0
	for len(d) > 0 {
		r, size := utf8.DecodeRune(d)
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
		d = d[size:]
	}
	return n
}

// byteCol returns the byte column of the UTF-16 column col16 of line.
func byteCol(line []byte, col16 int) int {
	i, n := 0, 0
	for i < len(line) && n < col16 {
		r, size := utf8.DecodeRune(line[i:])
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
		i += size
	}
	return i
}

func lspPosition(pd *token.PosDoc, off int) protocol.Position {
	line, col := pd.LineCol(off)
	lt := pd.Line(line)
	col = min(col, len(lt))
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(lt[:col])),
	}
}

// offset is the inverse of lspPosition.
func offset(pd *token.PosDoc, p protocol.Position) int {
	line := int(p.Line)
	return pd.Offset(line, byteCol(pd.Line(line), int(p.Character)))
}
