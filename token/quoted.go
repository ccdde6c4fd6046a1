package token

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

func (l *Lexer) quoted(start int) (Token, error) {
	d := l.d
	if hasPrefix(d[start:], `"""`) {
		end := bytes.Index(d[start+3:], []byte(`"""`))
		if end == -1 {
			return Token{}, UnterminatedErr("string", l.doc.Pos(start))
		}
		return l.tok(TRawString, start, start+3+end+3), nil
	}
	j := start + 1
	for j < len(d) {
		switch d[j] {
		case '"':
			return l.tok(TString, start, j+1), nil
		case '\n':
			return Token{}, UnterminatedErr("string", l.doc.Pos(start))
		case '\\':
			if n, ok := continuation(d[j:]); ok {
				j += n
				continue
			}
			if j+1 >= len(d) {
				return Token{}, UnterminatedErr("string", l.doc.Pos(start))
			}
			if !isStringEscape(d[j+1]) {
				r, _ := utf8.DecodeRune(d[j+1:])
				return Token{}, NewLexError(ErrBadEscape, r, l.doc.Pos(j))
			}
			j += 2
			continue
		}
		r, sz := utf8.DecodeRune(d[j:])
		if r == utf8.RuneError && sz <= 1 {
			return Token{}, NewLexError(ErrBadUTF8, 0, l.doc.Pos(j))
		}
		j += sz
	}
	return Token{}, UnterminatedErr("string", l.doc.Pos(start))
}

func (l *Lexer) backquoted(start int) (Token, error) {
	end := bytes.IndexByte(l.d[start+1:], '`')
	if end == -1 {
		return Token{}, UnterminatedErr("raw string", l.doc.Pos(start))
	}
	return l.tok(TRawString, start, start+1+end+1), nil
}

func (l *Lexer) char(start int) (Token, error) {
	d := l.d
	j := start + 1
	if j >= len(d) {
		return Token{}, UnterminatedErr("character", l.doc.Pos(start))
	}
	switch d[j] {
	case '\\':
		if j+1 >= len(d) || !isCharEscape(d[j+1]) {
			r := rune(0)
			if j+1 < len(d) {
				r, _ = utf8.DecodeRune(d[j+1:])
			}
			return Token{}, NewLexError(ErrBadEscape, r, l.doc.Pos(j))
		}
		j += 2
	case '\'', '\n', '\r':
		return Token{}, NewLexError(ErrBadChar, 0, l.doc.Pos(start))
	default:
		r, sz := utf8.DecodeRune(d[j:])
		if r == utf8.RuneError && sz <= 1 {
			return Token{}, NewLexError(ErrBadUTF8, 0, l.doc.Pos(j))
		}
		j += sz
	}
	if j >= len(d) || d[j] != '\'' {
		return Token{}, NewLexError(ErrBadChar, 0, l.doc.Pos(start))
	}
	return l.tok(TChar, start, j+1), nil
}

func isStringEscape(c byte) bool {
	switch c {
	case '\\', '"', 't', 'r', 'n':
		return true
	}
	return false
}

func isCharEscape(c byte) bool {
	return c == '\'' || isStringEscape(c)
}

func unescape(c byte) byte {
	switch c {
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'n':
		return '\n'
	}
	return c
}

// unquote decodes a double quoted string token. The lexer has already
// checked its escapes.
func unquote(d []byte) string {
	d = d[1 : len(d)-1]
	var b strings.Builder
	b.Grow(len(d))
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if n, ok := continuation(d[i:]); ok {
			i += n
			for i < len(d) && (d[i] == ' ' || d[i] == '\t') {
				i++
			}
			i--
			continue
		}
		i++
		b.WriteByte(unescape(d[i]))
	}
	return b.String()
}

func rawToString(d []byte) string {
	if hasPrefix(d, `"""`) {
		d = d[3 : len(d)-3]
		if len(d) > 0 && d[0] == '\n' {
			d = d[1:]
		} else if hasPrefix(d, "\r\n") {
			d = d[2:]
		}
		return string(d)
	}
	return string(d[1 : len(d)-1])
}

func charToRune(d []byte) rune {
	d = d[1 : len(d)-1]
	if d[0] == '\\' {
		return rune(unescape(d[1]))
	}
	r, _ := utf8.DecodeRune(d)
	return r
}

// Quote returns s as a double quoted string literal.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteChar returns r as a character literal.
func QuoteChar(r rune) string {
	switch r {
	case '\\':
		return `'\\'`
	case '\'':
		return `'\''`
	case '\t':
		return `'\t'`
	case '\r':
		return `'\r'`
	case '\n':
		return `'\n'`
	}
	return "'" + string(r) + "'"
}

// QuoteRaw returns s as a raw string literal: backquoted, or triple
// quoted when s contains a backquote. It reports false when s can be
// written in neither form.
func QuoteRaw(s string) (string, bool) {
	if !strings.Contains(s, "`") {
		return "`" + s + "`", true
	}
	if strings.Contains(s, `"""`) || strings.HasSuffix(s, `"`) {
		return "", false
	}
	if strings.HasPrefix(s, "\n") || strings.HasPrefix(s, "\r\n") {
		// the opening newline is dropped when read back
		return `"""` + "\n" + s + `"""`, true
	}
	return `"""` + s + `"""`, true
}
