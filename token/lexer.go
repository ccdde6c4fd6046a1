package token

import (
	"unicode"
	"unicode/utf8"

	"github.com/SingingBush/SDL/debug"
)

// Lexer produces the tokens of a document one at a time. A Lexer is
// not restartable: to re-read a document, create a new Lexer.
type Lexer struct {
	d   []byte
	i   int
	doc *PosDoc
}

func NewLexer(d []byte) *Lexer {
	return &Lexer{d: d, doc: NewPosDoc(d)}
}

// Doc returns the position document of the lexer's input.
func (l *Lexer) Doc() *PosDoc {
	return l.doc
}

// Next returns the next token. After the input is exhausted it returns
// a TEOF token on every call.
func (l *Lexer) Next() (Token, error) {
	tok, err := l.next()
	if err != nil {
		return Token{}, err
	}
	if debug.Lex() {
		debug.Logf("lex %s `%s` %s\n", tok.Type, tok.Bytes, tok.Pos)
	}
	return tok, nil
}

// Tokenize returns all tokens of d, excluding the final TEOF.
func Tokenize(d []byte) ([]Token, error) {
	l := NewLexer(d)
	var res []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == TEOF {
			return res, nil
		}
		res = append(res, tok)
	}
}

func (l *Lexer) tok(t TokenType, start, end int) Token {
	l.i = end
	return Token{Type: t, Pos: l.doc.Pos(start), Bytes: l.d[start:end]}
}

func (l *Lexer) next() (Token, error) {
	d := l.d
	n := len(d)
	for {
		l.skipSpace()
		if l.i >= n {
			return Token{Type: TEOF, Pos: l.doc.end()}, nil
		}
		i := l.i
		c := d[i]
		switch c {
		case '\n':
			return l.tok(TNewline, i, i+1), nil
		case ';':
			return l.tok(TSemi, i, i+1), nil
		case '{':
			return l.tok(TLCurl, i, i+1), nil
		case '}':
			return l.tok(TRCurl, i, i+1), nil
		case ']':
			return l.tok(TRSquare, i, i+1), nil
		case ',':
			return l.tok(TComma, i, i+1), nil
		case ':':
			return l.tok(TColon, i, i+1), nil
		case '=':
			return l.tok(TEquals, i, i+1), nil
		case '[':
			if end, ok := base64Block(d[i:]); ok {
				return l.tok(TBinary, i, i+end), nil
			}
			return l.tok(TLSquare, i, i+1), nil
		case '#':
			return l.tok(TComment, i, i+lineEnd(d[i:])), nil
		case '/':
			if i+1 < n && d[i+1] == '/' {
				return l.tok(TComment, i, i+lineEnd(d[i:])), nil
			}
			if i+1 < n && d[i+1] == '*' {
				end, err := l.blockComment(i)
				if err != nil {
					return Token{}, err
				}
				l.i = end
				continue
			}
			return Token{}, NewLexError(ErrIllegalChar, '/', l.doc.Pos(i))
		case '\\':
			end, ok := continuation(d[i:])
			if !ok {
				return Token{}, NewLexError(ErrIllegalChar, '\\', l.doc.Pos(i))
			}
			l.i = i + end
			continue
		case '"':
			return l.quoted(i)
		case '`':
			return l.backquoted(i)
		case '\'':
			return l.char(i)
		}
		if c == '-' || c == '+' || c == '.' || asciiDigit(c) {
			return l.numeric(i)
		}
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz <= 1 {
			return Token{}, NewLexError(ErrBadUTF8, 0, l.doc.Pos(i))
		}
		if isIdentStart(r) {
			return l.ident(i)
		}
		return Token{}, NewLexError(ErrIllegalChar, r, l.doc.Pos(i))
	}
}

func (l *Lexer) skipSpace() {
	for l.i < len(l.d) {
		switch l.d[l.i] {
		case ' ', '\t', '\r', '\f':
			l.i++
		default:
			return
		}
	}
}

func (l *Lexer) blockComment(start int) (int, error) {
	d := l.d
	for j := start + 2; j+1 < len(d); j++ {
		if d[j] == '*' && d[j+1] == '/' {
			return j + 2, nil
		}
	}
	return 0, UnterminatedErr("block comment", l.doc.Pos(start))
}

func (l *Lexer) ident(start int) (Token, error) {
	d := l.d
	j := start + identLen(d[start:])
	if hasPrefix(d[j:], "://") {
		j += 3
		for j < len(d) && !isURLEnd(d[j]) {
			j++
		}
		return l.tok(TURL, start, j), nil
	}
	switch string(d[start:j]) {
	case "true", "on":
		return l.tok(TTrue, start, j), nil
	case "false", "off":
		return l.tok(TFalse, start, j), nil
	case "null":
		return l.tok(TNull, start, j), nil
	}
	return l.tok(TIdent, start, j), nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	switch r {
	case '_', '-', '.', '$':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// identLen returns the byte length of the identifier at the start of d.
func identLen(d []byte) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if i == 0 && !isIdentStart(r) || i > 0 && !isIdentRune(r) {
			break
		}
		i += sz
	}
	return i
}

func isURLEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ';', '}', ']', ',', '"', '`', '\'':
		return true
	}
	return false
}

// isDelim reports whether c may follow a literal.
func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\f', '\n', ';', '{', '}', '[', ']', ',', ':', '=', '#', '/', '\\':
		return true
	}
	return false
}

func (l *Lexer) delimited(end int) error {
	if end >= len(l.d) || isDelim(l.d[end]) {
		return nil
	}
	r, _ := utf8.DecodeRune(l.d[end:])
	return NewLexError(ErrIllegalChar, r, l.doc.Pos(end))
}

func lineEnd(d []byte) int {
	for i, c := range d {
		if c == '\n' {
			if i > 0 && d[i-1] == '\r' {
				return i - 1
			}
			return i
		}
	}
	return len(d)
}

// continuation returns the length of a backslash, optional trailing
// blanks and a newline at the start of d.
func continuation(d []byte) (int, bool) {
	j := 1
	for j < len(d) && (d[j] == ' ' || d[j] == '\t' || d[j] == '\r') {
		j++
	}
	if j < len(d) && d[j] == '\n' {
		return j + 1, true
	}
	return 0, false
}

// base64Block returns the length of a bracketed base64 block at the
// start of d.
func base64Block(d []byte) (int, bool) {
	for j := 1; j < len(d); j++ {
		c := d[j]
		switch {
		case c == ']':
			return j + 1, true
		case isBase64(c), c == ' ', c == '\t', c == '\r', c == '\n':
		default:
			return 0, false
		}
	}
	return 0, false
}

func isBase64(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || asciiDigit(c) ||
		c == '+' || c == '/' || c == '='
}

func hasPrefix(d []byte, pre string) bool {
	if len(d) < len(pre) {
		return false
	}
	return string(d[:len(pre)]) == pre
}

func commentText(d []byte) string {
	switch {
	case hasPrefix(d, "//"):
		d = d[2:]
	case hasPrefix(d, "#"):
		d = d[1:]
	}
	for len(d) > 0 && (d[0] == ' ' || d[0] == '\t') {
		d = d[1:]
	}
	for len(d) > 0 && (d[len(d)-1] == ' ' || d[len(d)-1] == '\t') {
		d = d[:len(d)-1]
	}
	return string(d)
}
