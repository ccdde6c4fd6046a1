package token

// numeric lexes every literal that starts with a sign, a digit or a
// dot: numbers, dates, date-times and durations.
func (l *Lexer) numeric(start int) (Token, error) {
	d := l.d
	i := start
	if d[i] == '-' || d[i] == '+' {
		i++
	}
	signed := i > start
	digits := asciiDigits(d[i:])

	if digits > 0 && !signed {
		if n := date(d[i:]); n > 0 {
			return l.dateTime(start, i+n)
		}
	}
	if digits > 0 && d[start] != '+' {
		if n := duration(d[i:]); n > 0 {
			return l.delimitedTok(TDuration, start, i+n)
		}
	}
	if digits == 1 && d[i] == '0' && i+2 < len(d) {
		switch d[i+1] {
		case 'x', 'X':
			if n := hexDigits(d[i+2:]); n > 0 {
				return l.delimitedTok(THex, start, i+2+n)
			}
		case 'b', 'B':
			if n := binDigits(d[i+2:]); n > 0 {
				return l.delimitedTok(TBin, start, i+2+n)
			}
		}
	}
	if digits > 0 && !signed {
		if n := version(d[i:]); n > 0 {
			return l.delimitedTok(TVersion, start, i+n)
		}
	}

	j := i + digits
	f := fract(d[j:])
	if digits == 0 && f == 0 {
		if j < len(d) {
			return Token{}, NewLexError(ErrIllegalChar, rune(d[start]), l.doc.Pos(start))
		}
		return Token{}, NewLexError(ErrNumber, 0, l.doc.Pos(start))
	}
	j += f
	e := exp(d[j:])
	j += e
	typ := TInteger
	if f+e > 0 {
		typ = TDouble
	}
	switch {
	case hasPrefix(d[j:], "BD"), hasPrefix(d[j:], "bd"), hasPrefix(d[j:], "Bd"), hasPrefix(d[j:], "bD"):
		typ = TDecimal
		j += 2
	case j < len(d):
		switch d[j] {
		case 'L', 'l':
			typ = TLong
			j++
		case 'F', 'f':
			typ = TFloat
			j++
		case 'D', 'd':
			typ = TDouble
			j++
		case 'M', 'm':
			typ = TDecimal
			j++
		}
	}
	return l.delimitedTok(typ, start, j)
}

func (l *Lexer) delimitedTok(t TokenType, start, end int) (Token, error) {
	if err := l.delimited(end); err != nil {
		return Token{}, err
	}
	return l.tok(t, start, end), nil
}

// dateTime lexes a date ending at end, extended to a date-time when a
// time of day follows on the same line.
func (l *Lexer) dateTime(start, end int) (Token, error) {
	d := l.d
	j := end
	for j < len(d) && (d[j] == ' ' || d[j] == '\t') {
		j++
	}
	if j == end || j >= len(d) {
		return l.delimitedTok(TDate, start, end)
	}
	n := timeOfDay(d[j:])
	if n == 0 {
		return l.delimitedTok(TDate, start, end)
	}
	j += n
	if j+1 < len(d) && d[j] == '-' && isZoneByte(d[j+1]) {
		j++
		for j < len(d) && isZoneByte(d[j]) {
			j++
		}
	}
	return l.delimitedTok(TDateTime, start, j)
}

func isZoneByte(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || asciiDigit(c) ||
		c == '_' || c == '/' || c == '+' || c == '-' || c == ':' || c == '.'
}

// date matches digits/digits/digits.
func date(d []byte) int {
	return sepDigits(d, '/', 3)
}

// version matches digits.digits.digits with optional further parts.
func version(d []byte) int {
	n := sepDigits(d, '.', 3)
	if n == 0 {
		return 0
	}
	for n < len(d) && d[n] == '.' {
		m := asciiDigits(d[n+1:])
		if m == 0 {
			break
		}
		n += 1 + m
	}
	return n
}

// timeOfDay matches H:M[:S[.fff]].
func timeOfDay(d []byte) int {
	n := asciiDigits(d)
	if n == 0 || n >= len(d) || d[n] != ':' {
		return 0
	}
	m := asciiDigits(d[n+1:])
	if m == 0 {
		return 0
	}
	n += 1 + m
	if n < len(d) && d[n] == ':' {
		s := asciiDigits(d[n+1:])
		if s == 0 {
			return 0
		}
		n += 1 + s
		if n < len(d) && d[n] == '.' {
			f := asciiDigits(d[n+1:])
			if f == 0 {
				return 0
			}
			n += 1 + f
		}
	}
	return n
}

// duration matches [Nd:]H:M:S[.mmm]; d starts with a digit.
func duration(d []byte) int {
	n := 0
	if k := asciiDigits(d); k < len(d)-1 && (d[k] == 'd' || d[k] == 'D') && d[k+1] == ':' {
		n = k + 2
	}
	m := sepDigits(d[n:], ':', 3)
	if m == 0 {
		return 0
	}
	n += m
	if n < len(d) && d[n] == '.' {
		f := asciiDigits(d[n+1:])
		if f == 0 {
			return 0
		}
		n += 1 + f
	}
	return n
}

// sepDigits matches count runs of digits separated by sep.
func sepDigits(d []byte, sep byte, count int) int {
	n := 0
	for k := 0; k < count; k++ {
		if k > 0 {
			if n >= len(d) || d[n] != sep {
				return 0
			}
			n++
		}
		m := asciiDigits(d[n:])
		if m == 0 {
			return 0
		}
		n += m
	}
	return n
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func hexDigits(d []byte) int {
	i := 0
	for i < len(d) {
		c := d[i]
		if !asciiDigit(c) && !(c >= 'a' && c <= 'f') && !(c >= 'A' && c <= 'F') {
			return i
		}
		i++
	}
	return i
}

func binDigits(d []byte) int {
	i := 0
	for i < len(d) && (d[i] == '0' || d[i] == '1') {
		i++
	}
	return i
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return i + n
}
