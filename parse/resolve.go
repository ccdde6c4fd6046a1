package parse

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/token"
)

// resolve returns the value denoted by a value node.
func resolve(v *ValueNode) (ir.Value, error) {
	switch v.Kind {
	case ListValue:
		return ir.Value{}, semanticErr(&v.Tok, fmt.Errorf("%w: list", ErrUnsupportedLiteral))
	case MapValue:
		return ir.Value{}, semanticErr(&v.Tok, fmt.Errorf("%w: map", ErrUnsupportedLiteral))
	}
	return resolveToken(&v.Tok)
}

func resolveToken(t *token.Token) (ir.Value, error) {
	s := string(t.Bytes)
	switch t.Type {
	case token.TString, token.TIdent:
		return ir.FromString(t.String()), nil
	case token.TRawString:
		return ir.FromRawString(t.String()), nil
	case token.TChar:
		return ir.FromChar(t.Char()), nil
	case token.TInteger:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return ir.Value{}, semanticErr(t, numErr(err))
		}
		return ir.FromInt32(int32(i)), nil
	case token.TLong:
		i, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
		if err != nil {
			return ir.Value{}, semanticErr(t, numErr(err))
		}
		return ir.FromInt64(i), nil
	case token.TFloat:
		f, err := strconv.ParseFloat(s[:len(s)-1], 32)
		if err != nil {
			return ir.Value{}, semanticErr(t, numErr(err))
		}
		return ir.FromFloat32(float32(f)), nil
	case token.TDouble:
		s = strings.TrimRight(s, "dD")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return ir.Value{}, semanticErr(t, numErr(err))
		}
		return ir.FromFloat64(f), nil
	case token.TDecimal:
		s = strings.TrimRight(s, "bBdDmM")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return ir.Value{}, semanticErr(t, err)
		}
		return ir.FromDecimal(d), nil
	case token.TTrue:
		return ir.FromBool(true), nil
	case token.TFalse:
		return ir.FromBool(false), nil
	case token.TNull:
		return ir.Null(), nil
	case token.TDate:
		d, err := parseDate(s)
		if err != nil {
			return ir.Value{}, semanticErr(t, err)
		}
		return ir.FromDate(d), nil
	case token.TDateTime:
		v, err := parseDateTime(s)
		if err != nil {
			return ir.Value{}, semanticErr(t, err)
		}
		return v, nil
	case token.TDuration:
		d, err := parseDuration(s)
		if err != nil {
			return ir.Value{}, semanticErr(t, err)
		}
		return ir.FromDuration(d), nil
	case token.TBinary:
		b, err := decodeBinary(t.Bytes)
		if err != nil {
			return ir.Value{}, semanticErr(t, err)
		}
		return ir.FromBytes(b), nil
	case token.THex, token.TBin, token.TVersion, token.TURL:
		kind := strings.ToLower(strings.TrimPrefix(t.Type.String(), "T"))
		return ir.Value{}, semanticErr(t, fmt.Errorf("%w: %s", ErrUnsupportedLiteral, kind))
	}
	return ir.Value{}, fmt.Errorf("%w: token %s is not a value", errInternal, t.Type)
}

func numErr(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}

// parseDate parses y/M/d, rejecting dates which do not exist.
func parseDate(s string) (time.Time, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("malformed date")
	}
	var ymd [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("malformed date: %w", numErr(err))
		}
		ymd[i] = n
	}
	t := time.Date(ymd[0], time.Month(ymd[1]), ymd[2], 0, 0, 0, 0, time.UTC)
	if y, m, d := t.Date(); y != ymd[0] || int(m) != ymd[1] || d != ymd[2] {
		return time.Time{}, fmt.Errorf("no such date")
	}
	return t, nil
}

// parseDateTime parses a date, blanks, H:M[:S[.fff]] and an optional
// "-zone". The fraction is a fraction of a second of at most three
// digits.
func parseDateTime(s string) (ir.Value, error) {
	i := strings.IndexAny(s, " \t")
	if i == -1 {
		return ir.Value{}, fmt.Errorf("malformed date-time")
	}
	date, err := parseDate(s[:i])
	if err != nil {
		return ir.Value{}, err
	}
	rest := strings.TrimLeft(s[i:], " \t")
	clock, zone, zoned := strings.Cut(rest, "-")
	hms := strings.Split(clock, ":")
	if len(hms) < 2 || len(hms) > 3 {
		return ir.Value{}, fmt.Errorf("malformed time")
	}
	frac := ""
	if len(hms) == 3 {
		hms[2], frac, _ = strings.Cut(hms[2], ".")
	}
	var f [3]int
	for j, p := range hms {
		n, err := strconv.Atoi(p)
		if err != nil {
			return ir.Value{}, fmt.Errorf("malformed time: %w", numErr(err))
		}
		f[j] = n
	}
	if f[0] > 23 || f[1] > 59 || f[2] > 59 {
		return ir.Value{}, fmt.Errorf("time %s out of range", clock)
	}
	ms := 0
	if frac != "" {
		if len(frac) > 3 {
			return ir.Value{}, fmt.Errorf("more than millisecond precision")
		}
		ms, err = strconv.Atoi(frac + strings.Repeat("0", 3-len(frac)))
		if err != nil {
			return ir.Value{}, fmt.Errorf("malformed time: %w", numErr(err))
		}
	}
	y, mo, d := date.Date()
	t := time.Date(y, mo, d, f[0], f[1], f[2], ms*int(time.Millisecond), time.UTC)
	if !zoned {
		return ir.FromDateTime(t), nil
	}
	return ir.FromZonedDateTimeIn(t, zone)
}

// parseDuration parses [-][Nd:]H:M:S[.mmm]. The digits after the point
// are a count of milliseconds.
func parseDuration(s string) (ir.Duration, error) {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var days int64
	if i := strings.IndexAny(s, "dD"); i != -1 {
		n, err := strconv.ParseInt(s[:i], 10, 64)
		if err != nil {
			return ir.Duration{}, fmt.Errorf("malformed days: %w", numErr(err))
		}
		days = n
		s = s[i+2:]
	}
	s, msText, _ := strings.Cut(s, ".")
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return ir.Duration{}, fmt.Errorf("malformed duration")
	}
	var hms [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return ir.Duration{}, fmt.Errorf("malformed duration: %w", numErr(err))
		}
		hms[i] = n
	}
	var ms int64
	if msText != "" {
		n, err := strconv.ParseInt(msText, 10, 64)
		if err != nil {
			return ir.Duration{}, fmt.Errorf("malformed milliseconds: %w", numErr(err))
		}
		ms = n
	}
	d, err := ir.MakeDuration(days, hms[0], hms[1], hms[2], ms)
	if err != nil {
		return ir.Duration{}, err
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}

func decodeBinary(d []byte) ([]byte, error) {
	d = d[1 : len(d)-1]
	d = bytes.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, d)
	res := make([]byte, base64.StdEncoding.DecodedLen(len(d)))
	n, err := base64.StdEncoding.Decode(res, d)
	if err != nil {
		return nil, err
	}
	return res[:n], nil
}
