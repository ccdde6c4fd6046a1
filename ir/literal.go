package ir

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"

	"github.com/SingingBush/SDL/token"
)

// String returns v as a literal which parses back to an equal value.
func (v Value) String() string {
	switch v.typ {
	case NullType:
		return "null"
	case StringType:
		return token.Quote(v.s)
	case RawStringType:
		if s, ok := token.QuoteRaw(v.s); ok {
			return s
		}
		return token.Quote(v.s)
	case CharType:
		return token.QuoteChar(rune(v.i))
	case Int32Type:
		return strconv.FormatInt(v.i, 10)
	case Int64Type:
		return strconv.FormatInt(v.i, 10) + "L"
	case Float32Type:
		return formatFloat(float64(v.f32), 32) + "F"
	case Float64Type:
		return formatFloat(v.f, 64)
	case DecimalType:
		return v.dec.String() + "BD"
	case BoolType:
		return strconv.FormatBool(v.i != 0)
	case DateType:
		return FormatDate(v.t)
	case DateTimeType:
		return FormatDateTime(v.t, "")
	case ZonedDateTimeType:
		return FormatDateTime(v.t, v.zone)
	case DurationType:
		return v.dur.String()
	case BinaryType:
		return "[" + base64.StdEncoding.EncodeToString(v.b) + "]"
	}
	return "<unknown value>"
}

// formatFloat writes f so that it always reads back as a floating point
// literal: plain notation in [1e-3, 1e7) and zero, exponent notation
// with a mantissa containing a point elsewhere.
func formatFloat(f float64, bits int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	abs := math.Abs(f)
	if abs == 0 || abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, bits)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(f, 'E', -1, bits)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.ContainsRune(mant, '.') {
		mant += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(e)
}
