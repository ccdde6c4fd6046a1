package ir

import (
	"bytes"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Value is an immutable typed literal. The zero Value is null.
//
// Only the payload field matching the type is meaningful.
type Value struct {
	typ  Type
	s    string
	i    int64
	f    float64
	f32  float32
	dec  decimal.Decimal
	t    time.Time
	zone string
	dur  Duration
	b    []byte
}

func Null() Value {
	return Value{}
}

// FromString returns a string value. Invalid UTF-8 in s is replaced by
// U+FFFD.
func FromString(s string) Value {
	return Value{typ: StringType, s: strings.ToValidUTF8(s, "\uFFFD")}
}

// FromRawString returns a string value which is written back as a raw
// (backquoted) literal.
func FromRawString(s string) Value {
	return Value{typ: RawStringType, s: strings.ToValidUTF8(s, "\uFFFD")}
}

// FromChar returns a character value. A rune outside the Unicode range
// or in the surrogate range becomes U+FFFD.
func FromChar(r rune) Value {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	return Value{typ: CharType, i: int64(r)}
}

func FromInt32(i int32) Value {
	return Value{typ: Int32Type, i: int64(i)}
}

func FromInt64(i int64) Value {
	return Value{typ: Int64Type, i: i}
}

func FromFloat32(f float32) Value {
	return Value{typ: Float32Type, f32: f}
}

func FromFloat64(f float64) Value {
	return Value{typ: Float64Type, f: f}
}

func FromDecimal(d decimal.Decimal) Value {
	return Value{typ: DecimalType, dec: d}
}

func FromBool(b bool) Value {
	v := Value{typ: BoolType}
	if b {
		v.i = 1
	}
	return v
}

// FromDate returns a date value holding the calendar date of t. Years
// before 0 are raised to 0, the first year a date literal can hold.
func FromDate(t time.Time) Value {
	y, m, d := clampYear(t).Date()
	return Value{typ: DateType, t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// FromDateTime returns a date-time value without a zone holding the wall
// clock of t, truncated to milliseconds.
func FromDateTime(t time.Time) Value {
	t = clampYear(t)
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	ns := t.Nanosecond() / int(time.Millisecond) * int(time.Millisecond)
	return Value{typ: DateTimeType, t: time.Date(y, mo, d, h, mi, s, ns, time.UTC)}
}

// clampYear moves t to year 0 when it is earlier, keeping the rest of
// its wall clock in its location.
func clampYear(t time.Time) time.Time {
	if t.Year() >= 0 {
		return t
	}
	_, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(0, mo, d, h, mi, s, t.Nanosecond(), t.Location())
}

// FromZonedDateTime returns a zoned date-time value for t, truncated to
// milliseconds. The zone id is the name of t's location when it can be
// read back, else t's zone abbreviation, else its offset from UTC.
func FromZonedDateTime(t time.Time) Value {
	return Value{typ: ZonedDateTimeType, t: clampYear(t).Truncate(time.Millisecond), zone: zoneID(t)}
}

// FromZonedDateTimeIn returns a zoned date-time value for the wall clock
// of t in the zone named by id. id is checked with LoadZone.
func FromZonedDateTimeIn(t time.Time, id string) (Value, error) {
	loc, err := LoadZone(id)
	if err != nil {
		return Value{}, err
	}
	t = clampYear(t)
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	ns := t.Nanosecond() / int(time.Millisecond) * int(time.Millisecond)
	return Value{
		typ:  ZonedDateTimeType,
		t:    time.Date(y, mo, d, h, mi, s, ns, loc),
		zone: id,
	}, nil
}

func zoneID(t time.Time) string {
	if name := t.Location().String(); name != "Local" {
		if _, err := LoadZone(name); err == nil {
			return name
		}
	}
	abbr, off := t.Zone()
	if _, err := LoadZone(abbr); err == nil {
		return abbr
	}
	if off == 0 {
		return "UTC"
	}
	sign := byte('+')
	if off < 0 {
		sign, off = '-', -off
	}
	off /= 60
	return "GMT" + string(sign) + twoDigits(off/60) + ":" + twoDigits(off%60)
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}

func FromDuration(d Duration) Value {
	return Value{typ: DurationType, dur: d}
}

// FromStdDuration returns a duration value for d, split into days,
// hours, minutes, seconds and milliseconds.
func FromStdDuration(d time.Duration) Value {
	return FromDuration(DurationOf(d))
}

// FromBytes returns a binary value holding a copy of b.
func FromBytes(b []byte) Value {
	return Value{typ: BinaryType, b: bytes.Clone(b)}
}

func (v Value) Type() Type {
	return v.typ
}

func (v Value) IsNull() bool {
	return v.typ == NullType
}

// Text returns the payload of string and raw string values.
func (v Value) Text() string {
	return v.s
}

func (v Value) Char() rune {
	if v.typ != CharType {
		return 0
	}
	return rune(v.i)
}

// Int64 returns the payload of integer values.
func (v Value) Int64() int64 {
	switch v.typ {
	case Int32Type, Int64Type:
		return v.i
	}
	return 0
}

func (v Value) Int32() int32 {
	return int32(v.Int64())
}

// Float64 returns the payload of any numeric value as a float64.
func (v Value) Float64() float64 {
	switch v.typ {
	case Float64Type:
		return v.f
	case Float32Type:
		return float64(v.f32)
	case Int32Type, Int64Type:
		return float64(v.i)
	case DecimalType:
		return v.dec.InexactFloat64()
	}
	return 0
}

func (v Value) Float32() float32 {
	if v.typ == Float32Type {
		return v.f32
	}
	return float32(v.Float64())
}

// Decimal returns the payload of any numeric value as a decimal.
func (v Value) Decimal() decimal.Decimal {
	switch v.typ {
	case DecimalType:
		return v.dec
	case Int32Type, Int64Type:
		return decimal.NewFromInt(v.i)
	case Float32Type:
		return decimal.NewFromFloat32(v.f32)
	case Float64Type:
		return decimal.NewFromFloat(v.f)
	}
	return decimal.Zero
}

func (v Value) Bool() bool {
	return v.typ == BoolType && v.i != 0
}

// Time returns the payload of date, date-time and zoned date-time
// values. Dates and unzoned date-times are in UTC.
func (v Value) Time() time.Time {
	return v.t
}

// Zone returns the zone id of a zoned date-time as written.
func (v Value) Zone() string {
	return v.zone
}

func (v Value) Duration() Duration {
	return v.dur
}

// Bytes returns a copy of the payload of a binary value.
func (v Value) Bytes() []byte {
	return bytes.Clone(v.b)
}

// Any returns the payload as a plain Go value: nil, string, rune, int32,
// int64, float32, float64, decimal.Decimal, bool, time.Time, Duration or
// []byte.
func (v Value) Any() any {
	switch v.typ {
	case StringType, RawStringType:
		return v.s
	case CharType:
		return rune(v.i)
	case Int32Type:
		return int32(v.i)
	case Int64Type:
		return v.i
	case Float32Type:
		return v.f32
	case Float64Type:
		return v.f
	case DecimalType:
		return v.dec
	case BoolType:
		return v.i != 0
	case DateType, DateTimeType, ZonedDateTimeType:
		return v.t
	case DurationType:
		return v.dur
	case BinaryType:
		return v.Bytes()
	}
	return nil
}

// Equal reports whether v and o have the same kind and payload. String
// and raw string values are the same kind here: only their text is
// compared. Decimals compare numerically.
func (v Value) Equal(o Value) bool {
	if v.typ.IsText() && o.typ.IsText() {
		return v.s == o.s
	}
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case NullType:
		return true
	case CharType, Int32Type, Int64Type, BoolType:
		return v.i == o.i
	case Float32Type:
		return v.f32 == o.f32
	case Float64Type:
		return v.f == o.f
	case DecimalType:
		return v.dec.Equal(o.dec)
	case DateType, DateTimeType:
		return v.t.Equal(o.t)
	case ZonedDateTimeType:
		return v.zone == o.zone && v.t.Equal(o.t)
	case DurationType:
		return v.dur == o.dur
	case BinaryType:
		return bytes.Equal(v.b, o.b)
	}
	return false
}
