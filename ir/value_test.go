package ir

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestValueString(t *testing.T) {
	day := time.Date(2005, 12, 31, 12, 30, 5, 120*int(time.Millisecond), time.UTC)
	jst, err := FromZonedDateTimeIn(day, "JST")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), "null"},
		{"string", FromString(`say "hi"`), `"say \"hi\""`},
		{"raw", FromRawString(`c:\dir`), "`c:\\dir`"},
		{"char", FromChar('x'), "'x'"},
		{"int32", FromInt32(-42), "-42"},
		{"int64", FromInt64(5), "5L"},
		{"float32", FromFloat32(1.5), "1.5F"},
		{"float64", FromFloat64(0.5), "0.5"},
		{"float64 whole", FromFloat64(3), "3.0"},
		{"float64 big", FromFloat64(1e10), "1.0E10"},
		{"float64 small", FromFloat64(1.5e-5), "1.5E-5"},
		{"decimal", FromDecimal(decimal.RequireFromString("12.5")), "12.5BD"},
		{"true", FromBool(true), "true"},
		{"false", FromBool(false), "false"},
		{"date", FromDate(day), "2005/12/31"},
		{"datetime", FromDateTime(day), "2005/12/31 12:30:5.120"},
		{"zoned", jst, "2005/12/31 12:30:5.120-JST"},
		{"duration", FromDuration(Duration{Hours: 1, Minutes: 2, Seconds: 3}), "01:02:03"},
		{"binary", FromBytes([]byte("hi")), "[aGk=]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.String(); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{FromString("a"), FromRawString("a"), true},
		{FromString("a"), FromString("b"), false},
		{FromInt32(1), FromInt64(1), false},
		{FromInt64(1), FromInt64(1), true},
		{FromDecimal(decimal.RequireFromString("1.50")), FromDecimal(decimal.RequireFromString("1.5")), true},
		{Null(), Null(), true},
		{Null(), FromBool(false), false},
		{FromBytes([]byte{1, 2}), FromBytes([]byte{1, 2}), true},
		{FromBytes([]byte{1, 2}), FromBytes([]byte{1}), false},
		{FromDuration(Duration{Seconds: 1}), FromStdDuration(time.Second), true},
	}
	for i, tc := range tests {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Errorf("%d: %s == %s: got %t want %t", i, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestValueAccessors(t *testing.T) {
	if got := FromInt32(7).Float64(); got != 7 {
		t.Errorf("Float64 of int: %v", got)
	}
	if got := FromFloat64(2.5).Decimal(); !got.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("Decimal of float: %s", got)
	}
	if got := FromString("x").Int64(); got != 0 {
		t.Errorf("Int64 of string: %d", got)
	}
	if got := FromChar('é').Char(); got != 'é' {
		t.Errorf("Char: %q", got)
	}
	b := []byte{1, 2, 3}
	v := FromBytes(b)
	b[0] = 9
	if diff := cmp.Diff([]byte{1, 2, 3}, v.Bytes()); diff != "" {
		t.Errorf("binary payload shared with caller (-want +got):\n%s", diff)
	}
	v.Bytes()[1] = 9
	if diff := cmp.Diff([]byte{1, 2, 3}, v.Bytes()); diff != "" {
		t.Errorf("binary payload shared with result (-want +got):\n%s", diff)
	}
	if got, ok := FromInt64(3).Any().(int64); !ok || got != 3 {
		t.Errorf("Any of int64: %v", FromInt64(3).Any())
	}
	if got := Null().Any(); got != nil {
		t.Errorf("Any of null: %v", got)
	}
}

func TestDateTimeTruncation(t *testing.T) {
	tm := time.Date(2020, 2, 29, 23, 59, 59, 123456789, time.UTC)
	v := FromDateTime(tm)
	if got := v.Time().Nanosecond(); got != 123000000 {
		t.Errorf("nanoseconds %d", got)
	}
	d := FromDate(tm)
	if h, m, s := d.Time().Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("date keeps clock %d:%d:%d", h, m, s)
	}
}

func TestFromZonedDateTime(t *testing.T) {
	tests := []struct {
		loc  *time.Location
		want string
	}{
		{time.UTC, "UTC"},
		{time.FixedZone("", 3600+30*60), "GMT+01:30"},
		{time.FixedZone("", -5*3600), "GMT-05:00"},
		{time.FixedZone("PST", -8*3600), "PST"},
	}
	for _, tc := range tests {
		tm := time.Date(2021, 6, 1, 8, 0, 0, 0, tc.loc)
		v := FromZonedDateTime(tm)
		if v.Zone() != tc.want {
			t.Errorf("zone of %s: got %q want %q", tc.loc, v.Zone(), tc.want)
		}
		if _, err := LoadZone(v.Zone()); err != nil {
			t.Errorf("zone %q does not load: %v", v.Zone(), err)
		}
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Null(), false},
		{FromString(""), false},
		{FromString("x"), true},
		{FromInt32(0), false},
		{FromInt64(-1), true},
		{FromFloat64(0), false},
		{FromFloat32(0.25), true},
		{FromDecimal(decimal.Zero), false},
		{FromBool(false), false},
		{FromBool(true), true},
		{FromDuration(Duration{}), false},
		{FromDuration(Duration{Millis: 1}), true},
		{FromBytes(nil), false},
		{FromChar('a'), true},
	}
	for _, tc := range tests {
		if got := Truth(tc.v); got != tc.want {
			t.Errorf("Truth(%s) = %t", tc.v, got)
		}
	}
}

func TestNonFiniteFloat(t *testing.T) {
	if got := FromFloat64(math.Inf(1)).String(); got != "+Inf" {
		t.Errorf("got %s", got)
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s read back as %s", typ, back)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Nope")); err == nil {
		t.Error("expected error")
	}
}

func TestValueNormalization(t *testing.T) {
	if got := FromString("a\xffb").Text(); got != "a�b" {
		t.Errorf("string %q", got)
	}
	if got := FromRawString("\xff").Text(); got != "�" {
		t.Errorf("raw string %q", got)
	}
	if got := FromChar(0xD800).Char(); got != '�' {
		t.Errorf("char %U", got)
	}
	if got := FromChar('é').Char(); got != 'é' {
		t.Errorf("char %U", got)
	}
	early := time.Date(-5, 3, 4, 5, 6, 7, 0, time.UTC)
	if got := FromDate(early).String(); got != "0/3/4" {
		t.Errorf("date %s", got)
	}
	if got := FromDateTime(early).String(); got != "0/3/4 5:6:7.000" {
		t.Errorf("date-time %s", got)
	}
	z, err := FromZonedDateTimeIn(early, "UTC")
	if err != nil {
		t.Fatal(err)
	}
	if got := z.String(); got != "0/3/4 5:6:7.000-UTC" {
		t.Errorf("zoned %s", got)
	}
}
