package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/SingingBush/SDL/format"
	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/parse"
)

func encodeString(t *testing.T, tags []*ir.Tag, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := EncodeAll(tags, buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func mustParse(t *testing.T, in string, opts ...parse.ParseOption) []*ir.Tag {
	t.Helper()
	tags, err := parse.Parse([]byte(in), opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return tags
}

func TestEncodeSDL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []EncodeOption
		want string
	}{
		{
			name: "flat",
			in:   "a 1 x=2 {\n  b \"s\"\n}\n8 9",
			want: "a 1 x=2 {\nb \"s\"\n}\n8 9\n",
		},
		{
			name: "pretty",
			in:   "a { b { c 1L; }; d }",
			opts: []EncodeOption{EncodePretty(true)},
			want: "a {\n\tb {\n\t\tc 1L\n\t}\n\td\n}\n",
		},
		{
			name: "indent",
			in:   "a { b }",
			opts: []EncodeOption{EncodePretty(true), Indent("  ")},
			want: "a {\n  b\n}\n",
		},
		{
			name: "namespaces",
			in:   `ns:a 2005/1/2 p:k="v"`,
			want: "ns:a 2005/1/2 p:k=\"v\"\n",
		},
		{
			name: "values normalized",
			in:   "t 5.5d 10m on -5d:12:8:4.753 [aGVs bG8=]",
			want: "t 5.5 10BD true -5d:12:08:04.753 [aGVsbG8=]\n",
		},
		{
			name: "named content",
			in:   "ns:content 1\ncontent",
			want: "ns:content 1\ncontent\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := encodeString(t, mustParse(t, tc.in), tc.opts...)
			if got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestEncodeComments(t *testing.T) {
	in := "// top\na {\n\t# inner\n\tb 1\n}\n"
	tags := mustParse(t, in, parse.ParseComments(true))
	got := encodeString(t, tags, EncodePretty(true), EncodeComments(true))
	want := "// top\na {\n\t// inner\n\tb 1\n}\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if got := encodeString(t, tags, EncodePretty(true)); strings.Contains(got, "//") {
		t.Errorf("comments written without EncodeComments:\n%s", got)
	}

	multi := ir.MustTag("", "x")
	multi.SetComment("one\n\ntwo")
	if got := MustString(multi, EncodeComments(true)); got != "// one\n//\n// two\nx" {
		t.Errorf("multi-line comment: %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		"a 1 2L 3.5F 4.25 5.125BD 'c' \"s\\n\" `r\\` null true",
		"d 2020/2/29 2020/2/29 23:59:59.999 2020/2/29 0:0-JST 2020/2/29 1:2:3.4-GMT+05:30",
		"e 00:00:00 -00:00:00.001 3d:00:00:00 [] [AAEC]",
		"f 1.0E10 1.5E-5 0.001 -0.0",
		"x:y a:b=1 c=\"\"\"has ` tick\"\"\" {\n  z {\n    1 2\n  }\n  z\n}",
	}
	for _, doc := range docs {
		tags := mustParse(t, doc)
		for _, pretty := range []bool{false, true} {
			out := encodeString(t, tags, EncodePretty(pretty))
			back, err := parse.Parse([]byte(out))
			if err != nil {
				t.Errorf("%q encoded as %q: %v", doc, out, err)
				continue
			}
			if !ir.TagsEqual(tags, back) {
				t.Errorf("%q encoded as %q reads back differently", doc, out)
			}
			if again := encodeString(t, back, EncodePretty(pretty)); again != out {
				t.Errorf("encoding not stable:\n%s\n%s", out, again)
			}
		}
	}
}

func TestBuilderRoundTrip(t *testing.T) {
	day := time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)
	at := time.Date(2005, 12, 31, 12, 30, 5, 120*int(time.Millisecond), time.UTC)
	zoned, err := ir.FromZonedDateTimeIn(at, "JST")
	if err != nil {
		t.Fatal(err)
	}
	span := ir.Duration{Hours: 1, Minutes: 2, Seconds: 3}
	sub := ir.NewBuilder("c").Value(ir.FromDate(day)).MustBuild()
	tests := []struct {
		name string
		b    *ir.Builder
	}{
		{"numbers", ir.NewBuilder("n").Values(
			ir.FromInt32(-7), ir.FromInt64(1<<40), ir.FromFloat32(2.5),
			ir.FromFloat64(0.125), ir.FromDecimal(decimal.RequireFromString("12.50")))},
		{"text", ir.NewBuilder("s").Values(
			ir.FromString("tab\there \"q\" \\ é"), ir.FromRawString(`C:\dir`),
			ir.FromChar('\''), ir.FromChar('é'))},
		{"keywords", ir.NewBuilder("k").Values(ir.Null(), ir.FromBool(true), ir.FromBool(false))},
		{"times", ir.NewBuilder("t").Values(ir.FromDate(day), ir.FromDateTime(at), zoned)},
		{"durations", ir.NewBuilder("d").Values(
			ir.FromDuration(span), ir.FromDuration(span.Neg()),
			ir.FromDuration(ir.Duration{Days: 2, Millis: 5}))},
		{"date then duration", ir.NewBuilder("x").Values(ir.FromDate(day), ir.FromDuration(span))},
		{"date then zero duration", ir.NewBuilder("x").Values(ir.FromDate(day), ir.FromDuration(ir.Duration{}))},
		{"date then negative duration", ir.NewBuilder("x").Values(ir.FromDate(day), ir.FromDuration(span.Neg()))},
		{"anonymous date then duration", ir.NewBuilder("content").Values(ir.FromDate(day), ir.FromDuration(span))},
		{"binary", ir.NewBuilder("b").Values(ir.FromBytes([]byte{0, 1, 2, 0xff}), ir.FromBytes(nil))},
		{"keyword attributes", ir.NewBuilder("x").
			Attribute("on", ir.FromInt32(1)).
			Attribute("off", ir.Null()).
			Attribute("true", ir.FromBool(false)).
			Attribute("false", ir.FromString("f")).
			AttributeNS("null", "null", ir.FromInt32(2)).
			AttributeNS("ns", "on", ir.FromInt32(3))},
		{"keyword attribute after value", ir.NewBuilder("x").Value(ir.FromBool(true)).Attribute("null", ir.Null())},
		{"nested", ir.NewBuilder("p").Namespace("ns").
			Attribute("k", ir.FromString("v")).
			Child(sub).
			Child(ir.NewBuilder("content").Value(ir.FromInt32(1)).MustBuild())},
		{"normalized", ir.NewBuilder("x").Values(
			ir.FromDate(time.Date(-5, 3, 4, 0, 0, 0, 0, time.UTC)),
			ir.FromString("a\xffb"), ir.FromChar(0xD800))},
	}
	for _, tc := range tests {
		tag, err := tc.b.Build()
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		for _, pretty := range []bool{false, true} {
			out := encodeString(t, []*ir.Tag{tag}, EncodePretty(pretty))
			back, err := parse.Parse([]byte(out))
			if err != nil {
				t.Errorf("%s: %q: %v", tc.name, out, err)
				continue
			}
			if len(back) != 1 || !tag.Equal(back[0]) {
				t.Errorf("%s: %q reads back as %v", tc.name, out, back)
			}
		}
	}
}

func TestDurationAfterDate(t *testing.T) {
	tag := ir.NewBuilder("x").Values(
		ir.FromDate(time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)),
		ir.FromDuration(ir.Duration{Hours: 1, Minutes: 2, Seconds: 3}),
		ir.FromDuration(ir.Duration{Minutes: 4})).MustBuild()
	if got, want := MustString(tag), "x 2005/1/1 0d:01:02:03 00:04:00"; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestRawStringFallback(t *testing.T) {
	tag := ir.NewBuilder("r").Value(ir.FromRawString("ends with ` and \"")).MustBuild()
	out := MustString(tag)
	back := mustParse(t, out)
	if got := back[0].Value().Text(); got != "ends with ` and \"" {
		t.Errorf("%s read back as %q", out, got)
	}
}

func TestEncodeErrors(t *testing.T) {
	err := EncodeAll([]*ir.Tag{nil}, bytes.NewBuffer(nil))
	if !errors.Is(err, ErrEncoding) || !errors.Is(err, ir.ErrNilTag) {
		t.Errorf("nil tag: %v", err)
	}
	err = EncodeAll(nil, bytes.NewBuffer(nil), EncodeFormat(format.Format(42)))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("bad format: %v", err)
	}
}

func TestEncodeColors(t *testing.T) {
	colors := &Colors{
		Default: func(s string, _ ...any) string { return s },
		Map: map[Colorable]func(string, ...any) string{
			{Attr: NameColor}:                     func(s string, _ ...any) string { return "<" + s + ">" },
			{Type: ir.Int32Type, Attr: ValueColor}: func(s string, _ ...any) string { return "#" + s },
		},
	}
	tag := ir.NewBuilder("a").Value(ir.FromInt32(1)).Value(ir.FromString("s")).MustBuild()
	if got := MustString(tag, EncodeColors(colors)); got != `<a> #1 "s"` {
		t.Errorf("got %q", got)
	}
	if got := MustString(tag, EncodeColors(NewColors())); !strings.Contains(got, "a") {
		t.Errorf("default palette lost the name: %q", got)
	}
}

func exportTag(t *testing.T) *ir.Tag {
	t.Helper()
	return ir.NewBuilder("server").
		Namespace("net").
		Comment("main").
		Values(ir.FromString("web"), ir.FromInt64(7), ir.FromDecimal(decimal.RequireFromString("1.50"))).
		Attribute("up", ir.FromBool(true)).
		AttributeNS("x", "since", ir.FromDate(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC))).
		Children(
			ir.NewBuilder("blob").Value(ir.FromBytes([]byte("hi"))).MustBuild(),
			ir.NewBuilder("none").Value(ir.Null()).MustBuild(),
		).
		MustBuild()
}

func TestEncodeJSON(t *testing.T) {
	out := encodeString(t, []*ir.Tag{exportTag(t)}, EncodeFormat(format.JSONFormat), EncodeComments(true))
	want := `{"namespace":"net","name":"server","comment":"main","values":["web",7,1.5],` +
		`"attributes":{"up":true,"x:since":"2020/1/2"},` +
		`"children":[{"name":"blob","values":["aGk="]},{"name":"none","values":[null]}]}` + "\n"
	if out != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}

	out = encodeString(t, []*ir.Tag{exportTag(t), ir.MustTag("", "b")}, EncodeFormat(format.JSONFormat), EncodePretty(true))
	var docs []map[string]any
	if err := json.Unmarshal([]byte(out), &docs); err != nil {
		t.Fatalf("%s: %v", out, err)
	}
	if len(docs) != 2 || docs[1]["name"] != "b" {
		t.Errorf("got %v", docs)
	}
	if _, ok := docs[0]["comment"]; ok {
		t.Error("comment written without EncodeComments")
	}
	if !strings.Contains(out, "\n  {\n    \"namespace\"") {
		t.Errorf("not indented:\n%s", out)
	}
}

func TestEncodeYAML(t *testing.T) {
	out := encodeString(t, []*ir.Tag{exportTag(t)}, EncodeFormat(format.YAMLFormat))
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("%s: %v", out, err)
	}
	got := map[string]string{}
	for _, k := range []string{"namespace", "name", "values", "attributes", "children"} {
		got[k] = fmt.Sprint(doc[k])
	}
	want := map[string]string{
		"namespace":  "net",
		"name":       "server",
		"values":     "[web 7 1.5]",
		"attributes": "map[up:true x:since:2020/1/2]",
		"children":   "[map[name:blob values:[aGk=]] map[name:none values:[<nil>]]]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s\n%s", diff, out)
	}
	keys := []string{}
	for _, ln := range strings.Split(out, "\n") {
		if k, _, ok := strings.Cut(ln, ":"); ok && !strings.HasPrefix(ln, " ") && !strings.HasPrefix(ln, "-") {
			keys = append(keys, k)
		}
	}
	if diff := cmp.Diff([]string{"namespace", "name", "values", "attributes", "children"}, keys); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
}
