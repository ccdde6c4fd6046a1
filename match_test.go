package sdl

import (
	"testing"

	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/parse"
)

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{
		in:    `a 1`,
		match: `a 1`,
		res:   true,
	},
	{
		in:    `a 0`,
		match: `a 1`,
		res:   false,
	},
	{
		in:    `a 1 2`,
		match: `a`,
		res:   true,
	},
	{
		in:    `a 1 2`,
		match: `a 1`,
		res:   false,
	},
	{
		in:    `a 1 2`,
		match: `a null 2`,
		res:   true,
	},
	{
		in:    `a "x"`,
		match: "a `x`",
		res:   true,
	},
	{
		in:    `a 1`,
		match: `a 1L`,
		res:   false,
	},
	{
		in:    `b 1`,
		match: `_ 1`,
		res:   true,
	},
	{
		in:    `ns:b`,
		match: `b`,
		res:   false,
	},
	{
		in:    `ns:b`,
		match: `_:b`,
		res:   true,
	},
	{
		in:    `a x=1 y=2`,
		match: `a y=2`,
		res:   true,
	},
	{
		in:    `a x=1`,
		match: `a x=null`,
		res:   true,
	},
	{
		in:    `a x=1`,
		match: `a z=null`,
		res:   false,
	},
	{
		in:    `a p:x=1`,
		match: `a x=1`,
		res:   false,
	},
	{
		in:    "a {\n  b 1\n  c 2\n}",
		match: "a {\n  c 2\n}",
		res:   true,
	},
	{
		in:    "a {\n  b 1\n}",
		match: "a {\n  b 1\n  b 1\n}",
		res:   false,
	},
	{
		in:    "a {\n  b 1\n  b 2\n}",
		match: "a {\n  b 2\n  b 1\n}",
		res:   true,
	},
	{
		in:    "a {\n  b {\n    c 3 k=on\n  }\n}",
		match: "a {\n  _ {\n    c k=true\n  }\n}",
		res:   true,
	},
}

func parseOne(t *testing.T, s string) *ir.Tag {
	t.Helper()
	tags, err := ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	if len(tags) != 1 {
		t.Fatalf("%q: %d tags", s, len(tags))
	}
	return tags[0]
}

func TestMatch(t *testing.T) {
	for i := range matchTests {
		mt := &matchTests[i]
		doc := parseOne(t, mt.in)
		pat := parseOne(t, mt.match)
		if got := Match(doc, pat); got != mt.res {
			t.Errorf("%q match %q: got %t", encode.MustString(doc), encode.MustString(pat), got)
		}
	}
}

func TestMatchComments(t *testing.T) {
	doc, err := ParseString("# primary\na 1", parse.ParseComments(true))
	if err != nil {
		t.Fatal(err)
	}
	same, _ := ParseString("# primary\na", parse.ParseComments(true))
	other, _ := ParseString("# backup\na", parse.ParseComments(true))
	if !Match(doc[0], other[0]) {
		t.Error("comments compared without MatchComments")
	}
	if Match(doc[0], other[0], MatchComments(true)) {
		t.Error("different comments matched")
	}
	if !Match(doc[0], same[0], MatchComments(true)) {
		t.Error("equal comments did not match")
	}
}

func TestTrim(t *testing.T) {
	doc := parseOne(t, "a 1 x=1 y=2 {\n  b 1 {\n    d\n  }\n  c 2\n  b 3\n}")
	pat := parseOne(t, "a y=null {\n  b 3\n}")
	got := Trim(pat, doc)
	if got == nil {
		t.Fatal("no match")
	}
	want := "a 1 y=2 {\nb 3\n}"
	if s := encode.MustString(got); s != want {
		t.Errorf("got\n%s\nwant\n%s", s, want)
	}
	if got.Parent() != nil {
		t.Error("trimmed copy has a parent")
	}
	if doc.NumChildren() != 3 {
		t.Error("Trim changed its input")
	}
	if Trim(parseOne(t, "z"), doc) != nil {
		t.Error("trim of non-matching pattern")
	}
}
