package sdl

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/parse"
)

const person = `// a comment
person "Akiko" "Johnson" dimensions:height=68 {
    son "Nouhiro" "Johnson"
    daughter "Sabrina" "Johnson" location="Italy" {
        hobbies "swimming" "surfing"
        birthday 1998/10/25
    }
}
`

func TestParseDocument(t *testing.T) {
	tags, err := ParseReader(strings.NewReader(person), parse.ParseComments(true))
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 1 {
		t.Fatalf("got %d tags", len(tags))
	}
	p := tags[0]
	if p.Comment() != "a comment" {
		t.Errorf("comment %q", p.Comment())
	}
	if h, ok := p.AttributeNS("dimensions", "height"); !ok || h.Int32() != 68 {
		t.Errorf("height %v %t", h, ok)
	}
	d := p.Child("daughter")
	if d == nil {
		t.Fatal("no daughter")
	}
	if loc, _ := d.Attribute("location"); loc.Text() != "Italy" {
		t.Errorf("location %s", loc)
	}
	bd := d.Child("birthday").Value()
	if bd.Type() != ir.DateType || bd.String() != "1998/10/25" {
		t.Errorf("birthday %s %s", bd.Type(), bd)
	}
	want := `// a comment
person "Akiko" "Johnson" dimensions:height=68 {
	son "Nouhiro" "Johnson"
	daughter "Sabrina" "Johnson" location="Italy" {
		hobbies "swimming" "surfing"
		birthday 1998/10/25
	}
}`
	if got := Format(p, true); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseString("a 1\nb {\n")
	var pe *parse.Error
	if !errors.As(err, &pe) {
		t.Fatalf("got %v", err)
	}
	if pe.Line != 3 || pe.Col != 1 {
		t.Errorf("at %d:%d", pe.Line, pe.Col)
	}
	if !errors.Is(err, parse.ErrSyntax) {
		t.Errorf("%v is not a syntax error", err)
	}
}

func TestRoot(t *testing.T) {
	root, err := Root([]byte("a 1; b 2"))
	if err != nil {
		t.Fatal(err)
	}
	if root.Name() != "root" || root.NumChildren() != 2 {
		t.Errorf("got %s with %d children", root.Name(), root.NumChildren())
	}
	if root.Child("b").Parent() != root {
		t.Error("children not owned by root")
	}
	if _, err := Root([]byte("a {")); err == nil {
		t.Error("expected error")
	}
}

func TestValue(t *testing.T) {
	v, err := Value("2005/12/31 1:2:3-UTC")
	if err != nil {
		t.Fatal(err)
	}
	if v.Type() != ir.ZonedDateTimeType || FormatValue(v) != "2005/12/31 1:2:3.000-UTC" {
		t.Errorf("got %s %s", v.Type(), FormatValue(v))
	}
	if _, err := Value("1 2"); err == nil {
		t.Error("expected error")
	}
}

func TestList(t *testing.T) {
	vs, err := List(`1 "two" 3.0`)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, v := range vs {
		got = append(got, FormatValue(v))
	}
	if diff := cmp.Diff([]string{"1", `"two"`, "3.0"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	for _, bad := range []string{"", "a 1", "1\n2", "1 {\n a\n}", "1 x=2"} {
		if _, err := List(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestMap(t *testing.T) {
	m, err := Map(`a=1 b="two" ns:c=true`)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]string{}
	for k, v := range m {
		got[k] = FormatValue(v)
	}
	want := map[string]string{"a": "1", "b": `"two"`, "ns:c": "true"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	for _, bad := range []string{"1", "a=1\nb", "a=1 {\n b\n}", "a="} {
		if _, err := Map(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestTagBuilder(t *testing.T) {
	tag, err := Tag("server").
		Value(ir.FromString("web")).
		Attribute("port", ir.FromInt32(8080)).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := Format(tag, true); got != `server "web" port=8080` {
		t.Errorf("got %s", got)
	}
	if _, err := Tag("bad name").Build(); !errors.Is(err, ir.ErrBadName) {
		t.Errorf("got %v", err)
	}
}

func TestIdentifiers(t *testing.T) {
	if !IdentifierIsLegal("a.b-c") || IdentifierIsLegal("9a") {
		t.Error("IdentifierIsLegal")
	}
	var ie *ir.IllegalIdentifierError
	if err := ValidateIdentifier("a b"); !errors.As(err, &ie) || ie.Index != 1 {
		t.Errorf("got %v", err)
	}
}
