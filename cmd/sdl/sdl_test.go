package main

import (
	"strings"
	"testing"

	sdl "github.com/SingingBush/SDL"
	"github.com/SingingBush/SDL/diff"
	"github.com/SingingBush/SDL/ir"

	"github.com/expr-lang/expr"
	"github.com/google/go-cmp/cmp"
)

const grepDoc = `server {
  port 80
  db {
    port 0
  }
}
flag false
`

func TestGrepTags(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{`name == "port"`, []string{"$.server.port", "$.server.db.port"}},
		{`name == "port" && truthy(0)`, []string{"$.server.port"}},
		{`has("db")`, []string{"$.server"}},
		{`kind(0) == "Bool"`, []string{"$.flag"}},
		{`depth == 2`, []string{"$.server.db.port"}},
		{`children > 0 && depth == 0`, []string{"$.server"}},
		{`name == "nope"`, nil},
	}
	root, err := sdl.Root([]byte(grepDoc))
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range tests {
		var cur *ir.Tag
		prg, err := expr.Compile(tc.expr, grepOpts(&cur)...)
		if err != nil {
			t.Errorf("%s: %v", tc.expr, err)
			continue
		}
		res, err := grepTags(prg, &cur, root.Children())
		if err != nil {
			t.Errorf("%s: %v", tc.expr, err)
			continue
		}
		var got []string
		for _, tag := range res {
			got = append(got, tag.Path())
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.expr, diff)
		}
	}
	var cur *ir.Tag
	if _, err := expr.Compile(`name + 1`, grepOpts(&cur)...); err == nil {
		t.Error("non-boolean expression compiled")
	}
}

func TestFormatted(t *testing.T) {
	got, err := formatted([]byte("# c\na   1 {\n b on\n}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "// c\na 1 {\n\tb true\n}\n"; string(got) != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if _, err := formatted([]byte("a {")); err == nil {
		t.Error("expected error")
	}
}

func TestWriteDiff(t *testing.T) {
	b := &strings.Builder{}
	if err := writeDiff(b, "x.sdl", "a 1\nb 2\n", "a 1\nb 3\n", false); err != nil {
		t.Fatal(err)
	}
	want := "--- x.sdl\n+++ x.sdl (formatted)\n a 1\n-b 2\n+b 3\n"
	if got := b.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestWriteEdits(t *testing.T) {
	from, err := sdl.Root([]byte("a 1\nb x=1"))
	if err != nil {
		t.Fatal(err)
	}
	to, err := sdl.Root([]byte("a 2\nb"))
	if err != nil {
		t.Fatal(err)
	}
	b := &strings.Builder{}
	if err := writeEdits(b, diff.Tags(from, to), false); err != nil {
		t.Fatal(err)
	}
	want := "$.a: values 1 -> 2\n$.b: delete x=1\n"
	if got := b.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}
