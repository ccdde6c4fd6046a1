package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		id    string
		legal bool
		index int
	}{
		{id: "name", legal: true},
		{id: "_x", legal: true},
		{id: "a-b.c$d", legal: true},
		{id: "über", legal: true},
		{id: "x9", legal: true},
		{id: ""},
		{id: "9x"},
		{id: "-a"},
		{id: "a b", index: 1},
		{id: "ab:c", index: 2},
	}
	for _, tc := range tests {
		if got := IdentifierIsLegal(tc.id); got != tc.legal {
			t.Errorf("IdentifierIsLegal(%q) = %t", tc.id, got)
		}
		err := ValidateIdentifier(tc.id)
		if tc.legal {
			continue
		}
		var ie *IllegalIdentifierError
		if !errors.As(err, &ie) {
			t.Errorf("%q: got %v", tc.id, err)
			continue
		}
		if !errors.Is(err, ErrBadName) {
			t.Errorf("%q: error does not wrap ErrBadName", tc.id)
		}
		if ie.Index != tc.index {
			t.Errorf("%q: index %d want %d", tc.id, ie.Index, tc.index)
		}
	}
}

func TestNewTag(t *testing.T) {
	if _, err := NewTag("", "1st"); !errors.Is(err, ErrBadName) {
		t.Errorf("bad name: %v", err)
	}
	if _, err := NewTag("a b", "x"); !errors.Is(err, ErrBadName) {
		t.Errorf("bad namespace: %v", err)
	}
	tag, err := NewTag("ns", "x")
	if err != nil {
		t.Fatal(err)
	}
	if tag.QualifiedName() != "ns:x" {
		t.Errorf("qualified name %s", tag.QualifiedName())
	}
	if err := tag.SetName(""); err == nil {
		t.Error("empty name accepted")
	}
	if tag.Name() != "x" {
		t.Errorf("failed SetName changed name to %q", tag.Name())
	}
}

func TestKeywordNames(t *testing.T) {
	for _, kw := range []string{"true", "false", "on", "off", "null"} {
		if !IdentifierIsLegal(kw) {
			t.Errorf("%s is not a legal identifier", kw)
		}
		var ie *IllegalIdentifierError
		if _, err := NewTag("", kw); !errors.As(err, &ie) || !ie.Keyword {
			t.Errorf("NewTag(%q): %v", kw, err)
		}
		if _, err := NewTag(kw, "x"); !errors.Is(err, ErrBadName) {
			t.Errorf("namespace %q: %v", kw, err)
		}
		if _, err := NewBuilder(kw).Build(); !errors.As(err, &ie) || !ie.Keyword {
			t.Errorf("NewBuilder(%q): %v", kw, err)
		}
		tag := MustTag("", "x")
		if err := tag.SetName(kw); !errors.Is(err, ErrBadName) || tag.Name() != "x" {
			t.Errorf("SetName(%q): %v", kw, err)
		}
		if err := tag.SetNamespace(kw); !errors.Is(err, ErrBadName) {
			t.Errorf("SetNamespace(%q): %v", kw, err)
		}
		if err := tag.SetAttribute(kw, kw, FromInt32(1)); err != nil {
			t.Errorf("attribute %s:%s: %v", kw, kw, err)
		}
	}
}

func TestAddChild(t *testing.T) {
	a := MustTag("", "a")
	b := MustTag("", "b")
	c := MustTag("", "c")
	if err := a.AddChild(b); err != nil {
		t.Fatal(err)
	}
	if err := b.AddChild(c); err != nil {
		t.Fatal(err)
	}
	if err := c.AddChild(nil); !errors.Is(err, ErrNilTag) {
		t.Errorf("nil child: %v", err)
	}
	if err := a.AddChild(c); !errors.Is(err, ErrOwned) {
		t.Errorf("owned child: %v", err)
	}
	if err := c.AddChild(a); !errors.Is(err, ErrCycle) {
		t.Errorf("ancestor as child: %v", err)
	}
	if err := c.AddChild(c); !errors.Is(err, ErrCycle) {
		t.Errorf("self as child: %v", err)
	}
	if c.Parent() != b || b.Parent() != a {
		t.Error("parents not set")
	}
	if !b.RemoveChild(c) {
		t.Fatal("RemoveChild failed")
	}
	if c.Parent() != nil {
		t.Error("removed child keeps parent")
	}
	if err := a.AddChild(c); err != nil {
		t.Errorf("re-adding removed child: %v", err)
	}
	if b.RemoveChild(c) {
		t.Error("removed a child of another tag")
	}
}

func TestTagValues(t *testing.T) {
	tag := MustTag("", "t")
	if !tag.Value().IsNull() {
		t.Error("first value of empty tag is not null")
	}
	tag.AddValues(FromInt32(1), FromString("two"), FromInt32(1))
	vs := tag.Values()
	vs[0] = FromInt32(9)
	if tag.Value().Int32() != 1 {
		t.Error("Values shares storage")
	}
	if !tag.RemoveValue(FromInt32(1)) {
		t.Fatal("RemoveValue failed")
	}
	want := []string{`"two"`, "1"}
	var got []string
	for _, v := range tag.Values() {
		got = append(got, v.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if tag.RemoveValue(FromBool(true)) {
		t.Error("removed a missing value")
	}
}

func TestAttributes(t *testing.T) {
	tag := MustTag("", "t")
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(tag.SetAttribute("", "b", FromInt32(1)))
	must(tag.SetAttribute("ns", "b", FromInt32(2)))
	must(tag.SetAttribute("", "a", FromInt32(3)))
	must(tag.SetAttribute("", "b", FromInt32(4)))
	if err := tag.SetAttribute("", "1", Null()); !errors.Is(err, ErrBadName) {
		t.Errorf("bad attribute name: %v", err)
	}
	var names []string
	for _, a := range tag.Attributes() {
		names = append(names, a.QualifiedName()+"="+a.Value.String())
	}
	if diff := cmp.Diff([]string{"b=4", "ns:b=2", "a=3"}, names); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	if v, ok := tag.Attribute("b"); !ok || v.Int32() != 4 {
		t.Errorf("Attribute(b) = %s, %t", v, ok)
	}
	if _, ok := tag.Attribute("c"); ok {
		t.Error("found missing attribute")
	}
	ns := tag.AttributesForNamespace("ns")
	if len(ns) != 1 || ns["b"].Int32() != 2 {
		t.Errorf("AttributesForNamespace: %v", ns)
	}
	if !tag.RemoveAttribute("ns", "b") || tag.NumAttributes() != 2 {
		t.Error("RemoveAttribute failed")
	}
}

func testTree(t *testing.T) *Tag {
	t.Helper()
	return NewBuilder("root").Children(
		NewBuilder("server").Value(FromString("a")).Children(
			NewBuilder("port").Value(FromInt32(80)).MustBuild(),
		).MustBuild(),
		NewBuilder("server").Value(FromString("b")).Children(
			NewBuilder("port").Value(FromInt32(81)).MustBuild(),
			NewBuilder("host").Namespace("net").MustBuild(),
		).MustBuild(),
		NewBuilder("client").MustBuild(),
	).MustBuild()
}

func TestChildQueries(t *testing.T) {
	root := testTree(t)
	if got := root.Child("server").Value().Text(); got != "a" {
		t.Errorf("Child: %s", got)
	}
	if root.Child("port") != nil {
		t.Error("Child looked below direct children")
	}
	if got := root.FindChild("port").Value().Int32(); got != 80 {
		t.Errorf("FindChild: %d", got)
	}
	if got := len(root.ChildrenNamed("port", true)); got != 2 {
		t.Errorf("recursive ChildrenNamed: %d", got)
	}
	if got := len(root.ChildrenNamed("port", false)); got != 0 {
		t.Errorf("ChildrenNamed: %d", got)
	}
	if got := root.ChildrenForNamespace("net", true); len(got) != 1 || got[0].Name() != "host" {
		t.Errorf("ChildrenForNamespace: %v", got)
	}
	vs := root.ChildrenValues("server")
	if len(vs) != 2 || vs[1][0].Text() != "b" {
		t.Errorf("ChildrenValues: %v", vs)
	}
}

func TestWalk(t *testing.T) {
	root := testTree(t)
	var got []string
	err := root.Walk(func(tag *Tag, depth int) (bool, error) {
		got = append(got, tag.QualifiedName())
		return tag.Name() != "server" || tag.Value().Text() != "b", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"root", "server", "port", "server", "client"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	stop := errors.New("stop")
	n := 0
	err = root.Walk(func(*Tag, int) (bool, error) {
		n++
		if n == 2 {
			return false, stop
		}
		return true, nil
	})
	if !errors.Is(err, stop) || n != 2 {
		t.Errorf("walk did not stop: %v after %d", err, n)
	}
}

func TestCloneAndEqual(t *testing.T) {
	root := testTree(t)
	cp := root.Clone()
	if !root.Equal(cp) {
		t.Fatal("clone differs")
	}
	if cp.Child("server").Parent() != cp {
		t.Error("clone children point at the original")
	}
	cp.SetComment("changed")
	if !root.Equal(cp) {
		t.Error("comments compared")
	}
	cp.Child("client").AddValue(Null())
	if root.Equal(cp) {
		t.Error("clone shares children with original")
	}
	x := NewBuilder("x").Attribute("a", FromInt32(1)).Attribute("b", FromInt32(2)).MustBuild()
	y := NewBuilder("x").Attribute("b", FromInt32(2)).Attribute("a", FromInt32(1)).MustBuild()
	if !x.Equal(y) {
		t.Error("attribute order compared")
	}
	if !TagsEqual([]*Tag{x}, []*Tag{y}) || TagsEqual([]*Tag{x}, nil) {
		t.Error("TagsEqual")
	}
}

func TestEqualIsPositional(t *testing.T) {
	one, two := FromInt32(1), FromInt32(2)
	if NewBuilder("x").Values(one, two).MustBuild().Equal(NewBuilder("x").Values(two, one).MustBuild()) {
		t.Error("swapped values compared equal")
	}
	a, b := MustTag("", "a"), MustTag("", "b")
	ab := NewBuilder("x").Children(a, b).MustBuild()
	ba := NewBuilder("x").Children(b, a).MustBuild()
	if ab.Equal(ba) {
		t.Error("swapped children compared equal")
	}
	if !ab.Equal(NewBuilder("x").Children(a, b).MustBuild()) {
		t.Error("same children compared unequal")
	}
}

func TestBuilder(t *testing.T) {
	child := MustTag("", "c")
	tag, err := NewBuilder("t").
		Namespace("ns").
		Comment("note").
		Values(FromInt32(1), FromInt32(2)).
		AttributeNS("x", "a", FromBool(true)).
		Child(child).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if tag.QualifiedName() != "ns:t" || tag.Comment() != "note" || len(tag.Values()) != 2 {
		t.Errorf("built %s %q %v", tag.QualifiedName(), tag.Comment(), tag.Values())
	}
	if v, ok := tag.AttributeNS("x", "a"); !ok || !v.Bool() {
		t.Error("attribute missing")
	}
	if tag.NumChildren() != 1 {
		t.Error("child missing")
	}
	if child.Parent() != nil || tag.Children()[0] == child {
		t.Error("builder kept the caller's child")
	}
	if err := MustTag("", "other").AddChild(child); err != nil {
		t.Errorf("child not reusable after Build: %v", err)
	}
	if _, err := NewBuilder("t").Child(nil).Build(); !errors.Is(err, ErrNilTag) {
		t.Errorf("nil child: %v", err)
	}

	b := NewBuilder("t").Attribute("1bad", Null()).Value(FromInt32(1))
	if !errors.Is(b.Err(), ErrBadName) {
		t.Errorf("Err: %v", b.Err())
	}
	if _, err := b.Build(); err == nil {
		t.Error("Build succeeded after failure")
	}
	if _, err := NewBuilder("").Build(); err == nil {
		t.Error("empty name accepted")
	}
	defer func() {
		if recover() == nil {
			t.Error("MustBuild did not panic")
		}
	}()
	NewBuilder("1bad").MustBuild()
}
