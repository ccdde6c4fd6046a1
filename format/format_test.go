package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %s", f.String(), got)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestUnmarshalText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("y")); err != nil {
		t.Fatal(err)
	}
	if !f.IsYAML() || f.IsSDL() {
		t.Errorf("got %s", f)
	}
}
