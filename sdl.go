package sdl

import (
	"fmt"
	"io"

	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/parse"
)

// Parse parses a document and returns its top level tags.
func Parse(d []byte, opts ...parse.ParseOption) ([]*ir.Tag, error) {
	return parse.Parse(d, opts...)
}

func ParseString(s string, opts ...parse.ParseOption) ([]*ir.Tag, error) {
	return parse.Parse([]byte(s), opts...)
}

// ParseReader reads r to the end and parses it.
func ParseReader(r io.Reader, opts ...parse.ParseOption) ([]*ir.Tag, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// Root parses a document into the children of a tag named "root".
func Root(d []byte, opts ...parse.ParseOption) (*ir.Tag, error) {
	tags, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	root := ir.MustTag("", "root")
	for _, t := range tags {
		if err := root.AddChild(t); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// Value parses a single literal.
func Value(literal string) (ir.Value, error) {
	return parse.Value(literal)
}

// List parses space separated literals, as in `1 "two" 3.0`.
func List(values string) ([]ir.Value, error) {
	root, err := Root([]byte(values))
	if err != nil {
		return nil, err
	}
	c := root.Child("content")
	if root.NumChildren() != 1 || c == nil || c.NumAttributes() != 0 || c.NumChildren() != 0 {
		return nil, fmt.Errorf("%w: %q is not a list of values", parse.ErrParse, values)
	}
	return c.Values(), nil
}

// Map parses attributes, as in `a=1 b="two"`, keyed by qualified name.
func Map(attrs string) (map[string]ir.Value, error) {
	tags, err := parse.Parse([]byte("atts " + attrs))
	if err != nil {
		return nil, err
	}
	if len(tags) != 1 || len(tags[0].Values()) != 0 || tags[0].NumChildren() != 0 {
		return nil, fmt.Errorf("%w: %q is not a list of attributes", parse.ErrParse, attrs)
	}
	res := map[string]ir.Value{}
	for _, a := range tags[0].Attributes() {
		res[a.QualifiedName()] = a.Value
	}
	return res, nil
}

// Tag starts building a tag named name.
func Tag(name string) *ir.Builder {
	return ir.NewBuilder(name)
}

// Format returns the SDL text of t. With pretty, children are indented
// by a tab per level.
func Format(t *ir.Tag, pretty bool) string {
	return encode.MustString(t, encode.EncodePretty(pretty), encode.EncodeComments(true))
}

// FormatValue returns the literal text of v.
func FormatValue(v ir.Value) string {
	return encode.Value(v)
}

func IdentifierIsLegal(s string) bool {
	return ir.IdentifierIsLegal(s)
}

func ValidateIdentifier(s string) error {
	return ir.ValidateIdentifier(s)
}
