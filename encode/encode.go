package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SingingBush/SDL/debug"
	"github.com/SingingBush/SDL/format"
	"github.com/SingingBush/SDL/ir"
)

var ErrEncoding = errors.New("encoding error")

// anonymousName is the name of tags written as values alone.
const anonymousName = "content"

type EncState struct {
	depth    int
	pretty   bool
	indent   string
	comments bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes t to w followed by a newline.
func Encode(t *ir.Tag, w io.Writer, opts ...EncodeOption) error {
	return EncodeAll([]*ir.Tag{t}, w, opts...)
}

// EncodeAll writes the tags of a document to w, one per line.
func EncodeAll(tags []*ir.Tag, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(tags, w, es)
	case format.YAMLFormat:
		return encodeYAML(tags, w, es)
	case format.SDLFormat:
	default:
		return fmt.Errorf("%w: unknown format %d", ErrEncoding, es.format)
	}
	for _, t := range tags {
		if t == nil {
			return fmt.Errorf("%w: %w", ErrEncoding, ir.ErrNilTag)
		}
		if err := encodeTag(t, w, es); err != nil {
			return err
		}
	}
	return nil
}

// Value returns the literal text of v.
func Value(v ir.Value) string {
	return v.String()
}

func encodeTag(t *ir.Tag, w io.Writer, es *EncState) error {
	if debug.Encode() {
		debug.Logf("encode tag %s depth %d\n", t.QualifiedName(), es.depth)
	}
	indent := ""
	if es.pretty {
		indent = strings.Repeat(es.indent, es.depth)
	}
	if es.comments && t.Comment() != "" {
		for _, ln := range strings.Split(t.Comment(), "\n") {
			ln = strings.TrimRight("// "+ln, " \r")
			if err := writeString(w, indent+es.color(ir.NullType, CommentColor, ln)+"\n"); err != nil {
				return err
			}
		}
	}
	b := &strings.Builder{}
	b.WriteString(indent)
	values := t.Values()
	first := 0
	if t.Namespace() != "" || t.Name() != anonymousName || len(values) == 0 {
		if t.Namespace() != "" {
			b.WriteString(es.color(ir.NullType, NamespaceColor, t.Namespace()))
			b.WriteString(es.color(ir.NullType, SepColor, ":"))
		}
		b.WriteString(es.color(ir.NullType, NameColor, t.Name()))
	} else {
		b.WriteString(es.value(values[0]))
		first = 1
	}
	for i := first; i < len(values); i++ {
		b.WriteByte(' ')
		if i > 0 && values[i-1].Type() == ir.DateType {
			b.WriteString(es.afterDate(values[i]))
			continue
		}
		b.WriteString(es.value(values[i]))
	}
	for _, a := range t.Attributes() {
		b.WriteByte(' ')
		if a.Namespace != "" {
			b.WriteString(es.color(ir.NullType, NamespaceColor, a.Namespace))
			b.WriteString(es.color(ir.NullType, SepColor, ":"))
		}
		b.WriteString(es.color(ir.NullType, AttrColor, a.Name))
		b.WriteString(es.color(ir.NullType, SepColor, "="))
		b.WriteString(es.value(a.Value))
	}
	children := t.Children()
	if len(children) == 0 {
		b.WriteByte('\n')
		return writeString(w, b.String())
	}
	b.WriteString(" " + es.color(ir.NullType, SepColor, "{") + "\n")
	if err := writeString(w, b.String()); err != nil {
		return err
	}
	es.depth++
	for _, c := range children {
		if err := encodeTag(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, indent+es.color(ir.NullType, SepColor, "}")+"\n")
}

func (es *EncState) value(v ir.Value) string {
	return es.color(v.Type(), ValueColor, v.String())
}

// afterDate returns the literal of v written after a date. A duration
// without days there would read back as the time of a date-time, so it
// is written with a zero day count.
func (es *EncState) afterDate(v ir.Value) string {
	if v.Type() != ir.DurationType {
		return es.value(v)
	}
	d := v.Duration()
	if d.Days != 0 || d.Negative() {
		return es.value(v)
	}
	return es.color(v.Type(), ValueColor, "0d:"+d.String())
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
