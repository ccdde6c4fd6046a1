package diff

import (
	"fmt"
	"strings"

	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Change
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Change:
		return "change"
	default:
		return fmt.Sprintf("<op %d>", int(o))
	}
}

// Part is the part of a tag an edit applies to.
type Part string

const (
	TagPart     Part = "tag"
	ValuesPart  Part = "values"
	AttrPart    Part = "attribute"
	CommentPart Part = "comment"
)

// Edit is one difference between two trees.
type Edit struct {
	Op   Op
	Part Part
	// Path locates the tag in the first tree, or in the second for an
	// inserted tag.
	Path string
	// Attr is the qualified name of the attribute of an AttrPart edit.
	Attr string
	From string
	To   string
	// Text is an inline diff of From and To when both are single
	// strings.
	Text string
}

func (e *Edit) String() string {
	b := &strings.Builder{}
	b.WriteString(e.Path)
	b.WriteString(": ")
	switch e.Part {
	case TagPart:
		switch e.Op {
		case Insert:
			fmt.Fprintf(b, "insert %s", e.To)
		case Delete:
			fmt.Fprintf(b, "delete %s", e.From)
		default:
			fmt.Fprintf(b, "replace %s -> %s", e.From, e.To)
		}
	case AttrPart:
		switch e.Op {
		case Insert:
			fmt.Fprintf(b, "insert %s=%s", e.Attr, e.To)
		case Delete:
			fmt.Fprintf(b, "delete %s=%s", e.Attr, e.From)
		default:
			fmt.Fprintf(b, "%s=%s -> %s=%s", e.Attr, e.From, e.Attr, e.To)
		}
	default:
		fmt.Fprintf(b, "%s %s -> %s", e.Part, e.From, e.To)
	}
	if e.Text != "" {
		fmt.Fprintf(b, " (%s)", e.Text)
	}
	return b.String()
}

type DiffConfig struct {
	Comments bool
}

type DiffOption func(*DiffConfig)

// DiffComments sets whether comments are compared.
func DiffComments(v bool) DiffOption {
	return func(c *DiffConfig) { c.Comments = v }
}

// Tags returns the edits taking from to to. It returns nil when the
// trees are equal.
func Tags(from, to *ir.Tag, opts ...DiffOption) []Edit {
	d := &differ{}
	for _, o := range opts {
		o(&d.cfg)
	}
	d.tag(from, to)
	return d.edits
}

type differ struct {
	cfg   DiffConfig
	edits []Edit
}

func (d *differ) tag(from, to *ir.Tag) {
	if from.QualifiedName() != to.QualifiedName() {
		d.edits = append(d.edits, Edit{
			Op:   Change,
			Part: TagPart,
			Path: from.Path(),
			From: encode.MustString(from),
			To:   encode.MustString(to),
		})
		return
	}
	if !ir.ValuesEqual(from.Values(), to.Values()) {
		e := Edit{
			Op:   Change,
			Part: ValuesPart,
			Path: from.Path(),
			From: valuesText(from.Values()),
			To:   valuesText(to.Values()),
		}
		if fs, ts, ok := singleText(from.Values(), to.Values()); ok {
			e.Text = Strings(fs, ts)
		}
		d.edits = append(d.edits, e)
	}
	d.attrs(from, to)
	if d.cfg.Comments && from.Comment() != to.Comment() {
		d.edits = append(d.edits, Edit{
			Op:   Change,
			Part: CommentPart,
			Path: from.Path(),
			From: fmt.Sprintf("%q", from.Comment()),
			To:   fmt.Sprintf("%q", to.Comment()),
			Text: Strings(from.Comment(), to.Comment()),
		})
	}
	d.children(from, to)
}

func (d *differ) attrs(from, to *ir.Tag) {
	for _, a := range from.Attributes() {
		v, ok := to.AttributeNS(a.Namespace, a.Name)
		switch {
		case !ok:
			d.edits = append(d.edits, Edit{
				Op:   Delete,
				Part: AttrPart,
				Path: from.Path(),
				Attr: a.QualifiedName(),
				From: a.Value.String(),
			})
		case !a.Value.Equal(v):
			e := Edit{
				Op:   Change,
				Part: AttrPart,
				Path: from.Path(),
				Attr: a.QualifiedName(),
				From: a.Value.String(),
				To:   v.String(),
			}
			if fs, ts, ok := singleText([]ir.Value{a.Value}, []ir.Value{v}); ok {
				e.Text = Strings(fs, ts)
			}
			d.edits = append(d.edits, e)
		}
	}
	for _, a := range to.Attributes() {
		if _, ok := from.AttributeNS(a.Namespace, a.Name); ok {
			continue
		}
		d.edits = append(d.edits, Edit{
			Op:   Insert,
			Part: AttrPart,
			Path: from.Path(),
			Attr: a.QualifiedName(),
			To:   a.Value.String(),
		})
	}
}

func (d *differ) children(from, to *ir.Tag) {
	tcs := to.Children()
	used := make([]bool, len(tcs))
	seen := map[string]int{}
	for _, fc := range from.Children() {
		qn := fc.QualifiedName()
		j := nth(tcs, qn, seen[qn])
		seen[qn]++
		if j == -1 {
			d.edits = append(d.edits, Edit{
				Op:   Delete,
				Part: TagPart,
				Path: fc.Path(),
				From: encode.MustString(fc),
			})
			continue
		}
		used[j] = true
		d.tag(fc, tcs[j])
	}
	for j, tc := range tcs {
		if used[j] {
			continue
		}
		d.edits = append(d.edits, Edit{
			Op:   Insert,
			Part: TagPart,
			Path: tc.Path(),
			To:   encode.MustString(tc),
		})
	}
}

// nth returns the index of the n'th tag in tags named qn, or -1.
func nth(tags []*ir.Tag, qn string, n int) int {
	for i, t := range tags {
		if t.QualifiedName() != qn {
			continue
		}
		if n == 0 {
			return i
		}
		n--
	}
	return -1
}

func valuesText(vs []ir.Value) string {
	if len(vs) == 0 {
		return "()"
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

func singleText(a, b []ir.Value) (string, string, bool) {
	if len(a) != 1 || len(b) != 1 || !isText(a[0]) || !isText(b[0]) {
		return "", "", false
	}
	return a[0].Text(), b[0].Text(), true
}

func isText(v ir.Value) bool {
	return v.Type() == ir.StringType || v.Type() == ir.RawStringType
}
