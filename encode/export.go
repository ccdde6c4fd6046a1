package encode

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/SingingBush/SDL/ir"
)

// exported is the JSON form of a tag. Empty parts are left out.
type exported struct {
	Namespace  string         `json:"namespace,omitempty"`
	Name       string         `json:"name"`
	Comment    string         `json:"comment,omitempty"`
	Values     []any          `json:"values,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
	Children   []*exported    `json:"children,omitempty"`
}

func toExported(t *ir.Tag, comments bool, num func(ir.Value) any) *exported {
	res := &exported{Namespace: t.Namespace(), Name: t.Name()}
	if comments {
		res.Comment = t.Comment()
	}
	for _, v := range t.Values() {
		res.Values = append(res.Values, exportValue(v, num))
	}
	for _, a := range t.Attributes() {
		if res.Attributes == nil {
			res.Attributes = map[string]any{}
		}
		res.Attributes[a.QualifiedName()] = exportValue(a.Value, num)
	}
	for _, c := range t.Children() {
		res.Children = append(res.Children, toExported(c, comments, num))
	}
	return res
}

// exportValue maps v to a plain value of the JSON and YAML data models.
// Kinds without a counterpart there are written as their SDL literal.
func exportValue(v ir.Value, num func(ir.Value) any) any {
	switch v.Type() {
	case ir.NullType:
		return nil
	case ir.StringType, ir.RawStringType:
		return v.Text()
	case ir.CharType:
		return string(v.Char())
	case ir.BoolType:
		return v.Bool()
	case ir.Int32Type, ir.Int64Type:
		return v.Int64()
	case ir.Float32Type, ir.Float64Type:
		f := v.Float64()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return v.String()
		}
		if v.Type() == ir.Float32Type {
			return v.Float32()
		}
		return f
	case ir.DecimalType:
		return num(v)
	case ir.BinaryType:
		return base64.StdEncoding.EncodeToString(v.Bytes())
	}
	return v.String()
}

func encodeJSON(tags []*ir.Tag, w io.Writer, es *EncState) error {
	num := func(v ir.Value) any { return json.Number(v.Decimal().String()) }
	res := make([]*exported, len(tags))
	for i, t := range tags {
		res[i] = toExported(t, es.comments, num)
	}
	enc := json.NewEncoder(w)
	if es.pretty {
		enc.SetIndent("", "  ")
	}
	if len(res) == 1 {
		return enc.Encode(res[0])
	}
	return enc.Encode(res)
}

// yamlTag is the YAML form of a tag, keeping attributes in the order
// they were set.
func yamlTag(t *ir.Tag, comments bool) yaml.MapSlice {
	num := func(v ir.Value) any { return v.Decimal().String() }
	res := yaml.MapSlice{}
	if t.Namespace() != "" {
		res = append(res, yaml.MapItem{Key: "namespace", Value: t.Namespace()})
	}
	res = append(res, yaml.MapItem{Key: "name", Value: t.Name()})
	if c := t.Comment(); comments && c != "" {
		res = append(res, yaml.MapItem{Key: "comment", Value: c})
	}
	if vs := t.Values(); len(vs) > 0 {
		values := make([]any, len(vs))
		for i, v := range vs {
			values[i] = exportValue(v, num)
		}
		res = append(res, yaml.MapItem{Key: "values", Value: values})
	}
	if as := t.Attributes(); len(as) > 0 {
		attrs := make(yaml.MapSlice, len(as))
		for i, a := range as {
			attrs[i] = yaml.MapItem{Key: a.QualifiedName(), Value: exportValue(a.Value, num)}
		}
		res = append(res, yaml.MapItem{Key: "attributes", Value: attrs})
	}
	if cs := t.Children(); len(cs) > 0 {
		children := make([]yaml.MapSlice, len(cs))
		for i, c := range cs {
			children[i] = yamlTag(c, comments)
		}
		res = append(res, yaml.MapItem{Key: "children", Value: children})
	}
	return res
}

func encodeYAML(tags []*ir.Tag, w io.Writer, es *EncState) error {
	var v any
	if len(tags) == 1 {
		v = yamlTag(tags[0], es.comments)
	} else {
		docs := make([]yaml.MapSlice, len(tags))
		for i, t := range tags {
			docs[i] = yamlTag(t, es.comments)
		}
		v = docs
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}
