package sdl

import (
	"github.com/SingingBush/SDL/debug"
	"github.com/SingingBush/SDL/ir"
)

// Wildcard is a pattern tag name or namespace matching any name or
// namespace.
const Wildcard = "_"

type MatchConfig struct {
	Comments bool
}

type MatchOpt func(*MatchConfig)

// MatchComments also requires pattern comments to equal the matched
// tag's comments, when the pattern has one.
func MatchComments(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Comments = v }
}

// Match reports whether doc matches pattern:
//
//   - names and namespaces are equal, or the pattern's is Wildcard
//   - when the pattern has values, doc has as many, each equal to the
//     pattern's or matched by a null pattern value
//   - every pattern attribute is set on doc, with an equal value or a
//     null pattern value
//   - every pattern child matches a distinct child of doc
func Match(doc, pattern *ir.Tag, opts ...MatchOpt) bool {
	cfg := &MatchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return match(doc, pattern, cfg)
}

func match(doc, pattern *ir.Tag, cfg *MatchConfig) bool {
	if debug.Match() {
		debug.Logf("match %s at %s with %s\n", doc.QualifiedName(), doc.Path(), pattern.QualifiedName())
	}
	if pattern.Name() != Wildcard && pattern.Name() != doc.Name() {
		return false
	}
	if pattern.Namespace() != Wildcard && pattern.Namespace() != doc.Namespace() {
		return false
	}
	if cfg.Comments && pattern.Comment() != "" && pattern.Comment() != doc.Comment() {
		return false
	}
	if pvs := pattern.Values(); len(pvs) > 0 {
		dvs := doc.Values()
		if len(dvs) != len(pvs) {
			return false
		}
		for i, pv := range pvs {
			if !matchValue(dvs[i], pv) {
				return false
			}
		}
	}
	for _, pa := range pattern.Attributes() {
		dv, ok := doc.AttributeNS(pa.Namespace, pa.Name)
		if !ok || !matchValue(dv, pa.Value) {
			return false
		}
	}
	_, ok := matchChildren(doc, pattern, cfg)
	return ok
}

func matchValue(v, pattern ir.Value) bool {
	return pattern.IsNull() || v.Equal(pattern)
}

// matchChildren pairs each pattern child with the first unused child of
// doc matching it. It returns the doc child indices in pattern order.
func matchChildren(doc, pattern *ir.Tag, cfg *MatchConfig) ([]int, bool) {
	dcs := doc.Children()
	used := make([]bool, len(dcs))
	var res []int
	for _, pc := range pattern.Children() {
		found := false
		for i, dc := range dcs {
			if used[i] || !match(dc, pc, cfg) {
				continue
			}
			used[i] = true
			res = append(res, i)
			found = true
			break
		}
		if !found {
			return nil, false
		}
	}
	return res, true
}

// Trim returns a copy of doc holding only what pattern mentions: its
// attributes, and the children paired with pattern children, trimmed in
// turn. Values are kept. Trim returns nil if doc does not match pattern.
func Trim(pattern, doc *ir.Tag) *ir.Tag {
	cfg := &MatchConfig{}
	if !match(doc, pattern, cfg) {
		return nil
	}
	return trim(pattern, doc, cfg)
}

func trim(pattern, doc *ir.Tag, cfg *MatchConfig) *ir.Tag {
	res := ir.MustTag(doc.Namespace(), doc.Name())
	res.SetComment(doc.Comment())
	res.SetValues(doc.Values()...)
	for _, pa := range pattern.Attributes() {
		v, _ := doc.AttributeNS(pa.Namespace, pa.Name)
		_ = res.SetAttribute(pa.Namespace, pa.Name, v)
	}
	idx, _ := matchChildren(doc, pattern, cfg)
	dcs := doc.Children()
	for i, pc := range pattern.Children() {
		_ = res.AddChild(trim(pc, dcs[idx[i]], cfg))
	}
	return res
}
