package parse

import (
	"github.com/SingingBush/SDL/debug"
	"github.com/SingingBush/SDL/ir"
	"github.com/SingingBush/SDL/token"
)

// anonymousName is the name given to tags written as values alone.
const anonymousName = "content"

func build(tree *Tree, opts *parseOpts) ([]*ir.Tag, error) {
	res := make([]*ir.Tag, 0, len(tree.Tags))
	for _, tn := range tree.Tags {
		t, err := buildTag(tn, opts)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

func buildTag(tn *TagNode, opts *parseOpts) (*ir.Tag, error) {
	ns, name := "", anonymousName
	if tn.Name != nil {
		ns, name = tn.Name.Strings()
	}
	if debug.Build() {
		debug.Logf("build tag %s:%s at %s\n", ns, name, tn.Pos)
	}
	t, err := ir.NewTag(ns, name)
	if err != nil {
		return nil, newError(err, tn.Pos)
	}
	if opts.comments && tn.Comment != nil {
		t.SetComment(tn.Comment.String())
	}
	for _, vn := range tn.Values {
		v, err := resolve(vn)
		if err != nil {
			return nil, err
		}
		t.AddValue(v)
	}
	for _, an := range tn.Attrs {
		v, err := resolve(an.Value)
		if err != nil {
			return nil, err
		}
		ns, name := an.Name.Strings()
		if err := t.SetAttribute(ns, name, v); err != nil {
			return nil, newError(err, attrPos(an))
		}
	}
	for _, cn := range tn.Children {
		c, err := buildTag(cn, opts)
		if err != nil {
			return nil, err
		}
		if err := t.AddChild(c); err != nil {
			return nil, newError(err, cn.Pos)
		}
	}
	if opts.positions != nil {
		opts.positions[t] = tn.Pos
	}
	return t, nil
}

func attrPos(an *AttrNode) *token.Pos {
	if an.Name.Namespace != nil {
		return an.Name.Namespace.Pos
	}
	return an.Name.Name.Pos
}
