package ir

import (
	"fmt"
	"slices"
)

// Tag is a node of an SDL document: an optionally namespaced name with
// ordered values, attributes and ordered children.
//
// A Tag owns its children. A child belongs to at most one parent, and
// no tag can be added below itself.
type Tag struct {
	namespace string
	name      string
	comment   string
	values    []Value
	attrs     []Attr
	children  []*Tag
	parent    *Tag
}

// NewTag returns an empty tag. name must be a legal identifier other
// than a keyword; ns may be empty or such an identifier.
func NewTag(ns, name string) (*Tag, error) {
	if err := validateTagName(name); err != nil {
		return nil, err
	}
	if err := validateTagNamespace(ns); err != nil {
		return nil, err
	}
	return &Tag{namespace: ns, name: name}, nil
}

// MustTag is like NewTag but panics on an illegal identifier.
func MustTag(ns, name string) *Tag {
	t, err := NewTag(ns, name)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tag) Name() string {
	return t.name
}

func (t *Tag) SetName(name string) error {
	if err := validateTagName(name); err != nil {
		return err
	}
	t.name = name
	return nil
}

func (t *Tag) Namespace() string {
	return t.namespace
}

func (t *Tag) SetNamespace(ns string) error {
	if err := validateTagNamespace(ns); err != nil {
		return err
	}
	t.namespace = ns
	return nil
}

// QualifiedName returns "namespace:name", or name if there is no
// namespace.
func (t *Tag) QualifiedName() string {
	return qualify(t.namespace, t.name)
}

func qualify(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + ":" + name
}

func (t *Tag) Comment() string {
	return t.comment
}

func (t *Tag) SetComment(c string) {
	t.comment = c
}

// Parent returns the tag t was added to, or nil.
func (t *Tag) Parent() *Tag {
	return t.parent
}

func (t *Tag) AddValue(v Value) {
	t.values = append(t.values, v)
}

func (t *Tag) AddValues(vs ...Value) {
	t.values = append(t.values, vs...)
}

// SetValues replaces the values of t.
func (t *Tag) SetValues(vs ...Value) {
	t.values = slices.Clone(vs)
}

// Value returns the first value of t, or null if t has none.
func (t *Tag) Value() Value {
	if len(t.values) == 0 {
		return Null()
	}
	return t.values[0]
}

func (t *Tag) Values() []Value {
	return slices.Clone(t.values)
}

// RemoveValue removes the first value equal to v and reports whether
// there was one.
func (t *Tag) RemoveValue(v Value) bool {
	i := slices.IndexFunc(t.values, v.Equal)
	if i == -1 {
		return false
	}
	t.values = slices.Delete(t.values, i, i+1)
	return true
}

// AddChild appends c to the children of t. It fails with ErrOwned if c
// already has a parent and with ErrCycle if c is t or an ancestor of t.
func (t *Tag) AddChild(c *Tag) error {
	if c == nil {
		return ErrNilTag
	}
	if c.parent != nil {
		return fmt.Errorf("%w: %s", ErrOwned, c.QualifiedName())
	}
	for p := t; p != nil; p = p.parent {
		if p == c {
			return fmt.Errorf("%w: %s", ErrCycle, c.QualifiedName())
		}
	}
	c.parent = t
	t.children = append(t.children, c)
	return nil
}

// RemoveChild detaches c from t and reports whether c was a child of t.
func (t *Tag) RemoveChild(c *Tag) bool {
	i := slices.Index(t.children, c)
	if i == -1 {
		return false
	}
	t.children = slices.Delete(t.children, i, i+1)
	c.parent = nil
	return true
}

func (t *Tag) Children() []*Tag {
	return slices.Clone(t.children)
}

func (t *Tag) NumChildren() int {
	return len(t.children)
}

// Child returns the first direct child named name, or nil.
func (t *Tag) Child(name string) *Tag {
	for _, c := range t.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// FindChild returns the first descendant named name in depth first
// order, or nil.
func (t *Tag) FindChild(name string) *Tag {
	for _, c := range t.children {
		if c.name == name {
			return c
		}
		if d := c.FindChild(name); d != nil {
			return d
		}
	}
	return nil
}

// ChildrenNamed returns the children named name, or with recursive all
// such descendants in depth first order.
func (t *Tag) ChildrenNamed(name string, recursive bool) []*Tag {
	return t.collect(nil, recursive, func(c *Tag) bool { return c.name == name })
}

// ChildrenForNamespace is like ChildrenNamed, selecting by namespace.
func (t *Tag) ChildrenForNamespace(ns string, recursive bool) []*Tag {
	return t.collect(nil, recursive, func(c *Tag) bool { return c.namespace == ns })
}

func (t *Tag) collect(dst []*Tag, recursive bool, f func(*Tag) bool) []*Tag {
	for _, c := range t.children {
		if f(c) {
			dst = append(dst, c)
		}
		if recursive {
			dst = c.collect(dst, true, f)
		}
	}
	return dst
}

// ChildrenValues returns the values of each direct child named name.
func (t *Tag) ChildrenValues(name string) [][]Value {
	var res [][]Value
	for _, c := range t.children {
		if c.name == name {
			res = append(res, c.Values())
		}
	}
	return res
}

// Walk calls f on t and its descendants in depth first order with their
// depth below t. If f returns false the children of that tag are
// skipped; an error stops the walk.
func (t *Tag) Walk(f func(tag *Tag, depth int) (bool, error)) error {
	return t.walk(f, 0)
}

func (t *Tag) walk(f func(*Tag, int) (bool, error), depth int) error {
	more, err := f(t, depth)
	if err != nil || !more {
		return err
	}
	for _, c := range t.children {
		if err := c.walk(f, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of t without a parent.
func (t *Tag) Clone() *Tag {
	res := &Tag{
		namespace: t.namespace,
		name:      t.name,
		comment:   t.comment,
		values:    slices.Clone(t.values),
		attrs:     slices.Clone(t.attrs),
	}
	if len(t.children) > 0 {
		res.children = make([]*Tag, len(t.children))
	}
	for i, c := range t.children {
		cc := c.Clone()
		cc.parent = res
		res.children[i] = cc
	}
	return res
}
