package ir

// Builder constructs a Tag with chained calls:
//
//	t, err := ir.NewBuilder("server").
//		Value(ir.FromString("web")).
//		Attribute("port", ir.FromInt32(8080)).
//		Build()
//
// Every call applies its change to the tag under construction at once,
// with the same checks as the Tag methods. The first failure is kept and
// later calls are ignored.
type Builder struct {
	tag *Tag
	err error
}

func NewBuilder(name string) *Builder {
	t, err := NewTag("", name)
	if err != nil {
		return &Builder{err: err}
	}
	return &Builder{tag: t}
}

func (b *Builder) Namespace(ns string) *Builder {
	if b.err == nil {
		b.err = b.tag.SetNamespace(ns)
	}
	return b
}

func (b *Builder) Comment(c string) *Builder {
	if b.err == nil {
		b.tag.SetComment(c)
	}
	return b
}

func (b *Builder) Value(v Value) *Builder {
	if b.err == nil {
		b.tag.AddValue(v)
	}
	return b
}

func (b *Builder) Values(vs ...Value) *Builder {
	if b.err == nil {
		b.tag.AddValues(vs...)
	}
	return b
}

// Child adds a copy of c, leaving c free to be added elsewhere.
func (b *Builder) Child(c *Tag) *Builder {
	if b.err != nil {
		return b
	}
	if c == nil {
		b.err = ErrNilTag
		return b
	}
	b.err = b.tag.AddChild(c.Clone())
	return b
}

func (b *Builder) Children(cs ...*Tag) *Builder {
	for _, c := range cs {
		b.Child(c)
	}
	return b
}

func (b *Builder) Attribute(name string, v Value) *Builder {
	return b.AttributeNS("", name, v)
}

func (b *Builder) AttributeNS(ns, name string, v Value) *Builder {
	if b.err == nil {
		b.err = b.tag.SetAttribute(ns, name, v)
	}
	return b
}

// Err returns the first failure so far.
func (b *Builder) Err() error {
	return b.err
}

// Build returns a copy of the tag built so far, or the first failure.
func (b *Builder) Build() (*Tag, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tag.Clone(), nil
}

// MustBuild is like Build but panics on failure.
func (b *Builder) MustBuild() *Tag {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
