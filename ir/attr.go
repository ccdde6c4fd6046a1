package ir

import "slices"

// Attr is a namespaced attribute of a tag.
type Attr struct {
	Namespace string
	Name      string
	Value     Value
}

func (a Attr) QualifiedName() string {
	return qualify(a.Namespace, a.Name)
}

func (t *Tag) attrIndex(ns, name string) int {
	return slices.IndexFunc(t.attrs, func(a Attr) bool {
		return a.Namespace == ns && a.Name == name
	})
}

// SetAttribute sets the attribute ns:name to v. An existing attribute
// keeps its place in the order of Attributes.
func (t *Tag) SetAttribute(ns, name string, v Value) error {
	if err := ValidateIdentifier(name); err != nil {
		return err
	}
	if err := validateNamespace(ns); err != nil {
		return err
	}
	if i := t.attrIndex(ns, name); i != -1 {
		t.attrs[i].Value = v
		return nil
	}
	t.attrs = append(t.attrs, Attr{Namespace: ns, Name: name, Value: v})
	return nil
}

// Attribute returns the value of the attribute name in the default
// namespace.
func (t *Tag) Attribute(name string) (Value, bool) {
	return t.AttributeNS("", name)
}

func (t *Tag) AttributeNS(ns, name string) (Value, bool) {
	i := t.attrIndex(ns, name)
	if i == -1 {
		return Value{}, false
	}
	return t.attrs[i].Value, true
}

// Attributes returns the attributes of t in the order they were first
// set.
func (t *Tag) Attributes() []Attr {
	return slices.Clone(t.attrs)
}

func (t *Tag) NumAttributes() int {
	return len(t.attrs)
}

// AttributesForNamespace returns the attributes in namespace ns keyed by
// name.
func (t *Tag) AttributesForNamespace(ns string) map[string]Value {
	res := map[string]Value{}
	for _, a := range t.attrs {
		if a.Namespace == ns {
			res[a.Name] = a.Value
		}
	}
	return res
}

func (t *Tag) RemoveAttribute(ns, name string) bool {
	i := t.attrIndex(ns, name)
	if i == -1 {
		return false
	}
	t.attrs = slices.Delete(t.attrs, i, i+1)
	return true
}
