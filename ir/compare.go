package ir

// Equal reports whether t and o have the same namespace, name, values
// and children in order, and the same set of attributes. Comments are
// not compared.
func (t *Tag) Equal(o *Tag) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil {
		return false
	}
	if t.namespace != o.namespace || t.name != o.name {
		return false
	}
	if !ValuesEqual(t.values, o.values) {
		return false
	}
	if len(t.attrs) != len(o.attrs) {
		return false
	}
	for _, a := range t.attrs {
		ov, ok := o.AttributeNS(a.Namespace, a.Name)
		if !ok || !a.Value.Equal(ov) {
			return false
		}
	}
	if len(t.children) != len(o.children) {
		return false
	}
	for i, c := range t.children {
		if !c.Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// ValuesEqual compares two value lists pairwise.
func ValuesEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// TagsEqual compares two tag lists pairwise.
func TagsEqual(a, b []*Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
