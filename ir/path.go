package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns the path of t from its root: "$" for the root, then a
// ".name" step per tag, with an index when the tag is not the first of
// its siblings by that name.
func (t *Tag) Path() string {
	if t.parent == nil {
		return "$"
	}
	prefix := t.parent.Path() + "." + pathString(t.QualifiedName())
	n := 0
	for _, s := range t.parent.children {
		if s == t {
			break
		}
		if s.namespace == t.namespace && s.name == t.name {
			n++
		}
	}
	if n == 0 {
		return prefix
	}
	return prefix + "[" + strconv.Itoa(n) + "]"
}

// Path is a parsed tag path. Each step applies to the tags selected so
// far:
//
//   - ".name" selects their children named name ("ns:name" for a
//     namespace)
//   - "[n]" keeps only the n'th selected tag
//   - "[*]" selects all their children
//   - ".." selects them and all their descendants
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			if !bytes.HasSuffix(buf.Bytes(), []byte("..")) {
				buf.WriteByte('.')
			}
			buf.WriteString(pathString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("path %q: %w", p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest = frag[2:]
			if rest != "" && rest[0] != '.' && rest[0] != '[' {
				rest = "." + rest
			}
			break
		}
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("expected field before %q", frag[0])
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
			continue
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		}
		escaped = false
		res = append(res, c)
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// GetPath returns the first tag selected by path, or nil if there is
// none.
func (t *Tag) GetPath(path string) (*Tag, error) {
	res, err := t.ListPath(nil, path)
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

// ListPath appends the tags selected by path below t to dst. t is "$".
func (t *Tag) ListPath(dst []*Tag, path string) ([]*Tag, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return append(dst, selectPath([]*Tag{t}, p)...), nil
}

func selectPath(cur []*Tag, p *Path) []*Tag {
	for ; p != nil && len(cur) > 0; p = p.Next {
		var next []*Tag
		switch {
		case p.Subtree:
			for _, t := range cur {
				next = append(next, t)
				next = t.collect(next, true, func(*Tag) bool { return true })
			}
		case p.IndexAll:
			for _, t := range cur {
				next = append(next, t.children...)
			}
		case p.Field != nil:
			ns, name, ok := strings.Cut(*p.Field, ":")
			if !ok {
				ns, name = "", ns
			}
			for _, t := range cur {
				for _, c := range t.children {
					if c.namespace == ns && c.name == name {
						next = append(next, c)
					}
				}
			}
		case p.Index != nil:
			if i := *p.Index; i < len(cur) {
				next = cur[i : i+1]
			}
		default:
			next = cur
		}
		cur = next
	}
	return cur
}
