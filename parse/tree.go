package parse

import "github.com/SingingBush/SDL/token"

// NSName is a possibly namespaced name. Namespace is nil when absent.
type NSName struct {
	Namespace *token.Token
	Name      *token.Token
}

func (n *NSName) Strings() (ns, name string) {
	if n.Namespace != nil {
		ns = string(n.Namespace.Bytes)
	}
	return ns, string(n.Name.Bytes)
}

type ValueKind int

const (
	LiteralValue ValueKind = iota
	ListValue
	MapValue
)

// ValueNode is a value in the parse tree: a literal token, or a
// bracketed list or map whose Tok is the opening bracket.
type ValueNode struct {
	Kind  ValueKind
	Tok   token.Token
	Elems []*ValueNode
	// for maps, Elems holds keys and Vals the matching values.
	Vals []*ValueNode
}

type AttrNode struct {
	Name  NSName
	Value *ValueNode
}

// TagNode is a tag in the parse tree. Name is nil for an anonymous tag.
type TagNode struct {
	Name     *NSName
	Values   []*ValueNode
	Attrs    []*AttrNode
	Children []*TagNode
	Block    bool
	Comment  *token.Token
	Pos      *token.Pos
}

// Tree is the parse tree of a document: its top level tags.
type Tree struct {
	Tags []*TagNode
	Doc  *token.PosDoc
}
