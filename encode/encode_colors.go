package encode

import (
	"strings"

	"github.com/SingingBush/SDL/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	NameColor
	NamespaceColor
	AttrColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the default palette. Name, namespace, attribute,
// comment and separator colors do not depend on the value type; pass
// ir.NullType for them.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	colors.Map[Colorable{Attr: NameColor}] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[Colorable{Attr: NamespaceColor}] = color.RGB(196, 168, 128).SprintfFunc()
	colors.Map[Colorable{Attr: AttrColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Attr: CommentColor}] = color.BlueString
	colors.Map[Colorable{Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()

	able := Colorable{Attr: ValueColor}
	for _, t := range ir.Types() {
		able.Type = t
		switch {
		case t.IsNumber():
			colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
		case t.IsText(), t == ir.CharType:
			colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
		case t.IsTime(), t == ir.DurationType:
			colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
		case t == ir.BinaryType:
			colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()
		case t == ir.BoolType:
			colors.Map[able] = color.CyanString
		case t == ir.NullType:
			colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
		}
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	if a != ValueColor {
		t = ir.NullType
	}
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
