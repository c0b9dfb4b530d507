package encode

import (
	"strings"

	"github.com/MSyics/Jsonable/kind"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind kind.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range kind.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = kind.Number
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = kind.Null
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = kind.True
	colors.Map[able] = color.CyanString
	able.Kind = kind.False
	colors.Map[able] = color.CyanString

	able.Kind = kind.String
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = kind.Undefined
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()

	able.Kind = kind.Object
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k kind.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k kind.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
