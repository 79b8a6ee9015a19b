package xmltree

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrNameColor
	AttrValueColor
	TextColor
	DeclColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[TagColor] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[AttrNameColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[AttrValueColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[TextColor] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[DeclColor] = color.RGB(96, 96, 96).SprintfFunc()
	return colors
}

func colorDefault(s string, args ...any) string {
	return fmt.Sprintf(s, args...)
}

func (c *Colors) color(attr ColorAttr, s string) string {
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

// AutoColors returns a color set when w is a terminal and nil
// otherwise, so callers can pass the result straight to EncodeColors.
func AutoColors(w io.Writer) *Colors {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return nil
	}
	return NewColors()
}
