package encode

import (
	"strings"

	"github.com/fatih/color"
)

// Palette holds the sprintf-style color functions used by Display. A nil
// Palette on the encode state renders plain text.
type Palette struct {
	Field func(string, ...any) string
	Sep   func(string, ...any) string
	Value func(string, ...any) string
	Null  func(string, ...any) string
}

func NewPalette() *Palette {
	p := &Palette{
		Field: color.RGB(128, 168, 196).SprintfFunc(),
		Sep:   color.RGB(196, 128, 128).SprintfFunc(),
		Value: color.RGB(8, 196, 16).SprintfFunc(),
		Null:  color.RGB(168, 0, 196).SprintfFunc(),
	}
	p.Field = escapePercent(p.Field)
	p.Sep = escapePercent(p.Sep)
	p.Value = escapePercent(p.Value)
	p.Null = escapePercent(p.Null)
	return p
}

func escapePercent(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}
