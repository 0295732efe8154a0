package encode

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/alanb33/xmlpick/ir"
)

// Display renders the fields of an object node as console lines, one per
// field, in field order. A leaf field produces a line of depth tab
// characters followed by "name:" padded (tabs included) to one more than
// the longest sibling field name, a space, and the value; absent text
// prints the null marker verbatim. A branch field produces a bare
// "name:" header line and then its own fields rendered one level deeper.
//
// Two alignment quirks are intentional and preserved: branch header
// lines are never indented, however deep they occur, and the padding
// column is recomputed at every level from that level's siblings alone.
func Display(node *ir.Node, w io.Writer, opts ...Option) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return display(node, w, es)
}

func display(node *ir.Node, w io.Writer, es *EncState) error {
	width := longestField(node) + 1
	for i, name := range node.Fields {
		val := node.Values[i]
		if val.Type == ir.ObjectType {
			if err := writeString(w, headerLine(name, es)+"\n"); err != nil {
				return err
			}
			es.depth++
			err := display(val, w, es)
			es.depth--
			if err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, leafLine(name, val, width, es)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// longestField returns the length in runes of the longest field name of
// node, or 0 if it has none. Direct fields only.
func longestField(node *ir.Node) int {
	longest := 0
	for _, f := range node.Fields {
		if n := utf8.RuneCountInString(f); n > longest {
			longest = n
		}
	}
	return longest
}

func headerLine(name string, es *EncState) string {
	if es.palette == nil {
		return name + ":"
	}
	return es.palette.Field(name) + es.palette.Sep(":")
}

func leafLine(name string, val *ir.Node, width int, es *EncState) string {
	tabs := strings.Repeat("\t", es.depth)
	plain := tabs + name + ":"
	pad := width - utf8.RuneCountInString(plain)
	if pad < 0 {
		pad = 0
	}
	label := plain
	if es.palette != nil {
		label = tabs + es.palette.Field(name) + es.palette.Sep(":")
	}
	return label + strings.Repeat(" ", pad) + " " + leafValue(val, es)
}

func leafValue(val *ir.Node, es *EncState) string {
	if val.Type == ir.NullType {
		if es.palette == nil {
			return "null"
		}
		return es.palette.Null("null")
	}
	if es.palette == nil {
		return val.Text
	}
	return es.palette.Value(val.Text)
}
