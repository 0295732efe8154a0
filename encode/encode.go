package encode

import (
	"io"

	"github.com/alanb33/xmlpick/ir"
)

// EncState carries rendering state through a single encode or display
// call.
type EncState struct {
	depth   int
	palette *Palette
}

// EncodeJSON writes node to w as JSON text. Object fields appear in the
// node's field order, text leaves as JSON strings, absent text as null.
// Fields are written as `"name": value` and separated by `", "`.
func EncodeJSON(node *ir.Node, w io.Writer, opts ...Option) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encodeJSON(node, w, es)
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, "null")
	case ir.TextType:
		return writeString(w, Quote(node.Text))
	case ir.ObjectType:
		return encodeJSONObject(node, w, es)
	case ir.ArrayType:
		return encodeJSONArray(node, w, es)
	default:
		panic("type")
	}
}

func encodeJSONObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, "{"); err != nil {
		return err
	}
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeString(w, ", "); err != nil {
				return err
			}
		}
		if err := writeString(w, Quote(field)+": "); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeString(w, "}")
}

func encodeJSONArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, "["); err != nil {
		return err
	}
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, ", "); err != nil {
				return err
			}
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	return writeString(w, "]")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
