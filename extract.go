package xmlpick

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alanb33/xmlpick/encode"
	"github.com/alanb33/xmlpick/ir"
)

// Extract parses the file at path and converts every element whose tag
// equals tag, in document order, to an object node.
//
// The returned ok is false, with a nil error, when path fails the IsXML
// gate; this silent no-result is the expected outcome for bad input
// paths, not an error. A parse failure is returned as a non-nil error
// with ok false.
func Extract(path, tag string) ([]*ir.Node, bool, error) {
	if !IsXML(path) {
		return nil, false, nil
	}
	root, err := loadRoot(path)
	if err != nil {
		return nil, false, err
	}
	matched := matchTag(root, tag)
	nodes := make([]*ir.Node, len(matched))
	for i, el := range matched {
		nodes[i] = ElementNode(el)
	}
	return nodes, true, nil
}

// RenderJSON returns a JSON array of the elements matching tag in the
// file at path, each rendered as an object in document order. See
// Extract for the meaning of ok.
func RenderJSON(path, tag string) (string, bool, error) {
	nodes, ok, err := Extract(path, tag)
	if err != nil || !ok {
		return "", ok, err
	}
	return encode.MustJSON(ir.FromSlice(nodes)), true, nil
}

// RenderYAML returns a YAML sequence of the elements matching tag in the
// file at path. See Extract for the meaning of ok.
func RenderYAML(path, tag string) (string, bool, error) {
	nodes, ok, err := Extract(path, tag)
	if err != nil || !ok {
		return "", ok, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeYAML(ir.FromSlice(nodes), buf); err != nil {
		return "", true, err
	}
	return buf.String(), true, nil
}

// Display renders each element matching tag in the file at path to
// standard output, one block per element, blocks separated by a blank
// line. See Extract for the meaning of ok; when ok is false nothing at
// all is written.
func Display(path, tag string) (bool, error) {
	return Fdisplay(os.Stdout, path, tag)
}

// Fdisplay is Display writing to w, with optional encode options (for
// example a color palette).
func Fdisplay(w io.Writer, path, tag string, opts ...encode.Option) (bool, error) {
	nodes, ok, err := Extract(path, tag)
	if err != nil || !ok {
		return ok, err
	}
	for _, n := range nodes {
		if err := encode.Display(n, w, opts...); err != nil {
			return true, err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return true, err
		}
	}
	return true, nil
}
