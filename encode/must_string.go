package encode

import (
	"bytes"

	"github.com/alanb33/xmlpick/ir"
)

// MustJSON returns the JSON text of node. Encoding to a buffer cannot
// fail for a well-formed node; any failure is a programming error.
func MustJSON(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeJSON(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
