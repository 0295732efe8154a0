package xmlpick

import (
	"github.com/beevik/etree"

	"github.com/alanb33/xmlpick/ir"
)

// ElementNode converts the direct children of el into an object node.
// A child with child elements of its own converts recursively; any other
// child becomes a text leaf, or null when it has no text. Attributes and
// the element's own text are not captured. Children sharing a tag name
// collapse to the last one, at the position of the first.
//
// An element with no children converts to an empty object.
func ElementNode(el *etree.Element) *ir.Node {
	obj := ir.NewObject()
	for _, child := range el.ChildElements() {
		if len(child.ChildElements()) > 0 {
			obj.Set(child.Tag, ElementNode(child))
			continue
		}
		if t := child.Text(); t != "" {
			obj.Set(child.Tag, ir.FromText(t))
		} else {
			obj.Set(child.Tag, ir.Null())
		}
	}
	return obj
}
