package xmlpick

import "github.com/beevik/etree"

// matchTag collects, in document order, every element in the tree rooted
// at el whose tag equals tag. The walk is pre-order and descends into
// non-matching elements; el itself is a candidate.
func matchTag(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		if e.Tag == tag {
			out = append(out, e)
		}
		for _, c := range e.ChildElements() {
			walk(c)
		}
	}
	walk(el)
	return out
}
