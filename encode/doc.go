// Package encode renders ir nodes as JSON, YAML, or indented console
// text.
//
// # Usage
//
//	// Encode one extracted element to JSON
//	s := encode.MustJSON(node)
//
//	// Stream YAML
//	err := encode.EncodeYAML(node, os.Stdout)
//
//	// Console rendering, optionally colored
//	err := encode.Display(node, os.Stdout, encode.Colors(encode.NewPalette()))
//
// JSON and YAML output preserve the node's field order, which for
// converted XML elements is document order of first occurrence.
//
// # Related Packages
//
//   - github.com/alanb33/xmlpick/ir - node representation
//   - github.com/alanb33/xmlpick - builds nodes from XML files
package encode
