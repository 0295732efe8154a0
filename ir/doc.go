// Package ir provides the intermediate representation for extracted XML
// element mappings.
//
// A Node is a recursive tagged union: null (an element with no text and
// no children), a text value, an ordered object mapping child tag names
// to nodes, or an array of nodes (the matched-element sequence).
//
// Objects keep their fields in order of first occurrence. Setting a field
// that already exists overwrites its value in place, so converting an XML
// element whose children repeat a tag name collapses the repeats to the
// last value while keeping the first position. This last-write-wins
// behavior is deliberate; duplicate tags are not aggregated.
//
// Nodes are plain data and not thread-safe; clone or synchronize if you
// share them across goroutines.
//
// Related packages:
//
//   - github.com/alanb33/xmlpick - builds nodes from XML elements
//   - github.com/alanb33/xmlpick/encode - renders nodes as JSON, YAML,
//     or indented console text
package ir
