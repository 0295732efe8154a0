// Package xmlpick extracts elements from an XML file by tag name and
// re-expresses them as JSON, YAML, or an indented console rendering.
//
// The input path must pass the IsXML gate (existing regular file with a
// ".xml" suffix); entry points return a silent no-result for paths that
// do not, and propagate parse errors for files that are not well-formed
// XML. Parsing is strict and never resolves external entities.
//
// Matching walks the whole document pre-order, so elements nested inside
// non-matching ancestors are found, and the root element itself can
// match. Each matched element's children become an ordered mapping: tag
// name to text, null for missing text, or a nested mapping for children
// with children of their own. Duplicate tag names among siblings
// collapse, last value winning. Attributes are ignored.
//
//	out, ok, err := xmlpick.RenderJSON("plant_catalog.xml", "PLANT")
//	if err != nil {
//	    // malformed XML
//	}
//	if !ok {
//	    // not a usable .xml path
//	}
package xmlpick
