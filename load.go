package xmlpick

import (
	"errors"

	"github.com/beevik/etree"
)

// ErrNoRoot is returned when a document parses but contains no root
// element.
var ErrNoRoot = errors.New("xml document has no root element")

// loadRoot parses the file at path and returns its root element. The
// decoder is strict: external entities are never fetched, entity
// definitions are not honored, and references to undefined entities fail
// the parse, so entity-expansion input surfaces as a malformed-document
// error rather than an expansion. The file handle is closed before
// loadRoot returns, on success and on failure alike.
//
// Callers are expected to have gated on IsXML first.
func loadRoot(path string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}
