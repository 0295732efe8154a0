package xmlpick

import (
	"os"
	"path/filepath"
)

// IsXML reports whether path names an existing regular file whose suffix
// is exactly ".xml" (case-sensitive). A missing or unreadable path is a
// normal false outcome, never an error.
func IsXML(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !fi.Mode().IsRegular() {
		return false
	}
	return filepath.Ext(path) == ".xml"
}
