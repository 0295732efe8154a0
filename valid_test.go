package xmlpick

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsXML(t *testing.T) {
	dir := t.TempDir()
	write := func(name string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("<A/>"), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	subdir := filepath.Join(dir, "dir.xml")
	if err := os.Mkdir(subdir, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular xml file", write("ok.xml"), true},
		{"missing file", filepath.Join(dir, "missing.xml"), false},
		{"directory with xml suffix", subdir, false},
		{"wrong extension", write("notes.txt"), false},
		{"no extension", write("plain"), false},
		{"uppercase extension", write("SHOUT.XML"), false},
		{"xml not last", write("a.xml.bak"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsXML(tt.path); got != tt.want {
				t.Errorf("IsXML(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
