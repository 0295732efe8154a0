package encode

import (
	"bytes"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/alanb33/xmlpick/ir"
)

func prettyDiff(want, got string) string {
	dmp := diffmatchpatch.New()
	return dmp.DiffPrettyText(dmp.DiffMain(want, got, false))
}

func displayString(t *testing.T, node *ir.Node, opts ...Option) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Display(node, buf, opts...); err != nil {
		t.Fatalf("Display: %v", err)
	}
	return buf.String()
}

func TestDisplayAlignment(t *testing.T) {
	obj := ir.NewObject()
	obj.Set("COMMON", ir.FromText("Bloodroot"))
	obj.Set("ZONE", ir.FromText("4"))

	// Labels pad to the longest sibling name plus one, then one space.
	want := "COMMON: Bloodroot\n" +
		"ZONE:   4\n"
	got := displayString(t, obj)
	if got != want {
		t.Errorf("Display mismatch:\n%s", prettyDiff(want, got))
	}
}

func TestDisplayNestedQuirks(t *testing.T) {
	inner := ir.NewObject()
	inner.Set("GENUS", ir.FromText("Sanguinaria"))
	inner.Set("SPECIES", ir.Null())

	obj := ir.NewObject()
	obj.Set("COMMON", ir.FromText("A"))
	obj.Set("BOTANICAL", inner)
	obj.Set("ZONE", ir.FromText("4"))

	// Branch headers carry no indentation at any depth; leaf lines get
	// one tab per level, counted inside the padded label; each level
	// aligns only against its own siblings.
	want := "COMMON:    A\n" +
		"BOTANICAL:\n" +
		"\tGENUS:  Sanguinaria\n" +
		"\tSPECIES: null\n" +
		"ZONE:      4\n"
	got := displayString(t, obj)
	if got != want {
		t.Errorf("Display mismatch:\n%s", prettyDiff(want, got))
	}
}

func TestDisplayEmptyObject(t *testing.T) {
	if got := displayString(t, ir.NewObject()); got != "" {
		t.Errorf("Display(empty) = %q, want empty", got)
	}
}

func TestDisplayDepthOption(t *testing.T) {
	obj := ir.NewObject()
	obj.Set("ZONE", ir.FromText("4"))

	// Starting depth shifts leaf labels by whole tabs.
	want := "\tZONE: 4\n"
	got := displayString(t, obj, Depth(1))
	if got != want {
		t.Errorf("Display mismatch:\n%s", prettyDiff(want, got))
	}
}

func TestDisplayColorsKeepLayout(t *testing.T) {
	obj := ir.NewObject()
	obj.Set("COMMON", ir.FromText("Bloodroot"))
	obj.Set("ZONE", ir.Null())

	plain := displayString(t, obj)
	p := &Palette{
		Field: func(v string, _ ...any) string { return v },
		Sep:   func(v string, _ ...any) string { return v },
		Value: func(v string, _ ...any) string { return v },
		Null:  func(v string, _ ...any) string { return v },
	}
	colored := displayString(t, obj, Colors(p))
	if colored != plain {
		t.Errorf("identity palette changed layout:\n%s", prettyDiff(plain, colored))
	}
}
