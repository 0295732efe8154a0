package xmlpick

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alanb33/xmlpick/ir"
)

func TestElementNode(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *ir.Node
	}{
		{
			"no children",
			`<PLANT/>`,
			ir.NewObject(),
		},
		{
			"text only element",
			`<PLANT>just text</PLANT>`,
			ir.NewObject(),
		},
		{
			"flat children",
			`<PLANT><COMMON>Bloodroot</COMMON><ZONE>4</ZONE></PLANT>`,
			ir.NewObject().
				Set("COMMON", ir.FromText("Bloodroot")).
				Set("ZONE", ir.FromText("4")),
		},
		{
			"absent text becomes null",
			`<PLANT><PAD/><EMPTY></EMPTY></PLANT>`,
			ir.NewObject().
				Set("PAD", ir.Null()).
				Set("EMPTY", ir.Null()),
		},
		{
			"nested child",
			`<PLANT><BOTANICAL><GENUS>Sanguinaria</GENUS></BOTANICAL></PLANT>`,
			ir.NewObject().
				Set("BOTANICAL", ir.NewObject().Set("GENUS", ir.FromText("Sanguinaria"))),
		},
		{
			"duplicate tags collapse to last",
			`<PLANT><COMMON>A</COMMON><ZONE>4</ZONE><COMMON>B</COMMON></PLANT>`,
			ir.NewObject().
				Set("COMMON", ir.FromText("B")).
				Set("ZONE", ir.FromText("4")),
		},
		{
			"attributes ignored",
			`<PLANT id="7"><ZONE kind="usda">4</ZONE></PLANT>`,
			ir.NewObject().Set("ZONE", ir.FromText("4")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ElementNode(mustRoot(t, tt.src))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ElementNode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestElementNodeIdempotent(t *testing.T) {
	// Converting a tree whose duplicates are already collapsed yields
	// the same structure again.
	src := `<PLANT><COMMON>B</COMMON><BOTANICAL><GENUS>Sanguinaria</GENUS></BOTANICAL></PLANT>`
	first := ElementNode(mustRoot(t, src))
	second := ElementNode(mustRoot(t, src))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("conversion not stable (-first +second):\n%s", diff)
	}
}
