package formation

import (
	"testing"

	"github.com/hoverset/formation-go/node"
)

func patchDoc() *node.Node {
	root := node.New(nil, "tkinter.Frame", map[string]any{
		"name":   "frame_1",
		"layout": map[string]any{"width": "200"},
	})
	node.New(root, "tkinter.Button", map[string]any{"name": "btn_1"})
	return root
}

func TestPatchReplaceAttribute(t *testing.T) {
	doc := patchDoc()
	out, err := Patch(doc, []byte(`[
		{"op": "replace", "path": "/attrib/layout/width", "value": "400"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Group("layout")["width"]; got != "400" {
		t.Errorf("width = %v, want 400", got)
	}
	// original untouched
	if got := doc.Group("layout")["width"]; got != "200" {
		t.Errorf("input tree mutated: width = %v", got)
	}
}

func TestPatchAddChild(t *testing.T) {
	doc := patchDoc()
	out, err := Patch(doc, []byte(`[
		{"op": "add", "path": "/children/-", "value": {"type": "tkinter.Label", "attrib": {"name": "lbl_1"}}}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 2 {
		t.Fatalf("child count = %d, want 2", out.Len())
	}
	added := out.Children[1]
	if added.Type != "tkinter.Label" || added.Get("name") != "lbl_1" {
		t.Errorf("added child = %s %v", added.Type, added.Attrib)
	}
	if added.Parent != out {
		t.Errorf("added child not linked to parent")
	}
}

func TestPatchRemoveChild(t *testing.T) {
	doc := patchDoc()
	out, err := Patch(doc, []byte(`[
		{"op": "remove", "path": "/children/0"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("child count = %d, want 0", out.Len())
	}
}

func TestPatchFailedTestOp(t *testing.T) {
	doc := patchDoc()
	_, err := Patch(doc, []byte(`[
		{"op": "test", "path": "/attrib/name", "value": "other"}
	]`))
	if err == nil {
		t.Errorf("failed test op did not error")
	}
}

func TestPatchMalformed(t *testing.T) {
	if _, err := Patch(patchDoc(), []byte(`{"op":"add"}`)); err == nil {
		t.Errorf("non-array patch accepted")
	}
}
