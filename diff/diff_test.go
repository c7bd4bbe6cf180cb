package diff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hoverset/formation-go/node"
)

func build(types ...string) *node.Node {
	root := node.New(nil, "a.Root", nil)
	for _, typ := range types {
		node.New(root, typ, nil)
	}
	return root
}

func TestEqualTreesNoChanges(t *testing.T) {
	a := build("a.B", "a.C")
	a.Group("layout")["width"] = "20"
	b := build("a.B", "a.C")
	b.Group("layout")["width"] = "20"
	if got := Trees(a, b); len(got) != 0 {
		t.Errorf("changes = %v, want none", got)
	}
}

func TestAttributeChanges(t *testing.T) {
	a := node.New(nil, "a.Root", map[string]any{
		"name":   "r",
		"layout": map[string]any{"width": "20", "height": "40"},
	})
	b := node.New(nil, "a.Root", map[string]any{
		"name":   "r2",
		"layout": map[string]any{"width": "20"},
		"attr":   map[string]any{"background": "#fff"},
	})
	got := Trees(a, b)
	want := []Change{
		{Path: "/a.Root", Kind: Insert, Key: "attr.background", To: "#fff"},
		{Path: "/a.Root", Kind: Delete, Key: "layout.height", From: "40"},
		{Path: "/a.Root", Kind: Replace, Key: "name", From: "r", To: "r2"},
	}
	if len(got) != len(want) {
		t.Fatalf("changes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("change[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChildInsertDelete(t *testing.T) {
	a := build("a.B", "a.C", "a.D")
	b := build("a.B", "a.D")
	got := Trees(a, b)
	if len(got) != 1 {
		t.Fatalf("changes = %v, want 1", got)
	}
	if got[0].Kind != Delete || got[0].From != "a.C" {
		t.Errorf("change = %v, want delete of a.C", got[0])
	}

	got = Trees(b, a)
	if len(got) != 1 || got[0].Kind != Insert || got[0].To != "a.C" {
		t.Errorf("reverse changes = %v, want insert of a.C", got)
	}
}

func TestTypeReplacement(t *testing.T) {
	a := node.New(nil, "a.Frame", nil)
	b := node.New(nil, "a.Panel", nil)
	got := Trees(a, b)
	if len(got) != 1 {
		t.Fatalf("changes = %v", got)
	}
	if got[0].Kind != Replace || got[0].From != "a.Frame" || got[0].To != "a.Panel" {
		t.Errorf("change = %v", got[0])
	}
}

func TestAlignedChildrenRecurse(t *testing.T) {
	a := build("a.B", "a.C")
	a.Children[1].Group("layout")["x"] = "1"
	b := build("a.B", "a.C")
	b.Children[1].Group("layout")["x"] = "2"
	got := Trees(a, b)
	if len(got) != 1 {
		t.Fatalf("changes = %v, want 1", got)
	}
	want := Change{Path: "/a.Root/a.C[1]", Kind: Replace, Key: "layout.x", From: "1", To: "2"}
	if got[0] != want {
		t.Errorf("change = %v, want %v", got[0], want)
	}
}

func TestRender(t *testing.T) {
	changes := []Change{
		{Path: "/r", Kind: Insert, Key: "attr.bg", To: "#fff"},
		{Path: "/r/a.C[1]", Kind: Delete},
		{Path: "/r", Kind: Replace, Key: "name", From: "a", To: "b"},
	}
	var b bytes.Buffer
	if err := Render(&b, changes, false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines: %q", len(lines), b.String())
	}
	if !strings.HasPrefix(lines[0], "+ /r attr.bg=") {
		t.Errorf("insert line = %q", lines[0])
	}
	if lines[1] != "- /r/a.C[1]" {
		t.Errorf("delete line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "~ /r name:") {
		t.Errorf("replace line = %q", lines[2])
	}
}
