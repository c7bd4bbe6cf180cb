package formats

import (
	"errors"
	"testing"

	"github.com/hoverset/formation-go/node"
)

func TestYAMLRoundTrip(t *testing.T) {
	root := node.New(nil, "tkinter.Frame", map[string]any{
		"name":   "frame_1",
		"layout": map[string]any{"width": 200},
	})
	node.New(root, "tkinter.Button", map[string]any{"name": "btn_1"})
	node.New(root, "tkinter.Label", nil)

	f, err := NewYAML(FromNode(root))
	if err != nil {
		t.Fatal(err)
	}
	text, err := f.Generate()
	if err != nil {
		t.Fatal(err)
	}

	back, err := NewYAML(FromData(text))
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := back.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !node.Equal(root, loaded) {
		t.Errorf("round trip changed the tree:\n%s", text)
	}
	if loaded.Children[0].Type != "tkinter.Button" || loaded.Children[1].Type != "tkinter.Label" {
		t.Errorf("child order lost: %s, %s",
			loaded.Children[0].Type, loaded.Children[1].Type)
	}
	if got := loaded.Group("layout")["width"]; got != "200" {
		t.Errorf("width = %#v, want stringified \"200\"", got)
	}
}

func TestYAMLPermissiveDefaults(t *testing.T) {
	f, err := NewYAML(FromData("type: tag1\n"))
	if err != nil {
		t.Fatal(err)
	}
	n, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != "tag1" || n.Len() != 0 || len(n.Attrib) != 0 {
		t.Errorf("minimal document loaded as %q, %d children, attrib %v",
			n.Type, n.Len(), n.Attrib)
	}
}

func TestYAMLMissingType(t *testing.T) {
	f, err := NewYAML(FromData("attrib: {x: 1}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Load(); !errors.Is(err, ErrBadDocument) {
		t.Errorf("Load() = %v, want ErrBadDocument", err)
	}
}

func TestYAMLMalformedInput(t *testing.T) {
	f, err := NewYAML(FromData("type: [unclosed\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Load(); err == nil {
		t.Errorf("malformed YAML loaded without error")
	}
}
