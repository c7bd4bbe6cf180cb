package formats

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hoverset/formation-go/node"
)

func TestConstructionRequiresSource(t *testing.T) {
	tests := []struct {
		name string
		mk   func() error
	}{
		{"xml", func() error { _, err := NewXML(Source{}); return err }},
		{"json", func() error { _, err := NewJSON(Source{}); return err }},
		{"yaml", func() error { _, err := NewYAML(Source{}); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.mk(); !errors.Is(err, ErrNoSource) {
				t.Errorf("empty source error = %v, want ErrNoSource", err)
			}
		})
	}
}

func TestSourceVariants(t *testing.T) {
	if _, err := NewJSON(FromData(`{"type":"t"}`)); err != nil {
		t.Errorf("FromData rejected: %v", err)
	}
	if _, err := NewJSON(FromNode(node.New(nil, "t", nil))); err != nil {
		t.Errorf("FromNode rejected: %v", err)
	}
	if _, err := NewJSON(FromPath("x.json")); err != nil {
		t.Errorf("FromPath rejected: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.json")
	if err := os.WriteFile(path, []byte(`{"type":"tag1"}`), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := NewJSON(FromPath(path))
	if err != nil {
		t.Fatal(err)
	}
	root, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if root.Type != "tag1" {
		t.Errorf("loaded type = %q", root.Type)
	}
	// the file content is cached; deleting it must not break a reload
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Load(); err != nil {
		t.Errorf("reload after caching failed: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	f, err := NewJSON(FromPath(filepath.Join(t.TempDir(), "absent.json")))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Load(); err == nil {
		t.Errorf("expected error loading a missing file")
	}
}

func TestRootTracksSession(t *testing.T) {
	n := node.New(nil, "t", nil)
	f, err := NewJSON(FromNode(n))
	if err != nil {
		t.Fatal(err)
	}
	if f.Root() != n {
		t.Errorf("Root() is not the bound node")
	}

	f2, err := NewJSON(FromData(`{"type":"t"}`))
	if err != nil {
		t.Fatal(err)
	}
	if f2.Root() != nil {
		t.Errorf("Root() non-nil before Load")
	}
	loaded, err := f2.Load()
	if err != nil {
		t.Fatal(err)
	}
	if f2.Root() != loaded {
		t.Errorf("Root() does not track the loaded tree")
	}
}
