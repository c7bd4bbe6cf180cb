// Package diff computes structural differences between two design trees,
// for reviewing edits to design files. Child sequences are aligned by
// element type so moved and reordered widgets report as insert/delete
// pairs rather than as cascades of attribute changes.
package diff

import (
	"fmt"
	"sort"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/hoverset/formation-go/debug"
	"github.com/hoverset/formation-go/node"
)

// Kind classifies a change.
type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return fmt.Sprintf("<kind %d>", int(k))
}

// Change is one reported difference. Key is the flattened attribute key
// ("group.name") for attribute changes and empty for whole-node changes,
// in which case From/To are element types.
type Change struct {
	Path string
	Kind Kind
	Key  string
	From string
	To   string
}

func (c Change) String() string {
	if c.Key == "" {
		switch c.Kind {
		case Insert:
			return fmt.Sprintf("insert %s", c.Path)
		case Delete:
			return fmt.Sprintf("delete %s", c.Path)
		default:
			return fmt.Sprintf("replace %s: %s -> %s", c.Path, c.From, c.To)
		}
	}
	switch c.Kind {
	case Insert:
		return fmt.Sprintf("insert %s %s=%q", c.Path, c.Key, c.To)
	case Delete:
		return fmt.Sprintf("delete %s %s", c.Path, c.Key)
	default:
		return fmt.Sprintf("replace %s %s: %q -> %q", c.Path, c.Key, c.From, c.To)
	}
}

// Trees reports the changes turning the tree rooted at a into the tree
// rooted at b, in document order. Equal trees yield no changes.
func Trees(a, b *node.Node) []Change {
	var out []Change
	compare(a, b, "/"+a.Type, &out)
	return out
}

func compare(a, b *node.Node, path string, out *[]Change) {
	if debug.Diff() {
		debug.Logf("diff at %s: %s vs %s\n", path, a.Type, b.Type)
	}
	if a.Type != b.Type {
		*out = append(*out, Change{Path: path, Kind: Replace, From: a.Type, To: b.Type})
		return
	}
	compareAttribs(a, b, path, out)
	compareChildren(a, b, path, out)
}

func compareAttribs(a, b *node.Node, path string, out *[]Change) {
	fa := a.FlatAttrib()
	fb := b.FlatAttrib()
	keys := map[string]bool{}
	for k := range fa {
		keys[k] = true
	}
	for k := range fb {
		keys[k] = true
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)
	for _, k := range sorted {
		av, inA := fa[k]
		bv, inB := fb[k]
		switch {
		case !inA:
			*out = append(*out, Change{Path: path, Kind: Insert, Key: k, To: bv})
		case !inB:
			*out = append(*out, Change{Path: path, Kind: Delete, Key: k, From: av})
		case av != bv:
			*out = append(*out, Change{Path: path, Kind: Replace, Key: k, From: av, To: bv})
		}
	}
}

// compareChildren aligns the two child sequences by element type: each
// distinct type maps to one rune and the rune strings are diffed, so equal
// runs pair up positionally and the rest report as inserts and deletes.
func compareChildren(a, b *node.Node, path string, out *[]Change) {
	typeMap := map[string]rune{}
	aRunes := mapTypesTo(typeMap, a)
	bRunes := mapTypesTo(typeMap, b)
	diffs := diffpatch.New().DiffMainRunes(aRunes, bRunes, false)

	ai, bi := 0, 0
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for range d.Text {
				c := a.Children[ai]
				*out = append(*out, Change{
					Path: childPath(path, c, ai),
					Kind: Delete,
					From: c.Type,
				})
				ai++
			}
		case diffpatch.DiffInsert:
			for range d.Text {
				c := b.Children[bi]
				*out = append(*out, Change{
					Path: childPath(path, c, bi),
					Kind: Insert,
					To:   c.Type,
				})
				bi++
			}
		case diffpatch.DiffEqual:
			for range d.Text {
				compare(a.Children[ai], b.Children[bi],
					childPath(path, a.Children[ai], ai), out)
				ai++
				bi++
			}
		}
	}
}

func mapTypesTo(m map[string]rune, n *node.Node) []rune {
	rs := make([]rune, len(n.Children))
	for i, c := range n.Children {
		r, ok := m[c.Type]
		if !ok {
			r = rune(len(m))
			m[c.Type] = r
		}
		rs[i] = r
	}
	return rs
}

func childPath(parent string, c *node.Node, i int) string {
	return fmt.Sprintf("%s/%s[%d]", parent, c.Type, i)
}
