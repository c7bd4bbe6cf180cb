package formats

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hoverset/formation-go/node"
)

// JSON converts between node trees and JSON design files. Each node is an
// object {"type": ..., "attrib": {...}, "children": [...]} with children
// omitted when empty. Nested attribute groups round-trip as nested objects
// verbatim; there is no fixed namespace set.
type JSON struct {
	session
}

// NewJSON creates a JSON format session bound to src.
func NewJSON(src Source) (*JSON, error) {
	s, err := newSession(src)
	if err != nil {
		return nil, err
	}
	return &JSON{session: s}, nil
}

func (j *JSON) Name() string         { return "JSON" }
func (j *JSON) Extensions() []string { return []string{"json"} }

// Load parses the session text into a tree. Objects missing "attrib"
// default to an empty attribute set; objects missing "children" are
// leaves.
func (j *JSON) Load() (*node.Node, error) {
	data, err := j.open()
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, err
	}
	root, err := loadValue(nil, doc)
	if err != nil {
		return nil, err
	}
	j.root = root
	return j.root, nil
}

func loadValue(parent *node.Node, v any) (*node.Node, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: node is %T, not an object", ErrBadDocument, v)
	}
	typ, ok := obj["type"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: node has no type", ErrBadDocument)
	}
	attrib, _ := obj["attrib"].(map[string]any)
	n := node.New(parent, typ, attrib)
	children, _ := obj["children"].([]any)
	for _, c := range children {
		if _, err := loadValue(n, c); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Generate serializes the session root. Recognized options:
// StringifyValues (default true), Compact (default false), SortKeys
// (default true), PrettyPrint (default false) with Indent or IndentCount
// (default 4) controlling the indent unit.
func (j *JSON) Generate(opts ...GenOption) (string, error) {
	if j.root == nil {
		return "", ErrNoSource
	}
	cfg := genConfig{stringify: true, sortKeys: true, indentCount: 4}
	for _, opt := range opts {
		opt(&cfg)
	}
	w := newJSONWriter(cfg)
	var b strings.Builder
	if err := w.writeNode(&b, j.root, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

// jsonWriter writes the design-document JSON shape directly so separator
// and indent semantics stay exact across options.
type jsonWriter struct {
	stringify bool
	sortKeys  bool
	pretty    bool
	itemSep   string
	kvSep     string
	indent    string
}

func newJSONWriter(cfg genConfig) *jsonWriter {
	w := &jsonWriter{
		stringify: cfg.stringify,
		sortKeys:  cfg.sortKeys,
		pretty:    cfg.prettyPrint,
		itemSep:   ", ",
		kvSep:     ": ",
		indent:    cfg.indent,
	}
	if cfg.compact {
		w.itemSep = ","
		w.kvSep = ":"
	}
	if w.pretty {
		w.itemSep = ","
		if w.indent == "" {
			w.indent = strings.Repeat(" ", cfg.indentCount)
		}
	}
	return w
}

type entry struct {
	key string
	val any
}

func (w *jsonWriter) writeNode(b *strings.Builder, n *node.Node, depth int) error {
	entries := []entry{{"type", n.Type}, {"attrib", attribValue(n.Attrib)}}
	if len(n.Children) > 0 {
		entries = append(entries, entry{"children", n.Children})
	}
	return w.writeObject(b, entries, depth)
}

func (w *jsonWriter) writeObject(b *strings.Builder, entries []entry, depth int) error {
	if w.sortKeys {
		for i := 1; i < len(entries); i++ {
			for k := i; k > 0 && entries[k].key < entries[k-1].key; k-- {
				entries[k], entries[k-1] = entries[k-1], entries[k]
			}
		}
	}
	if len(entries) == 0 {
		b.WriteString("{}")
		return nil
	}
	b.WriteString("{")
	for i, e := range entries {
		if i > 0 {
			b.WriteString(w.itemSep)
		}
		w.newline(b, depth+1)
		if err := w.writeString(b, e.key); err != nil {
			return err
		}
		b.WriteString(w.kvSep)
		if err := w.writeValue(b, e.val, depth+1); err != nil {
			return err
		}
	}
	w.newline(b, depth)
	b.WriteString("}")
	return nil
}

func (w *jsonWriter) writeValue(b *strings.Builder, v any, depth int) error {
	switch x := v.(type) {
	case *node.Node:
		return w.writeNode(b, x, depth)
	case []*node.Node:
		b.WriteString("[")
		for i, c := range x {
			if i > 0 {
				b.WriteString(w.itemSep)
			}
			w.newline(b, depth+1)
			if err := w.writeNode(b, c, depth+1); err != nil {
				return err
			}
		}
		w.newline(b, depth)
		b.WriteString("]")
		return nil
	case map[string]any:
		entries := make([]entry, 0, len(x))
		for _, k := range sortedKeys(x) {
			entries = append(entries, entry{k, x[k]})
		}
		return w.writeObject(b, entries, depth)
	case []any:
		if w.stringify {
			parts := make([]string, len(x))
			for i, item := range x {
				parts[i] = node.FormatScalar(item)
			}
			return w.writeString(b, strings.Join(parts, " "))
		}
		b.WriteString("[")
		for i, item := range x {
			if i > 0 {
				b.WriteString(w.itemSep)
			}
			w.newline(b, depth+1)
			if err := w.writeValue(b, item, depth+1); err != nil {
				return err
			}
		}
		w.newline(b, depth)
		b.WriteString("]")
		return nil
	default:
		return w.writeScalar(b, v)
	}
}

func (w *jsonWriter) writeScalar(b *strings.Builder, v any) error {
	if w.stringify {
		return w.writeString(b, node.FormatScalar(v))
	}
	switch v.(type) {
	case nil, bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64,
		json.Number:
		d, err := json.Marshal(v)
		if err != nil {
			return err
		}
		b.Write(d)
		return nil
	default:
		// not JSON-native, stringified regardless
		return w.writeString(b, node.FormatScalar(v))
	}
}

func (w *jsonWriter) writeString(b *strings.Builder, s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	b.Write(d)
	return nil
}

func (w *jsonWriter) newline(b *strings.Builder, depth int) {
	if !w.pretty {
		return
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat(w.indent, depth))
}

// attribValue keeps an empty attrib present in output as {}.
func attribValue(attrib map[string]any) any {
	if attrib == nil {
		return map[string]any{}
	}
	return attrib
}
