package formats

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/hoverset/formation-go/node"
)

// YAML converts between node trees and YAML design files. The document
// shape is the JSON shape rendered as YAML: a "type" scalar, an "attrib"
// mapping with nested groups verbatim, and a "children" sequence omitted
// when empty.
type YAML struct {
	session
}

// NewYAML creates a YAML format session bound to src.
func NewYAML(src Source) (*YAML, error) {
	s, err := newSession(src)
	if err != nil {
		return nil, err
	}
	return &YAML{session: s}, nil
}

func (y *YAML) Name() string         { return "YAML" }
func (y *YAML) Extensions() []string { return []string{"yaml", "yml"} }

type yamlNode struct {
	Type     string         `yaml:"type"`
	Attrib   map[string]any `yaml:"attrib"`
	Children []*yamlNode    `yaml:"children,omitempty"`
}

// Load parses the session text into a tree, with the same permissive
// defaults as JSON: missing attrib is an empty attribute set, missing
// children a leaf.
func (y *YAML) Load() (*node.Node, error) {
	data, err := y.open()
	if err != nil {
		return nil, err
	}
	var doc yamlNode
	if err := yaml.Unmarshal([]byte(data), &doc); err != nil {
		return nil, err
	}
	if doc.Type == "" {
		return nil, fmt.Errorf("%w: node has no type", ErrBadDocument)
	}
	y.root = loadYAMLNode(nil, &doc)
	return y.root, nil
}

func loadYAMLNode(parent *node.Node, doc *yamlNode) *node.Node {
	n := node.New(parent, doc.Type, doc.Attrib)
	for _, c := range doc.Children {
		loadYAMLNode(n, c)
	}
	return n
}

// Generate serializes the session root. Recognized option:
// StringifyValues (default true); other options are not meaningful for
// YAML output and are ignored.
func (y *YAML) Generate(opts ...GenOption) (string, error) {
	if y.root == nil {
		return "", ErrNoSource
	}
	cfg := genConfig{stringify: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	doc := generateYAMLNode(y.root, cfg.stringify)
	d, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func generateYAMLNode(n *node.Node, stringify bool) *yamlNode {
	doc := &yamlNode{
		Type:   n.Type,
		Attrib: normalizeAttrib(n.Attrib, stringify),
	}
	for _, c := range n.Children {
		doc.Children = append(doc.Children, generateYAMLNode(c, stringify))
	}
	return doc
}

// normalizeAttrib copies attrib, recursing into groups. With stringify
// set, scalar leaves become strings and array values space-joined strings;
// otherwise native scalars pass through unchanged.
func normalizeAttrib(attrib map[string]any, stringify bool) map[string]any {
	res := make(map[string]any, len(attrib))
	for k, v := range attrib {
		switch x := v.(type) {
		case map[string]any:
			res[k] = normalizeAttrib(x, stringify)
		case []any:
			if !stringify {
				res[k] = x
				continue
			}
			parts := make([]string, len(x))
			for i, item := range x {
				parts[i] = node.FormatScalar(item)
			}
			res[k] = strings.Join(parts, " ")
		case nil, bool, string, int, int64, float64:
			if stringify {
				res[k] = node.FormatScalar(v)
				continue
			}
			res[k] = v
		default:
			res[k] = node.FormatScalar(v)
		}
	}
	return res
}
