package node

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is one element of a design tree: a widget, a menu item, a variable
// declaration or a method-call record. Children are ordered; insertion order
// is the display and serialization order. Attrib maps attribute names to
// scalar values and namespace-group names to nested maps.
type Node struct {
	Type     string
	Parent   *Node
	Children []*Node
	Attrib   map[string]any

	// SourceLine is the 1-based line of the element in the originating
	// text, or 0 when the node was built programmatically or the parser
	// does not expose line numbers.
	SourceLine int
}

// New creates a node and, when parent is non-nil, attaches it as the last
// child of parent. attrib is shallow-copied.
func New(parent *Node, nodeType string, attrib map[string]any) *Node {
	n := &Node{
		Type:   nodeType,
		Attrib: make(map[string]any, len(attrib)),
	}
	for k, v := range attrib {
		n.Attrib[k] = v
	}
	if parent != nil {
		parent.Attach(n)
	}
	return n
}

// Attach appends child to n's children and sets child.Parent. It is the
// single authoritative attach operation; construction with a parent routes
// through it, as must any re-parenting code.
func (n *Node) Attach(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Get returns the value stored under key, or nil if unset.
func (n *Node) Get(key string) any {
	return n.Attrib[key]
}

// Set stores value under key.
func (n *Node) Set(key string, value any) {
	if n.Attrib == nil {
		n.Attrib = map[string]any{}
	}
	n.Attrib[key] = value
}

// Group returns the nested mapping stored under name, creating and storing
// an empty one if name is unset. Mutations of the returned map are visible
// through Attrib. An empty group left behind by this accessor does not
// affect equality.
func (n *Node) Group(name string) map[string]any {
	if n.Attrib == nil {
		n.Attrib = map[string]any{}
	}
	if g, ok := n.Attrib[name].(map[string]any); ok {
		return g
	}
	g := map[string]any{}
	n.Attrib[name] = g
	return g
}

// RemoveAttrib removes name from the group namespace if present. Removing
// an absent attribute, or from an absent group, is a no-op.
func (n *Node) RemoveAttrib(name, namespace string) {
	g, ok := n.Attrib[namespace].(map[string]any)
	if !ok {
		return
	}
	delete(g, name)
}

// IsVar reports whether n declares a variable rather than a widget, by the
// trailing "Var" naming convention (e.g. "tkinter.StringVar").
func (n *Node) IsVar() bool {
	return len(n.Type) > len("Var") && strings.HasSuffix(n.Type, "Var")
}

// ModImpl splits the node type on its last dot into a module path and a
// class name. A type with no dot is malformed.
func (n *Node) ModImpl() (string, string, error) {
	i := strings.LastIndex(n.Type, ".")
	if i <= 0 || i == len(n.Type)-1 {
		return "", "", fmt.Errorf("%s%w: %q", n.SourceLineInfo(), ErrMalformedType, n.Type)
	}
	return n.Type[:i], n.Type[i+1:], nil
}

// SourceLineInfo returns a "Line N: " prefix for diagnostics, or the empty
// string when no source line is known.
func (n *Node) SourceLineInfo() string {
	if n.SourceLine == 0 {
		return ""
	}
	return fmt.Sprintf("Line %d: ", n.SourceLine)
}

// Len is the child count.
func (n *Node) Len() int {
	return len(n.Children)
}

// Root walks parent links to the tree root.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Clone deep-copies the subtree rooted at n. The clone's parent is nil.
func (n *Node) Clone() *Node {
	res := &Node{
		Type:       n.Type,
		SourceLine: n.SourceLine,
		Attrib:     cloneAttrib(n.Attrib),
	}
	res.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		cc := c.Clone()
		cc.Parent = res
		res.Children[i] = cc
	}
	return res
}

func cloneAttrib(attrib map[string]any) map[string]any {
	res := make(map[string]any, len(attrib))
	for k, v := range attrib {
		if m, ok := v.(map[string]any); ok {
			res[k] = cloneAttrib(m)
			continue
		}
		res[k] = v
	}
	return res
}

// Visit walks the subtree rooted at n in pre-order, calling f twice per
// node: once before its children with isPost false, once after with isPost
// true. Returning false from the pre call skips the children; any error
// stops the walk.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

// Index is n's position in its parent's children, or -1 for a root.
func (n *Node) Index() int {
	if n.Parent == nil {
		return -1
	}
	for i, c := range n.Parent.Children {
		if c == n {
			return i
		}
	}
	return -1
}

// Path is a diagnostic location of n in its tree, built from types and
// child positions, e.g. "/tkinter.Frame/tkinter.Button[2]".
func (n *Node) Path() string {
	if n.Parent == nil {
		return "/" + n.Type
	}
	return fmt.Sprintf("%s/%s[%d]", n.Parent.Path(), n.Type, n.Index())
}

// FormatScalar renders a scalar attribute value the way the formats write
// it, and the way equality compares it.
func FormatScalar(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
