package formats

import (
	"fmt"
	"sort"

	"github.com/hoverset/formation-go/formats/xmldoc"
	"github.com/hoverset/formation-go/node"
)

// Namespaces maps the attribute-group names of the XML design format to
// their namespace URIs. Grouped attributes are written namespaced; plain
// attributes stay at the top level of a node's attrib map.
var Namespaces = map[string]string{
	"layout": "http://www.hoversetformationstudio.com/layouts/",
	"attr":   "http://www.hoversetformationstudio.com/styles/",
	"menu":   "http://www.hoversetformationstudio.com/menu",
}

var reversedNamespaces = func() map[string]string {
	res := make(map[string]string, len(Namespaces))
	for prefix, uri := range Namespaces {
		res[uri] = prefix
	}
	return res
}()

// XML converts between node trees and XML design files. Widget attributes
// are grouped through the three fixed namespaces in [Namespaces].
type XML struct {
	session
	proc xmldoc.Processor
}

// XMLOption configures an XML session.
type XMLOption func(*XML)

// WithProcessor selects the document processor. The default is
// [xmldoc.Default]; [xmldoc.Minimal] trades source line numbers and
// namespace cleanup away.
func WithProcessor(p xmldoc.Processor) XMLOption {
	return func(x *XML) { x.proc = p }
}

// NewXML creates an XML format session bound to src.
func NewXML(src Source, opts ...XMLOption) (*XML, error) {
	s, err := newSession(src)
	if err != nil {
		return nil, err
	}
	x := &XML{session: s, proc: xmldoc.Default()}
	for _, opt := range opts {
		opt(x)
	}
	return x, nil
}

func (x *XML) Name() string         { return "XML" }
func (x *XML) Extensions() []string { return []string{"xml"} }

// Load parses the session text into a tree. Element tags become node
// types; attributes in a recognized namespace land in the matching group,
// the rest at the top level. Source lines are recorded when the processor
// tracks them.
func (x *XML) Load() (*node.Node, error) {
	data, err := x.open()
	if err != nil {
		return nil, err
	}
	root, err := x.proc.Parse(data)
	if err != nil {
		return nil, err
	}
	x.root = x.loadElement(nil, root)
	return x.root, nil
}

func (x *XML) loadElement(parent *node.Node, e *xmldoc.Element) *node.Node {
	grouped := map[string]any{}
	for _, a := range e.Attrs {
		group := groupFor(a.Space)
		if group == "" {
			grouped[a.Local] = a.Value
			continue
		}
		g, ok := grouped[group].(map[string]any)
		if !ok {
			g = map[string]any{}
			grouped[group] = g
		}
		g[a.Local] = a.Value
	}
	n := node.New(parent, e.Tag, grouped)
	n.SourceLine = e.Line
	for _, c := range e.Children {
		x.loadElement(n, c)
	}
	return n
}

// groupFor resolves an attribute namespace to an attrib group key. A
// recognized URI maps to its group name and an empty space means
// ungrouped. Undeclared prefixes and foreign URIs come through verbatim
// and group under themselves, which keeps bare attr:/layout: prefixes
// working without xmlns declarations.
func groupFor(space string) string {
	if space == "" {
		return ""
	}
	if prefix, ok := reversedNamespaces[space]; ok {
		return prefix
	}
	return space
}

// Generate serializes the session root. Recognized options: PrettyPrint
// (default true) and XMLDeclaration (default true). Attribute values are
// stringified; attributes are written in sorted order for deterministic
// output.
func (x *XML) Generate(opts ...GenOption) (string, error) {
	if x.root == nil {
		return "", ErrNoSource
	}
	cfg := genConfig{prettyPrint: true, xmlDecl: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	root, err := x.generateElement(x.root)
	if err != nil {
		return "", err
	}
	return x.proc.Serialize(root, xmldoc.Options{
		Namespaces:  Namespaces,
		PrettyPrint: cfg.prettyPrint,
		Declaration: cfg.xmlDecl,
		Indent:      cfg.indent,
	})
}

func (x *XML) generateElement(n *node.Node) (*xmldoc.Element, error) {
	e := &xmldoc.Element{Tag: n.Type}
	for _, key := range sortedKeys(n.Attrib) {
		group, ok := n.Attrib[key].(map[string]any)
		if !ok {
			e.SetAttr("", key, node.FormatScalar(n.Attrib[key]))
			continue
		}
		uri, ok := Namespaces[key]
		if !ok {
			return nil, fmt.Errorf("%w %q for attribute group", ErrNoNamespace, key)
		}
		for _, name := range sortedKeys(group) {
			e.SetAttr(uri, name, node.FormatScalar(group[name]))
		}
	}
	for _, c := range n.Children {
		ce, err := x.generateElement(c)
		if err != nil {
			return nil, err
		}
		e.Children = append(e.Children, ce)
	}
	return e, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
