package formats

import (
	"errors"
	"os"

	"github.com/hoverset/formation-go/node"
)

var (
	// ErrNoSource reports a format constructed without a file path, raw
	// data or node tree.
	ErrNoSource = errors.New("format requires an input file, data or node")
	// ErrNoFormat reports a path whose extension matches no registered
	// format.
	ErrNoFormat = errors.New("no matching format")
	// ErrBadDocument reports input that parses but does not have the
	// design document shape.
	ErrBadDocument = errors.New("bad design document")
	// ErrNoNamespace reports an attribute group with no registered XML
	// namespace at generation time.
	ErrNoNamespace = errors.New("no registered namespace")
)

// Format is one load/generate session bound to a single input source. A
// session is bound at construction to exactly one of a file path, raw text,
// or an already-built tree; Load parses the text into a tree, Generate
// serializes the current tree back to text.
type Format interface {
	// Name is the short display name of the format ("XML", "JSON", ...).
	Name() string
	// Extensions lists the file extensions the format claims, lowercase,
	// without dots.
	Extensions() []string
	// Load parses the session's text into a tree and holds it as the
	// session root.
	Load() (*node.Node, error)
	// Generate serializes the session root, honoring the options the
	// format recognizes and ignoring the rest.
	Generate(opts ...GenOption) (string, error)
	// Root is the tree the session currently holds: the constructed node,
	// or the result of the last Load. Nil before either.
	Root() *node.Node
}

// Source designates the single input a format session is bound to. Build
// one with FromPath, FromData or FromNode.
type Source struct {
	path string
	data string
	ok   bool
	root *node.Node
}

// FromPath binds a session to a file, read lazily on first use.
func FromPath(path string) Source {
	return Source{path: path}
}

// FromData binds a session to raw text.
func FromData(data string) Source {
	return Source{data: data, ok: true}
}

// FromNode binds a session to an already-built tree.
func FromNode(root *node.Node) Source {
	return Source{root: root}
}

// session is the state shared by all formats: the bound source, the lazily
// read and cached text, and the held tree.
type session struct {
	path string
	data string
	ok   bool
	root *node.Node
}

func newSession(src Source) (session, error) {
	if src.path == "" && !src.ok && src.root == nil {
		return session{}, ErrNoSource
	}
	return session{path: src.path, data: src.data, ok: src.ok, root: src.root}, nil
}

// open returns the session text, reading and caching the file on first use
// when the session was bound to a path.
func (s *session) open() (string, error) {
	if s.ok {
		return s.data, nil
	}
	d, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	s.data = string(d)
	s.ok = true
	return s.data, nil
}

func (s *session) Root() *node.Node {
	return s.root
}

// GenOption configures Generate output. Each format recognizes a subset
// and ignores the rest.
type GenOption func(*genConfig)

type genConfig struct {
	prettyPrint bool
	xmlDecl     bool
	stringify   bool
	compact     bool
	sortKeys    bool
	indent      string
	indentCount int
}

// PrettyPrint indents output for human readability. Default true for XML,
// false for JSON.
func PrettyPrint(v bool) GenOption {
	return func(c *genConfig) { c.prettyPrint = v }
}

// XMLDeclaration emits the leading <?xml ...?> line (XML only, default
// true).
func XMLDeclaration(v bool) GenOption {
	return func(c *genConfig) { c.xmlDecl = v }
}

// StringifyValues forces all scalar attribute leaves to strings for a
// fully text-based design file (JSON and YAML, default true). When false,
// JSON-native scalars pass through unchanged.
func StringifyValues(v bool) GenOption {
	return func(c *genConfig) { c.stringify = v }
}

// Compact drops the space after item and key separators (JSON only,
// default false).
func Compact(v bool) GenOption {
	return func(c *genConfig) { c.compact = v }
}

// SortKeys emits object keys in sorted order for deterministic diffs
// (JSON only, default true).
func SortKeys(v bool) GenOption {
	return func(c *genConfig) { c.sortKeys = v }
}

// Indent sets the indent unit explicitly; overrides IndentCount.
func Indent(unit string) GenOption {
	return func(c *genConfig) { c.indent = unit }
}

// IndentCount sets the indent unit to this many spaces (JSON pretty
// printing, default 4).
func IndentCount(n int) GenOption {
	return func(c *genConfig) { c.indentCount = n }
}
