// Package xmldoc is the XML document processor behind the XML design-file
// format. It exposes the capabilities the format layer needs as an explicit
// interface: parse to an element tree, serialize one back, and, per
// implementation, source line tracking and unused-namespace cleanup.
//
// Two implementations exist. [Default] tracks the source line of every
// element and re-declares only the namespaces a document actually uses.
// [Minimal] is the reduced-fidelity fallback: no line numbers (elements
// report line 0) and no namespace cleanup (every configured namespace is
// declared on the root). The capability difference is observable through
// [Processor.SourceLines].
package xmldoc

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Element is one parsed XML element: a tag, ordered attributes, ordered
// children and, when the processor supports it, the 1-based source line of
// the start tag.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Line     int
}

// Attr is one attribute. Space is the resolved namespace URI, empty for
// plain attributes.
type Attr struct {
	Space string
	Local string
	Value string
}

// SetAttr appends an attribute.
func (e *Element) SetAttr(space, local, value string) {
	e.Attrs = append(e.Attrs, Attr{Space: space, Local: local, Value: value})
}

// Options configures Serialize.
type Options struct {
	// Namespaces maps declaration prefixes to namespace URIs. Which
	// declarations are emitted depends on the processor.
	Namespaces map[string]string
	// PrettyPrint indents nested elements.
	PrettyPrint bool
	// Declaration emits the leading <?xml ...?> line.
	Declaration bool
	// Indent is the indent unit for PrettyPrint; two spaces when empty.
	Indent string
}

// Processor converts between XML text and element trees.
type Processor interface {
	Parse(data string) (*Element, error)
	Serialize(root *Element, opts Options) (string, error)
	// SourceLines reports whether Parse records element source lines.
	SourceLines() bool
}

// ErrNoPrefix reports an attribute namespace URI with no configured
// declaration prefix at serialization time.
var ErrNoPrefix = errors.New("no namespace prefix")

// serialize is shared by both processors; cleanup selects whether only the
// namespaces in use are declared.
func serialize(root *Element, opts Options, cleanup bool) (string, error) {
	reversed := make(map[string]string, len(opts.Namespaces))
	for prefix, uri := range opts.Namespaces {
		reversed[uri] = prefix
	}
	declare := map[string]bool{}
	if cleanup {
		if err := markUsed(root, reversed, declare); err != nil {
			return "", err
		}
	} else {
		for prefix := range opts.Namespaces {
			declare[prefix] = true
		}
	}
	prefixes := make([]string, 0, len(declare))
	for prefix := range declare {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	var b strings.Builder
	if opts.Declaration {
		b.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
		if opts.PrettyPrint {
			b.WriteString("\n")
		}
	}
	if err := writeElement(&b, root, reversed, prefixes, opts, indent, 0); err != nil {
		return "", err
	}
	if opts.PrettyPrint {
		b.WriteString("\n")
	}
	return b.String(), nil
}

func markUsed(e *Element, reversed map[string]string, declare map[string]bool) error {
	for _, a := range e.Attrs {
		if a.Space == "" {
			continue
		}
		prefix, ok := reversed[a.Space]
		if !ok {
			return fmt.Errorf("%w for namespace %q", ErrNoPrefix, a.Space)
		}
		declare[prefix] = true
	}
	for _, c := range e.Children {
		if err := markUsed(c, reversed, declare); err != nil {
			return err
		}
	}
	return nil
}

func writeElement(b *strings.Builder, e *Element, reversed map[string]string, declNS []string, opts Options, indent string, depth int) error {
	if opts.PrettyPrint && depth > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(indent, depth))
	}
	b.WriteString("<")
	b.WriteString(e.Tag)
	if depth == 0 {
		for _, prefix := range declNS {
			b.WriteString(` xmlns:`)
			b.WriteString(prefix)
			b.WriteString(`="`)
			b.WriteString(escape(opts.Namespaces[prefix]))
			b.WriteString(`"`)
		}
	}
	for _, a := range e.Attrs {
		name := a.Local
		if a.Space != "" {
			prefix, ok := reversed[a.Space]
			if !ok {
				return fmt.Errorf("%w for namespace %q", ErrNoPrefix, a.Space)
			}
			name = prefix + ":" + a.Local
		}
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(escape(a.Value))
		b.WriteString(`"`)
	}
	if len(e.Children) == 0 {
		b.WriteString("/>")
		return nil
	}
	b.WriteString(">")
	for _, c := range e.Children {
		if err := writeElement(b, c, reversed, nil, opts, indent, depth+1); err != nil {
			return err
		}
	}
	if opts.PrettyPrint {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(indent, depth))
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteString(">")
	return nil
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", "&#xA;",
	"\t", "&#x9;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
