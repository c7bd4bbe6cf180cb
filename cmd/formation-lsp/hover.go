package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hoverset/formation-go/node"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}

	line := int(params.Position.Line) + 1
	target := findNodeAtLine(doc.root, line)
	if target == nil {
		return nil, nil
	}

	hoverText := buildHoverText(target)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findNodeAtLine picks the deepest node declared on the given 1-based line.
func findNodeAtLine(root *node.Node, line int) *node.Node {
	var best *node.Node
	root.Visit(func(n *node.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		if n.SourceLine == line {
			best = n
		}
		return true, nil
	})
	return best
}

func buildHoverText(n *node.Node) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("**Type:** `%s`", n.Type))
	if mod, impl, err := n.ModImpl(); err == nil {
		parts = append(parts, fmt.Sprintf("**Module:** `%s`", mod))
		parts = append(parts, fmt.Sprintf("**Class:** `%s`", impl))
	}
	if n.IsVar() {
		parts = append(parts, "**Variable:** yes")
	}
	if attrs := n.FlatAttrib(); len(attrs) > 0 {
		parts = append(parts, fmt.Sprintf("%d attributes", len(attrs)))
	}
	if n.Len() > 0 {
		parts = append(parts, fmt.Sprintf("%d children", n.Len()))
	}
	parts = append(parts, fmt.Sprintf("**Path:** `%s`", n.Path()))

	return strings.Join(parts, "\n\n")
}
