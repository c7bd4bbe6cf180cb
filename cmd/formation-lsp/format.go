package main

import (
	"context"
	"strings"

	"github.com/hoverset/formation-go/formats"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.def == nil || doc.root == nil {
		return nil, nil
	}

	f, err := doc.def.New(formats.FromNode(doc.root))
	if err != nil {
		return nil, nil
	}
	formatted, err := f.Generate(formats.PrettyPrint(true))
	if err != nil {
		return nil, nil
	}
	if !strings.HasSuffix(formatted, "\n") {
		formatted += "\n"
	}

	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// Replace the entire document with the regenerated text.
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
