package main

import (
	"context"
	"encoding/xml"
	"errors"
	"sync"

	"github.com/hoverset/formation-go/formats"
	"github.com/hoverset/formation-go/node"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri      string
	content  string
	version  int32
	def      *formats.Definition
	root     *node.Node
	parseErr error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	doc := &document{
		uri:     uri,
		content: content,
		version: version,
	}
	def, err := formats.Infer(uri)
	if err != nil {
		// unrecognized extension, keep the content without a tree
		ds.docs[uri] = doc
		return
	}
	doc.def = &def
	f, err := def.New(formats.FromData(content))
	if err != nil {
		doc.parseErr = err
		ds.docs[uri] = doc
		return
	}
	doc.root, doc.parseErr = f.Load()
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if doc.parseErr != nil {
		diagnostic := protocol.Diagnostic{
			Range:    lineRange(0),
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.parseErr.Error(),
			Source:   "formation",
		}
		var syn *xml.SyntaxError
		if errors.As(doc.parseErr, &syn) && syn.Line > 0 {
			diagnostic.Range = lineRange(syn.Line - 1)
		}
		return append(diagnostics, diagnostic)
	}
	if doc.root == nil {
		return diagnostics
	}

	// Surface malformed widget types as warnings on their source lines.
	doc.root.Visit(func(n *node.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		if _, _, err := n.ModImpl(); err != nil {
			line := 0
			if n.SourceLine > 0 {
				line = n.SourceLine - 1
			}
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range:    lineRange(line),
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  err.Error(),
				Source:   "formation",
			})
		}
		return true, nil
	})

	return diagnostics
}

// lineRange covers a whole zero-based line.
func lineRange(line int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: uint32(line), Character: 0},
		End:   protocol.Position{Line: uint32(line + 1), Character: 0},
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			// Full document replacement
			content = change.Text
		} else {
			start := rangeVal.Start
			end := rangeVal.End
			contentRunes := []rune(content)
			startOffset := lineColToOffset(content, int(start.Line), int(start.Character))
			endOffset := lineColToOffset(content, int(end.Line), int(end.Character))
			if startOffset < len(contentRunes) && endOffset <= len(contentRunes) {
				content = string(contentRunes[:startOffset]) + change.Text + string(contentRunes[endOffset:])
			}
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// lineColToOffset converts a line/column position to a rune offset.
func lineColToOffset(content string, line, col int) int {
	runes := []rune(content)
	currentLine := 0
	currentCol := 0
	for i, r := range runes {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(runes)
}
