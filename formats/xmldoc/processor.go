package xmldoc

import (
	"encoding/xml"
	"io"
	"strings"
)

// Default returns the full-fidelity processor: element source lines are
// recorded during parsing and only the namespaces a document uses are
// declared when serializing.
func Default() Processor {
	return &lineProcessor{}
}

// Minimal returns the reduced-fidelity processor: parsed elements carry no
// source lines and serialization declares every configured namespace
// whether used or not.
func Minimal() Processor {
	return &minProcessor{}
}

type lineProcessor struct{}

func (p *lineProcessor) SourceLines() bool { return true }

func (p *lineProcessor) Parse(data string) (*Element, error) {
	return parse(data, true)
}

func (p *lineProcessor) Serialize(root *Element, opts Options) (string, error) {
	return serialize(root, opts, true)
}

type minProcessor struct{}

func (p *minProcessor) SourceLines() bool { return false }

func (p *minProcessor) Parse(data string) (*Element, error) {
	return parse(data, false)
}

func (p *minProcessor) Serialize(root *Element, opts Options) (string, error) {
	return serialize(root, opts, false)
}

// parse walks the token stream, maintaining the element stack and, when
// lines is set, the line reached before each token. A start tag's line is
// the line of the offset where the previous token ended, since inter-tag
// whitespace arrives as its own CharData token.
func parse(data string, lines bool) (*Element, error) {
	dec := xml.NewDecoder(strings.NewReader(data))
	var (
		root    *Element
		stack   []*Element
		line    = 1
		scanned int64
	)
	for {
		tokLine := line
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if lines {
			end := dec.InputOffset()
			line += strings.Count(data[scanned:end], "\n")
			scanned = end
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			e := &Element{Tag: name(tok.Name)}
			if lines {
				e.Line = tokLine
			}
			for _, a := range tok.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				e.SetAttr(a.Name.Space, a.Name.Local, a.Value)
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, &xml.SyntaxError{Msg: "multiple root elements", Line: tokLine}
				}
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, &xml.SyntaxError{Msg: "no root element", Line: line}
	}
	return root, nil
}

func name(n xml.Name) string {
	return n.Local
}
