// Package formats loads and generates Formation design files.
//
// A format is a session bound to exactly one input source: a file path,
// raw text, or an already-built tree.
//
//	f, err := formats.NewXML(formats.FromPath("design.xml"))
//	root, err := f.Load()
//	// ... mutate the tree ...
//	out, err := f.Generate(formats.PrettyPrint(false))
//
// Three formats are registered: XML (namespaced attribute groups), JSON
// and YAML (nested attribute objects). The registry surface
// ([Formats], [FileTypes], [Infer]) maps file extensions to formats for
// file pickers and format auto-detection.
//
// Generation is configured with functional options; each format documents
// the options it recognizes and ignores the rest, so one option list can
// be passed through regardless of the output format.
package formats
