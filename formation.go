// Package formation is the serialization core of the Formation design
// studio: design documents as trees of nodes, text formats to load and
// generate them, and tree-level operations built on top.
//
// The subpackages carry the data model and the formats:
//
//   - node: the design tree and its structural equality
//   - formats: XML, JSON and YAML design files plus the format registry
//   - diff: structural differences between two design trees
//
// This package holds the operations spanning them: [Patch] applies an
// RFC 6902 JSON Patch to a tree, [Select] picks nodes with an expression.
package formation
