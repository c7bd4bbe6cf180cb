// Package node provides the in-memory tree representation of a Formation
// design document.
//
// A design document is a tree of [Node] values, one per design element
// (widget, menu item, variable declaration, method-call record). A node
// carries an element type of the "module.ClassName" shape, an ordered child
// list, and an attribute bag in which related attributes are collected into
// namespace groups ("layout", "attr", "menu") held as nested maps.
//
// Trees are built either programmatically:
//
//	root := node.New(nil, "tkinter.Frame", nil)
//	btn := node.New(root, "tkinter.Button", nil)
//	btn.Group("layout")["width"] = "20"
//
// or by one of the formats in the formats package while walking a parsed
// design file. The tree has no knowledge of the format that produced it.
//
// Equality between trees ([Equal]) is the cheap "are these the same
// document" check used by round-trip tests and by the studio's dirty-state
// tracking: attribute sets are compared flattened and stringified with
// empty groups stripped, children strictly by position.
//
// Nodes are not safe for concurrent mutation; a tree is owned by one
// logical caller at a time.
package node
