package formats

import "github.com/hoverset/formation-go/node"

// Builder is the external collaborator that instantiates toolkit objects
// for an [Adapter]. Its behavior is owned by the studio layers; this
// package only carries the seam.
type Builder interface {
	// Build creates the toolkit object for a node under the given parent
	// object.
	Build(n *node.Node, parent any) (any, error)
}

// Adapter converts one node into a live toolkit object. Every widget-level
// adapter implements Load; adapters that also support serialization
// additionally implement [Generator].
type Adapter interface {
	Load(n *node.Node, builder Builder, parent any) (any, error)
}

// Generator is the optional inverse direction of an [Adapter]: deriving a
// node from a live toolkit object.
type Generator interface {
	Generate(widget any, parent *node.Node) (*node.Node, error)
}
