package node

import "errors"

var (
	// ErrMalformedType reports a node type missing the module.ClassName
	// separator.
	ErrMalformedType = errors.New("malformed type")
)
