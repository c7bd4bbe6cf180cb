package formation

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/hoverset/formation-go/debug"
	"github.com/hoverset/formation-go/node"
)

// ErrSelector reports a selector expression that does not evaluate to a
// boolean for some node.
var ErrSelector = errors.New("bad selector")

// Select returns the nodes of doc, in document order, for which the
// selector expression evaluates true. The expression sees one node at a
// time through these variables:
//
//	type     element type string, e.g. "tkinter.Frame"
//	attrib   the raw attribute bag with nested groups
//	attrs    flattened attributes keyed "group.name"
//	parent   parent element type, "" at the root
//	children child count
//	is_var   whether the node declares a variable
//	path     diagnostic node path
//
// Example: `type matches "tkinter\\..*" && attrs["layout.width"] == "20"`.
func Select(doc *node.Node, selector string) ([]*node.Node, error) {
	// "type" must resolve to the env variable, not the builtin
	prg, err := expr.Compile(selector, expr.AsBool(), expr.DisableBuiltin("type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSelector, err)
	}
	var res []*node.Node
	err = doc.Visit(func(n *node.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		ok, err := evalSelector(prg, n)
		if err != nil {
			return false, err
		}
		if debug.Select() {
			debug.Logf("select %s -> %v\n", n.Path(), ok)
		}
		if ok {
			res = append(res, n)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func evalSelector(prg *vm.Program, n *node.Node) (bool, error) {
	v, err := expr.Run(prg, selectorEnv(n))
	if err != nil {
		return false, fmt.Errorf("%w at %s: %w", ErrSelector, n.Path(), err)
	}
	ok, isBool := v.(bool)
	if !isBool {
		return false, fmt.Errorf("%w at %s: got %T, want bool", ErrSelector, n.Path(), v)
	}
	return ok, nil
}

func selectorEnv(n *node.Node) map[string]any {
	parent := ""
	if n.Parent != nil {
		parent = n.Parent.Type
	}
	return map[string]any{
		"type":     n.Type,
		"attrib":   n.Attrib,
		"attrs":    n.FlatAttrib(),
		"parent":   parent,
		"children": len(n.Children),
		"is_var":   n.IsVar(),
		"path":     n.Path(),
	}
}
