package formation

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/hoverset/formation-go/debug"
	"github.com/hoverset/formation-go/formats"
	"github.com/hoverset/formation-go/node"
)

// Patch applies an RFC 6902 JSON Patch to a design tree and returns the
// patched tree. Paths address the JSON design-file shape, e.g.
// "/children/0/attrib/layout/width". The input tree is not modified; a
// failed patch returns no partial result.
func Patch(doc *node.Node, patchJSON []byte) (*node.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch %s with %d ops\n", doc.Path(), len(ops))
	}
	f, err := formats.NewJSON(formats.FromNode(doc))
	if err != nil {
		return nil, err
	}
	d, err := f.Generate(
		formats.StringifyValues(false),
		formats.Compact(true),
		formats.SortKeys(false),
	)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply([]byte(d))
	if err != nil {
		return nil, err
	}
	back, err := formats.NewJSON(formats.FromData(string(out)))
	if err != nil {
		return nil, err
	}
	return back.Load()
}
