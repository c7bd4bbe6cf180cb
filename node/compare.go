package node

// Equal reports whether a and b describe the same document. Types must
// match, flattened attribute sets must match, and children must match
// pairwise by position. Attribute comparison stringifies scalar leaves, so
// 1 and "1" compare equal, and drops empty groups, so {"layout": {}} is
// equal to no "layout" key at all. Child comparison is strictly positional:
// trees whose children are permutations of each other are not equal.
//
// Neither tree is mutated.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	if !flatEqual(flatten(a.Attrib), flatten(b.Attrib)) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether n and other describe the same document; see the
// package-level Equal.
func (n *Node) Equal(other *Node) bool {
	return Equal(n, other)
}

// flat is the comparison shape of an attribute map: scalar leaves become
// strings, nested groups flatten recursively, empty groups disappear.
type flat map[string]any

func flatten(attrib map[string]any) flat {
	res := make(flat, len(attrib))
	for k, v := range attrib {
		if m, ok := v.(map[string]any); ok {
			f := flatten(m)
			if len(f) == 0 {
				continue
			}
			res[k] = f
			continue
		}
		res[k] = FormatScalar(v)
	}
	return res
}

func flatEqual(a, b flat) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		am, aIsMap := av.(flat)
		bm, bIsMap := bv.(flat)
		if aIsMap != bIsMap {
			return false
		}
		if aIsMap {
			if !flatEqual(am, bm) {
				return false
			}
			continue
		}
		if av != bv {
			return false
		}
	}
	return true
}

// FlatAttrib returns the flattened attribute set of n with composite
// "group.name" keys for grouped attributes, the representation equality
// compares and diffing reports against. The result is detached from n.
func (n *Node) FlatAttrib() map[string]string {
	res := map[string]string{}
	flattenInto(res, "", n.Attrib)
	return res
}

func flattenInto(dst map[string]string, prefix string, attrib map[string]any) {
	for k, v := range attrib {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if m, ok := v.(map[string]any); ok {
			flattenInto(dst, key, m)
			continue
		}
		dst[key] = FormatScalar(v)
	}
}
