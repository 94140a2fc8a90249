package paramstore

import "encoding/json"

// Node is one position in a nested parameter tree. A node is exactly one of
// [Leaf] or [Branch]; a given key never holds both shapes at once.
type Node interface {
	node()
}

// Leaf is a terminal tree node holding an optional parameter value. A nil
// Value mirrors a parameter that was listed without a value.
type Leaf struct {
	Value *string
}

func (Leaf) node() {}

// MarshalJSON renders a leaf as its bare value.
func (l Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Value)
}

// Branch maps a single path segment to the node beneath it.
type Branch map[string]Node

func (Branch) node() {}

// buildBranch builds a single-branch tree from path segments and a value.
// For example:
//
//	buildBranch([]string{"foo", "bar"}, v) ==> Branch{"foo": Branch{"bar": Leaf{v}}}
func buildBranch(segments []string, value *string) Node {
	var n Node = Leaf{Value: value}
	for i := len(segments) - 1; i >= 0; i-- {
		n = Branch{segments[i]: n}
	}
	return n
}

// merge deep-merges b into a. When either side is not a branch, the
// incoming side wins unless it is absent, in which case the existing side
// is kept. Two branches merge as the union of their keys, each key merged
// recursively. Later leaf values therefore win over earlier ones on the
// exact same path while sibling keys from both sides survive.
func merge(a, b Node) Node {
	ab, aBranch := a.(Branch)
	bb, bBranch := b.(Branch)
	if !aBranch || !bBranch {
		if b == nil {
			return a
		}
		return b
	}

	out := make(Branch, len(ab)+len(bb))
	for k, v := range ab {
		out[k] = v
	}
	for k, v := range bb {
		if existing, ok := out[k]; ok {
			out[k] = merge(existing, v)
		} else {
			out[k] = v
		}
	}
	return out
}
