package resolve

import (
	"github.com/pkg/errors"
	"github.com/replicatedhq/dirload/pkg/tree"
)

// Resolve walks t in place and returns it. Branches are recursed into with
// the same mode; leaves are transformed or called depending on the mode, and
// keep their original value unless the transform or call reports ok.
//
// An error aborts the pass. Leaves already replaced stay replaced.
func Resolve(t tree.Tree, mode Mode) (tree.Tree, error) {
	for _, key := range t.Keys() {
		node := t[key]

		if node.IsBranch() {
			if _, err := Resolve(node.Tree(), mode); err != nil {
				return t, errors.Wrapf(err, "resolve %q", key)
			}
			continue
		}

		replacement, ok, err := resolveLeaf(key, node.Value(), mode)
		if err != nil {
			return t, errors.Wrapf(err, "resolve %q", key)
		}
		if ok {
			t[key] = tree.Leaf(replacement)
		}
	}
	return t, nil
}

func resolveLeaf(key string, value interface{}, mode Mode) (interface{}, bool, error) {
	if mode.kind == TransformMode {
		return mode.transform(key, value)
	}

	fn, callable := tree.AsFunc(value)
	if !callable {
		return nil, false, nil
	}
	return fn(mode.args...)
}
