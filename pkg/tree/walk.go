package tree

import "github.com/pkg/errors"

// FuncPlaceholder stands in for callable leaves in exported trees.
const FuncPlaceholder = "<func>"

// WalkFunc is called for every leaf. path holds the keys of the enclosing
// branches.
type WalkFunc func(path []string, key string, value interface{}) error

// Walk visits every leaf depth first, in sorted key order.
func (t Tree) Walk(fn WalkFunc) error {
	return t.walk(nil, fn)
}

func (t Tree) walk(path []string, fn WalkFunc) error {
	for _, key := range t.Keys() {
		node := t[key]
		if node.IsBranch() {
			sub := append(append([]string{}, path...), key)
			if err := node.branch.walk(sub, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(path, key, node.value); err != nil {
			return errors.Wrapf(err, "walk %q", key)
		}
	}
	return nil
}

// Leaves counts the leaves in t, sub-trees included.
func (t Tree) Leaves() int {
	count := 0
	_ = t.Walk(func([]string, string, interface{}) error {
		count++
		return nil
	})
	return count
}

// Export converts t into nested plain maps suitable for encoding. Callable
// leaves become FuncPlaceholder.
func (t Tree) Export() map[string]interface{} {
	out := make(map[string]interface{}, len(t))
	for key, node := range t {
		if node.IsBranch() {
			out[key] = node.branch.Export()
			continue
		}
		if _, ok := AsFunc(node.value); ok {
			out[key] = FuncPlaceholder
			continue
		}
		out[key] = node.value
	}
	return out
}

// FromMap builds a tree from nested maps; every map[string]interface{} value
// becomes a branch.
func FromMap(m map[string]interface{}) Tree {
	t := make(Tree, len(m))
	for key, value := range m {
		if sub, ok := value.(map[string]interface{}); ok {
			t[key] = Branch(FromMap(sub))
			continue
		}
		t[key] = Leaf(value)
	}
	return t
}
