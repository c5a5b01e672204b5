package tree

import "sort"

// Kind tags a Node as a leaf or a sub-tree.
type Kind int

const (
	// LeafKind nodes hold file-derived data
	LeafKind Kind = iota
	// BranchKind nodes hold a crawled directory
	BranchKind
)

func (k Kind) String() string {
	if k == BranchKind {
		return "branch"
	}
	return "leaf"
}

// A Tree maps derived names to nodes.
type Tree map[string]Node

// Node is either a Leaf or a Branch. The zero Node is a leaf holding nil.
type Node struct {
	kind   Kind
	value  interface{}
	branch Tree
}

// Leaf wraps a file-derived value.
func Leaf(value interface{}) Node {
	return Node{kind: LeafKind, value: value}
}

// Branch wraps a sub-tree. A nil sub-tree is replaced by an empty one.
func Branch(t Tree) Node {
	if t == nil {
		t = Tree{}
	}
	return Node{kind: BranchKind, branch: t}
}

func (n Node) Kind() Kind {
	return n.kind
}

func (n Node) IsBranch() bool {
	return n.kind == BranchKind
}

// Value is the leaf value, or nil for a branch.
func (n Node) Value() interface{} {
	if n.kind == BranchKind {
		return nil
	}
	return n.value
}

// Tree is the sub-tree of a branch, or nil for a leaf.
func (n Node) Tree() Tree {
	if n.kind != BranchKind {
		return nil
	}
	return n.branch
}

// Keys returns the tree's keys in sorted order.
func (t Tree) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Merge copies every entry of other into t, overwriting on collision.
func (t Tree) Merge(other Tree) Tree {
	for _, key := range other.Keys() {
		t[key] = other[key]
	}
	return t
}

// Get follows a key path and returns the node found there.
func (t Tree) Get(path ...string) (Node, bool) {
	current := t
	for i, key := range path {
		node, ok := current[key]
		if !ok {
			return Node{}, false
		}
		if i == len(path)-1 {
			return node, true
		}
		if !node.IsBranch() {
			return Node{}, false
		}
		current = node.branch
	}
	return Branch(t), true
}
