// Package bst provides the implementation of an unbalanced binary search
// tree holding a set of integers.
//
// The tree applies no balancing strategy; its shape depends entirely on the
// order of the insert and remove operations performed on it. Like the other
// containers in this module, trees are not safe to use concurrently from
// multiple goroutines, synchronization is left to the application.
package bst

import "github.com/segmentio/bintree/compare"

// Tree is an unbalanced binary search tree of integers. Each value is held
// by exactly one node, values in a node's left subtree are strictly less
// than the node's value, and values in its right subtree strictly greater.
//
// The zero-value is a valid empty tree, ready to use without initialization.
type Tree struct {
	cmp  func(int, int) int
	len  int
	root *Node
}

// Node is the handle to a value stored in a tree. Nodes remain owned by the
// tree that allocated them: programs may read the value through the handle
// but must not retain it across mutations of the tree.
type Node struct {
	left  *Node
	right *Node
	value int
}

// Value returns the integer held by the node.
func (n *Node) Value() int { return n.value }

// New constructs a new empty tree.
func New() *Tree {
	t := new(Tree)
	t.Init()
	return t
}

// Init initializes (or re-initializes) the tree, releasing any nodes it
// owned and resetting it to the empty state.
//
// Complexity: O(1), reclaiming the released nodes is left to the garbage
// collector.
func (t *Tree) Init() {
	t.cmp = compare.Function[int]
	t.len = 0
	t.root = nil
}

func (t *Tree) init() {
	if t.cmp == nil {
		t.cmp = compare.Function[int]
	}
}

// Len returns the number of values currently held in the tree.
//
// Complexity: O(1)
func (t *Tree) Len() int { return t.len }

// Empty returns true if the tree holds no values.
//
// Complexity: O(1)
func (t *Tree) Empty() bool { return t.len == 0 }

// Root returns the value held at the root of the tree, or zero if the tree
// is empty.
//
// Complexity: O(1)
func (t *Tree) Root() int {
	if t.root == nil {
		return 0
	}
	return t.root.value
}

// Min returns the smallest value in the tree, or zero if the tree is empty.
//
// Complexity: O(log n) on a balanced tree, O(n) on a degenerate one.
func (t *Tree) Min() int {
	if t.root == nil {
		return 0
	}
	return min(t.root).value
}

// Max returns the largest value in the tree, or zero if the tree is empty.
//
// Complexity: O(log n) on a balanced tree, O(n) on a degenerate one.
func (t *Tree) Max() int {
	if t.root == nil {
		return 0
	}
	return max(t.root).value
}

// Contains returns true if the given value exists in the tree.
//
// Complexity: O(log n) on a balanced tree, O(n) on a degenerate one.
func (t *Tree) Contains(value int) bool {
	return t.Find(value) != nil
}

// Find returns the node holding the given value, or nil if the value is not
// in the tree. The node is an observing handle, see the documentation of the
// Node type for its constraints.
//
// Complexity: O(log n) on a balanced tree, O(n) on a degenerate one.
func (t *Tree) Find(value int) *Node {
	t.init()
	n := t.root
	for n != nil {
		switch cmp := t.cmp(value, n.value); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Insert inserts a new value in the tree. If the value already exists the
// tree is not modified and the method returns false, otherwise it returns
// true after linking a new leaf node.
//
// Complexity: O(log n) on a balanced tree, O(n) on a degenerate one.
func (t *Tree) Insert(value int) (inserted bool) {
	t.init()
	t.root, inserted = t.insert(t.root, value)
	if inserted {
		t.len++
	}
	return inserted
}

func (t *Tree) insert(n *Node, value int) (*Node, bool) {
	if n == nil {
		return &Node{value: value}, true
	}
	var inserted bool
	switch cmp := t.cmp(value, n.value); {
	case cmp < 0:
		n.left, inserted = t.insert(n.left, value)
	case cmp > 0:
		n.right, inserted = t.insert(n.right, value)
	}
	return n, inserted
}

// Remove removes a value from the tree. If the value does not exist the tree
// is not modified and the method returns false.
//
// Complexity: O(log n) on a balanced tree, O(n) on a degenerate one.
func (t *Tree) Remove(value int) (removed bool) {
	t.init()
	t.root, removed = t.remove(t.root, value)
	if removed {
		t.len--
	}
	return removed
}

func (t *Tree) remove(n *Node, value int) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch cmp := t.cmp(value, n.value); {
	case cmp < 0:
		n.left, removed = t.remove(n.left, value)
	case cmp > 0:
		n.right, removed = t.remove(n.right, value)
	default:
		switch {
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		default:
			// Two children: the in-order successor (leftmost node of the
			// right subtree) takes this node's place, then gets removed
			// from the right subtree where it has at most one child.
			s := min(n.right)
			n.value = s.value
			n.right, _ = t.remove(n.right, s.value)
			return n, true
		}
	}
	return n, removed
}

// Clear removes every value from the tree, resetting it to the empty state.
//
// Complexity: O(1), reclaiming the released nodes is left to the garbage
// collector.
func (t *Tree) Clear() {
	t.len = 0
	t.root = nil
}

// Clone returns a deep copy of the tree: every node is duplicated with the
// same value and the same shape, and the copy shares no nodes with the
// original.
//
// Complexity: O(n)
func (t *Tree) Clone() *Tree {
	return &Tree{cmp: t.cmp, len: t.len, root: clone(t.root)}
}

// CopyFrom replaces the contents of the tree with a deep copy of src,
// releasing any nodes it previously owned. Copying a tree into itself is a
// no-op.
//
// Complexity: O(src.Len())
func (t *Tree) CopyFrom(src *Tree) {
	if t == src {
		return
	}
	t.cmp = src.cmp
	t.len = src.len
	t.root = clone(src.root)
}

// Move transfers ownership of the tree's nodes into a new tree, leaving the
// source empty. The source remains valid and can be used again after the
// call.
//
// Complexity: O(1)
func (t *Tree) Move() *Tree {
	moved := &Tree{cmp: t.cmp, len: t.len, root: t.root}
	t.len = 0
	t.root = nil
	return moved
}

// MoveFrom releases the nodes currently owned by the tree and adopts the
// nodes of src, leaving src empty but valid. Moving a tree into itself is a
// no-op.
//
// Complexity: O(1)
func (t *Tree) MoveFrom(src *Tree) {
	if t == src {
		return
	}
	t.cmp = src.cmp
	t.len = src.len
	t.root = src.root
	src.len = 0
	src.root = nil
}

func clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{left: clone(n.left), right: clone(n.right), value: n.value}
}

func min(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func max(n *Node) *Node {
	for n.right != nil {
		n = n.right
	}
	return n
}
