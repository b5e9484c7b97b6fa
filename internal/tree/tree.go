// Package tree provides an unbalanced binary search tree over ordered keys.
package tree

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

type node[T constraints.Ordered] struct {
	key                 T
	left, right, parent *node[T]
}

// Tree is a binary search tree. It is not safe for concurrent use.
//
// Keys are ordered with cmp.Compare, so a NaN key is a single key that sorts before every other float.
//
// The zero Tree may be used immediately. Tree should not be copied after the first insertion.
//
// This tree implementation does not support removal. It is also not self-balancing, so its depth
// depends on the insertion order.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.left
//     will be less than N.key
//   - At any node N in the tree, all node keys in the subtree rooted at N.right
//     will be greater than N.key
//   - For every possible key, there will be at most one node with that key
//     in the tree (no duplicates allowed)
type Tree[T constraints.Ordered] struct {
	// don't return nodes directly - client could mutate keys or children!
	root *node[T]
	size int
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	n := t.root

	for n != nil {
		switch c := cmp.Compare(k, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Insert inserts k into the tree as a new leaf.
// If k is already in the tree, the tree is left untouched and Insert returns false.
func (t *Tree[T]) Insert(k T) bool {
	if t.root == nil {
		t.root = &node[T]{key: k}
		t.size++
		return true
	}

	n, p := t.root, (*node[T])(nil)
	for n != nil {
		p = n
		switch c := cmp.Compare(k, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return false
		}
	}

	newnode := &node[T]{key: k, parent: p}
	if cmp.Less(k, p.key) {
		p.left = newnode
	} else {
		p.right = newnode
	}
	t.size++

	return true
}

// InOrder applies f to each key in the tree in ascending order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	visitInOrder(t.root, f)
}

func visitInOrder[T constraints.Ordered](n *node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}
	if !visitInOrder(n.left, f) {
		return false
	}
	if !f(n.key) {
		return false
	}
	return visitInOrder(n.right, f)
}

// Keys returns all keys in ascending order.
func (t *Tree[T]) Keys() []T {
	keys := make([]T, 0, t.size)
	for i := t.InOrderIterator(); i.Next(); {
		keys = append(keys, i.Item())
	}
	return keys
}
