package tree

import (
	"golang.org/x/exp/constraints"
)

// InOrderIterator is an iterator object over a Tree.
// The usage should be pretty familiar:
//
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderIterator[T constraints.Ordered] struct {
	root, at *node[T]
	done     bool
}

// InOrderIterator returns an iterator that yields keys from the tree in ascending order
// without recursion, by following parent links.
func (t *Tree[T]) InOrderIterator() *InOrderIterator[T] {
	return &InOrderIterator[T]{
		root: t.root,
	}
}

// Next returns true if there is a next key to yield with Item.
// Next must always be called before Item. Once Next has returned false it keeps returning false.
func (i *InOrderIterator[T]) Next() bool {
	if i.done {
		return false
	}

	if i.at == nil {
		i.at = i.root
		if i.at == nil {
			i.done = true
			return false
		}

		for i.at.left != nil {
			i.at = i.at.left
		}
		return true
	}

	if i.at.right != nil {
		i.at = i.at.right

		for i.at.left != nil {
			i.at = i.at.left
		}

		return true
	}

	// climb until we arrive from a left child
	var child *node[T]
	for i.at != nil {
		i.at, child = i.at.parent, i.at
		if i.at != nil && i.at.left == child {
			return true
		}
	}

	i.done = true
	return false
}

// Item returns the current key of the iterator.
func (i *InOrderIterator[T]) Item() T {
	return i.at.key
}
