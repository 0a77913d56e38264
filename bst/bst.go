package bst

import "errors"

var (
	ErrNoMoreNodes = errors.New("there are no more nodes in the tree")
)

type (
	Tree[K, V any] struct {
		size        int
		root        *node[K, V]
		cmp         func(a, b K) int
		comparisons int
	}

	// each node is owned by exactly one slot: the root or a parent's
	// left/right field
	node[K, V any] struct {
		key   K
		value V
		left  *node[K, V]
		right *node[K, V]
	}

	// Visitor is called for every entry of a range walk. Returning false
	// stops the walk.
	Visitor[K, V any] func(key K, value V) bool

	// UpdateFunc receives the current value (zero if absent) and returns
	// the value to store and whether the key should remain in the tree.
	UpdateFunc[V any] func(value V, found bool) (V, bool)

	traverseAction int

	iterator[K, V any] struct {
		stack []*node[K, V]
	}
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)
