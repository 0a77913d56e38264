// Package bst implements an unbalanced binary search tree used as an ordered
// index. Keys are unique; every search, insert and range walk counts the key
// comparisons it performs so callers can analyse lookup cost.
package bst

import "cmp"

// Node is an entry handed out by an Iterator.
type Node[K, V any] interface {
	Key() K
	Value() V
}

// Iterator walks entries in ascending key order.
type Iterator[K, V any] interface {
	HasNext() bool
	Next() (Node[K, V], error)
}

// New returns an empty tree ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp.Compare[K]}
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number, zero or a positive number when a < b, a == b or a > b.
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{cmp: compare}
}
