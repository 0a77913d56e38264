package bst

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{
		key:   key,
		value: value,
	}
}

func (n *node[K, V]) Key() K {
	return n.key
}

func (n *node[K, V]) Value() V {
	return n.value
}

func (n *node[K, V]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// minSlot returns the slot of the leftmost node under *slot, which must not
// be empty.
func minSlot[K, V any](slot **node[K, V]) **node[K, V] {
	for (*slot).left != nil {
		slot = &(*slot).left
	}
	return slot
}

func replaceRef[K, V any](oldNode **node[K, V], newNode *node[K, V]) {
	*oldNode = newNode
}
