package bst

func (t *Tree[K, V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

// Comparisons returns the number of key comparisons performed by Find,
// Insert, Update and RangeApply since the last ResetMetrics.
func (t *Tree[K, V]) Comparisons() int {
	return t.comparisons
}

func (t *Tree[K, V]) ResetMetrics() {
	t.comparisons = 0
}

// Insert adds key with value. It returns false and leaves the tree untouched
// if key is already present; the tree never overwrites on Insert.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	slot := t.locate(key, true)
	if *slot != nil {
		return false
	}
	replaceRef(slot, newNode(key, value))
	t.size++
	return true
}

// Find returns a copy of the value stored under key.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	if n := *t.locate(key, true); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Update looks key up once and hands its current value to fn. The value fn
// returns is stored when keep is true, inserting key if it was absent; when
// keep is false an existing key is erased. It reports whether key is present
// after the call.
func (t *Tree[K, V]) Update(key K, fn UpdateFunc[V]) bool {
	slot := t.locate(key, true)
	found := *slot != nil

	var cur V
	if found {
		cur = (*slot).value
	}
	value, keep := fn(cur, found)

	switch {
	case keep && found:
		(*slot).value = value
	case keep:
		replaceRef(slot, newNode(key, value))
		t.size++
	case found:
		t.eraseAt(slot)
	}
	return keep
}

// Erase removes key. It returns false if key is absent. Erase does not touch
// the comparison counter.
func (t *Tree[K, V]) Erase(key K) bool {
	slot := t.locate(key, false)
	if *slot == nil {
		return false
	}
	t.eraseAt(slot)
	return true
}

// locate returns the slot holding key, or the empty slot where key belongs.
func (t *Tree[K, V]) locate(key K, counted bool) **node[K, V] {
	curr := &t.root
	for *curr != nil {
		if counted {
			t.comparisons++
		}
		c := t.cmp(key, (*curr).key)
		switch {
		case c < 0:
			curr = &(*curr).left
		case c > 0:
			curr = &(*curr).right
		default:
			return curr
		}
	}
	return curr
}

func (t *Tree[K, V]) eraseAt(slot **node[K, V]) {
	n := *slot
	switch {
	case n.left == nil:
		replaceRef(slot, n.right)
	case n.right == nil:
		replaceRef(slot, n.left)
	default:
		// two children: pull the in-order successor up, then unlink it.
		// The successor has no left child so it splices like the cases above.
		succ := minSlot(&n.right)
		n.key, n.value = (*succ).key, (*succ).value
		replaceRef(succ, (*succ).right)
	}
	t.size--
}

// RangeApply visits every entry with lo <= key <= hi in ascending order.
// Subtrees that lie entirely outside the bounds are skipped. Each visited
// node counts as one comparison.
func (t *Tree[K, V]) RangeApply(lo, hi K, visit Visitor[K, V]) {
	t.rangeApply(t.root, lo, hi, visit)
}

func (t *Tree[K, V]) rangeApply(curr *node[K, V], lo, hi K, visit Visitor[K, V]) traverseAction {
	if curr == nil {
		return traverseContinue
	}

	t.comparisons++
	aboveLo := t.cmp(curr.key, lo)
	belowHi := t.cmp(curr.key, hi)

	if aboveLo > 0 {
		if t.rangeApply(curr.left, lo, hi, visit) == traverseStop {
			return traverseStop
		}
	}
	if aboveLo >= 0 && belowHi <= 0 {
		if !visit(curr.key, curr.value) {
			return traverseStop
		}
	}
	if belowHi < 0 {
		return t.rangeApply(curr.right, lo, hi, visit)
	}
	return traverseContinue
}

// Height is the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int {
	return t.root.height()
}

func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	n := *minSlot(&t.root)
	return n.key, n.value, true
}

func (t *Tree[K, V]) Max() (K, V, bool) {
	curr := t.root
	if curr == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	for curr.right != nil {
		curr = curr.right
	}
	return curr.key, curr.value, true
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Size())
	it := t.Iterator()
	for it.HasNext() {
		n, _ := it.Next()
		keys = append(keys, n.Key())
	}
	return keys
}

// Iterator walks the tree in ascending key order. It must not be used after
// the tree is modified.
func (t *Tree[K, V]) Iterator() Iterator[K, V] {
	it := &iterator[K, V]{}
	it.pushLeft(t.root)
	return it
}

func (it *iterator[K, V]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *iterator[K, V]) Next() (Node[K, V], error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	top := len(it.stack) - 1
	cur := it.stack[top]
	it.stack = it.stack[:top]
	it.pushLeft(cur.right)
	return cur, nil
}

func (it *iterator[K, V]) pushLeft(n *node[K, V]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}
