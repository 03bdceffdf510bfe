package indexedsumtree

// Cursor is an opaque, positionally-stable handle into a Tree, returned
// by At/First/Last and advanced with Next/Prev. It carries the tree's
// generation at the time it was taken; any mutating call on the tree
// (Insert, Erase, Set, Update, Clear) bumps the generation and so
// invalidates every outstanding Cursor, rather than leaving a raw node
// pointer that a later rotation or splice could silently repoint.
type Cursor[T Numeric] struct {
	tree *Tree[T]
	n    *node[T]
	gen  uint64
}

func (t *Tree[T]) newCursor(n *node[T]) Cursor[T] {
	return Cursor[T]{tree: t, n: n, gen: t.generation}
}

func (c Cursor[T]) stale() bool {
	return c.tree == nil || c.gen != c.tree.generation
}

// End reports whether the cursor has run off either end of the
// sequence (the result of advancing Next past the last element or Prev
// past the first).
func (c Cursor[T]) End() bool {
	return c.tree == nil || c.n == c.tree.nilNode
}

// Get returns the element the cursor currently refers to.
func (c Cursor[T]) Get() (T, error) {
	var zero T
	if c.stale() {
		return zero, ErrStaleCursor
	}
	if c.End() {
		return zero, ErrOutOfRange
	}
	return c.n.data, nil
}

// Index returns the cursor's current 1-based position.
func (c Cursor[T]) Index() (int, error) {
	if c.stale() {
		return 0, ErrStaleCursor
	}
	if c.End() {
		return 0, ErrOutOfRange
	}
	return c.tree.indexOf(c.n), nil
}

// Next returns a cursor to the element following this one, or an
// End cursor if this was the last element.
func (c Cursor[T]) Next() (Cursor[T], error) {
	if c.stale() {
		return Cursor[T]{}, ErrStaleCursor
	}
	if c.End() {
		return Cursor[T]{}, ErrOutOfRange
	}
	return c.tree.newCursor(c.tree.successor(c.n)), nil
}

// Prev returns a cursor to the element preceding this one, or an
// End cursor if this was the first element.
func (c Cursor[T]) Prev() (Cursor[T], error) {
	if c.stale() {
		return Cursor[T]{}, ErrStaleCursor
	}
	if c.End() {
		return Cursor[T]{}, ErrOutOfRange
	}
	return c.tree.newCursor(c.tree.predecessor(c.n)), nil
}

// At returns a cursor to the element at 1-based position pos.
func (t *Tree[T]) At(pos int) (Cursor[T], error) {
	n, err := t.search(pos)
	if err != nil {
		return Cursor[T]{}, err
	}
	return t.newCursor(n), nil
}

// First returns a cursor to the first element, or an End cursor if the
// tree is empty.
func (t *Tree[T]) First() Cursor[T] {
	if t.root == t.nilNode {
		return t.newCursor(t.nilNode)
	}
	t.propagate(t.root)
	return t.newCursor(t.minimum(t.root))
}

// Last returns a cursor to the last element, or an End cursor if the
// tree is empty.
func (t *Tree[T]) Last() Cursor[T] {
	if t.root == t.nilNode {
		return t.newCursor(t.nilNode)
	}
	t.propagate(t.root)
	return t.newCursor(t.maximum(t.root))
}
