package indexedsumtree

// pull recomputes n's size and sum from its (already propagated) data
// field and its children's size/sum fields. Children's sum values are
// always accurate regardless of their own pending lazy (lazy only defers
// pushing an increment into data and into grandchildren, never defers
// updating sum), so pull only requires n itself to have been propagated
// first.
func (t *Tree[T]) pull(n *node[T]) {
	if n == t.nilNode {
		return
	}
	n.size = n.left.size + n.right.size + 1
	n.sum = n.left.sum + n.right.sum + n.data
}

// recomputeUpward re-pulls every node from n up to the root, inclusive.
// Used after a structural change (deletion) whose net effect on
// ancestors' size/sum can't be expressed as a simple local edit.
func (t *Tree[T]) recomputeUpward(n *node[T]) {
	for cur := n; cur != t.nilNode; cur = cur.parent {
		t.propagate(cur)
		t.pull(cur)
	}
}

// transplant replaces the subtree rooted at u with the subtree rooted at
// v, wiring v into u's former parent. It does not touch u's own
// pointers, so callers needing u.left/u.right afterward must read them
// first.
func (t *Tree[T]) transplant(u, v *node[T]) {
	if u.parent == t.nilNode {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// minimum returns the leftmost node of n's subtree, propagating each
// node it descends into. It does not propagate n itself: every call
// site here already propagated n before calling minimum.
func (t *Tree[T]) minimum(n *node[T]) *node[T] {
	for n.left != t.nilNode {
		n = n.left
		t.propagate(n)
	}
	return n
}

// maximum is the mirror of minimum.
func (t *Tree[T]) maximum(n *node[T]) *node[T] {
	for n.right != t.nilNode {
		n = n.right
		t.propagate(n)
	}
	return n
}

// successor returns the node immediately after n in positional order, or
// t.nilNode if n is the last element.
func (t *Tree[T]) successor(n *node[T]) *node[T] {
	if n.right != t.nilNode {
		t.propagate(n.right)
		return t.minimum(n.right)
	}
	p := n.parent
	for p != t.nilNode && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// predecessor is the mirror of successor.
func (t *Tree[T]) predecessor(n *node[T]) *node[T] {
	if n.left != t.nilNode {
		t.propagate(n.left)
		return t.maximum(n.left)
	}
	p := n.parent
	for p != t.nilNode && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

// indexOf returns n's 1-based position, computed from subtree sizes
// along the path to the root. Sizes are always exact regardless of
// pending lazy, so no propagation is needed here.
func (t *Tree[T]) indexOf(n *node[T]) int {
	idx := n.left.size + 1
	for cur := n; cur.parent != t.nilNode; cur = cur.parent {
		if cur == cur.parent.right {
			idx += cur.parent.left.size + 1
		}
	}
	return idx
}

// deleteNode removes z from the tree, following the standard red-black
// delete: if z has two real children, its positional successor takes
// z's place and is itself the node structurally unlinked. size/sum
// bookkeeping is restored afterward by a single upward pull pass from
// the lowest structurally disturbed node, rather than during the
// splice itself.
func (t *Tree[T]) deleteNode(z *node[T]) {
	y := z
	yOriginalColor := y.color
	var x, xParent *node[T]

	switch {
	case z.left == t.nilNode:
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)

	case z.right == t.nilNode:
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)

	default:
		t.propagate(z.right)
		y = t.minimum(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
			x.parent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOriginalColor == black {
		t.fixDoubleBlack(x, xParent)
	}

	t.recomputeUpward(xParent)
}

// fixDoubleBlack restores red-black balance after removing a black
// node, following the CLRS RB-DELETE-FIXUP case analysis. x is the node
// (possibly the sentinel) that inherited the removed black unit; parent
// is passed explicitly rather than read from x.parent, since x may be
// the shared sentinel whose parent field is not meaningful here.
func (t *Tree[T]) fixDoubleBlack(x, parent *node[T]) {
	for x != t.root && x.color == black {
		if x == parent.left {
			w := parent.right
			if w.color == red {
				w.color = black
				parent.color = red
				t.rotateLeft(parent)
				w = parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = parent
				parent = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rotateRight(w)
					w = parent.right
				}
				w.color = parent.color
				parent.color = black
				w.right.color = black
				t.rotateLeft(parent)
				x = t.root
				parent = t.nilNode
			}
		} else {
			w := parent.left
			if w.color == red {
				w.color = black
				parent.color = red
				t.rotateRight(parent)
				w = parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = parent
				parent = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.rotateLeft(w)
					w = parent.left
				}
				w.color = parent.color
				parent.color = black
				w.left.color = black
				t.rotateRight(parent)
				x = t.root
				parent = t.nilNode
			}
		}
	}
	x.color = black
}
