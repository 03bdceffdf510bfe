package indexedsumtree

// propagate pushes n's pending lazy increment down into its data, its
// sum (already reflected), and its children's lazy/sum fields, then
// clears it. Every read or descent into n's children must call this on
// n first; callers never propagate into the sentinel.
func (t *Tree[T]) propagate(n *node[T]) {
	if n == t.nilNode || n.lazy == 0 {
		return
	}
	n.data += n.lazy
	if n.left != t.nilNode {
		n.left.lazy += n.lazy
		n.left.sum += T(n.left.size) * n.lazy
	}
	if n.right != t.nilNode {
		n.right.lazy += n.lazy
		n.right.sum += T(n.right.size) * n.lazy
	}
	var zero T
	n.lazy = zero
}

// rotateLeft performs a standard BST left rotation around x, fixing up
// size and sum on x and its new parent y. x and y are propagated first:
// x's own pending lazy must be flushed before x.data is read below, and
// y's pending lazy must be pushed into y.left (about to become x's
// right child) before that subtree's sum is read as part of x, or y's
// increment would silently leak onto nodes it was never meant to cover.
func (t *Tree[T]) rotateLeft(x *node[T]) {
	t.propagate(x)
	y := x.right
	t.propagate(y)
	x.right = y.left
	if y.left != t.nilNode {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilNode {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y

	y.size = x.size
	y.sum = x.sum
	x.size = x.left.size + x.right.size + 1
	x.sum = x.left.sum + x.right.sum + x.data
}

// rotateRight is the mirror of rotateLeft, with the same propagate-
// before-reassign requirement on x and y.
func (t *Tree[T]) rotateRight(x *node[T]) {
	t.propagate(x)
	y := x.left
	t.propagate(y)
	x.left = y.right
	if y.right != t.nilNode {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilNode {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y

	y.size = x.size
	y.sum = x.sum
	x.size = x.left.size + x.right.size + 1
	x.sum = x.left.sum + x.right.sum + x.data
}

// insertFixup restores red-black coloring after inserting red leaf z,
// the standard CLRS case analysis (uncle red recolors and continues up;
// uncle black resolves with at most one double rotation).
func (t *Tree[T]) insertFixup(z *node[T]) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			uncle := z.parent.parent.right
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			uncle := z.parent.parent.left
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

// search returns the node currently occupying 1-based position pos,
// propagating lazy values along the descent so the returned node's data
// is current.
func (t *Tree[T]) search(pos int) (*node[T], error) {
	if pos < 1 || pos > t.root.size {
		return nil, errOutOfRange(pos, t.root.size)
	}
	n := t.root
	p := pos
	for {
		t.propagate(n)
		idx := n.left.size + 1
		if p == idx {
			return n, nil
		}
		if p < idx {
			n = n.left
		} else {
			p -= idx
			n = n.right
		}
	}
}
