package indexedsumtree

import (
	"fmt"
	"strings"
)

// bfsNode is one link of bfsQueue's singly-linked FIFO.
type bfsNode[V any] struct {
	val  V
	next *bfsNode[V]
}

// bfsQueue is a minimal generic FIFO used to walk the tree level by
// level for Dump, mirroring the teacher's own list-backed breadth-first
// debug dumper.
type bfsQueue[V any] struct {
	head, tail *bfsNode[V]
}

func (q *bfsQueue[V]) push(v V) {
	n := &bfsNode[V]{val: v}
	if q.tail == nil {
		q.head, q.tail = n, n
		return
	}
	q.tail.next = n
	q.tail = n
}

func (q *bfsQueue[V]) pop() (V, bool) {
	var zero V
	if q.head == nil {
		return zero, false
	}
	v := q.head.val
	q.head = q.head.next
	if q.head == nil {
		q.tail = nil
	}
	return v, true
}

// Dump renders the tree breadth-first as "(pos:data:color)" tokens,
// sentinel children omitted, for use in failing test output.
func (t *Tree[T]) Dump() string {
	if t.root == t.nilNode {
		return "()"
	}
	var b strings.Builder
	q := &bfsQueue[*node[T]]{}
	q.push(t.root)
	first := true
	for {
		n, ok := q.pop()
		if !ok {
			break
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "(%d:%v:%s)", t.indexOf(n), n.data, n.color)
		if n.left != t.nilNode {
			q.push(n.left)
		}
		if n.right != t.nilNode {
			q.push(n.right)
		}
	}
	return b.String()
}

// auditInvariants verifies the red-black and augmentation invariants
// hold for the whole tree: the root is black, no red node has a red
// child, every root-to-leaf path has the same black-height, and every
// node's size/sum agree with a fresh scan of its own subtree.
func (t *Tree[T]) auditInvariants() error {
	if t.root == t.nilNode {
		return nil
	}
	if t.root.color != black {
		return fmt.Errorf("indexedsumtree: root is not black")
	}
	if t.root.parent != t.nilNode {
		return fmt.Errorf("indexedsumtree: root has a non-sentinel parent")
	}
	_, _, err := t.auditNode(t.root)
	return err
}

// auditNode recursively checks node n, returning its black-height and
// its (now up-to-date, propagated) data sum so the caller can compare
// against n.sum.
func (t *Tree[T]) auditNode(n *node[T]) (blackHeight int, sum T, err error) {
	if n == t.nilNode {
		return 1, 0, nil
	}
	t.propagate(n)
	if n.color == red {
		if n.left.color != black || n.right.color != black {
			return 0, 0, fmt.Errorf("indexedsumtree: red node at position %d has a red child", t.indexOf(n))
		}
	}
	if n.left != t.nilNode && n.left.parent != n {
		return 0, 0, fmt.Errorf("indexedsumtree: broken parent link on left child of position %d", t.indexOf(n))
	}
	if n.right != t.nilNode && n.right.parent != n {
		return 0, 0, fmt.Errorf("indexedsumtree: broken parent link on right child of position %d", t.indexOf(n))
	}

	leftHeight, leftSum, err := t.auditNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rightHeight, rightSum, err := t.auditNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if leftHeight != rightHeight {
		return 0, 0, fmt.Errorf("indexedsumtree: black-height mismatch at position %d (%d vs %d)", t.indexOf(n), leftHeight, rightHeight)
	}

	wantSize := n.left.size + n.right.size + 1
	if n.size != wantSize {
		return 0, 0, fmt.Errorf("indexedsumtree: size mismatch at position %d: have %d want %d", t.indexOf(n), n.size, wantSize)
	}

	gotSum := leftSum + rightSum + n.data
	wantSum := n.sum
	if gotSum != wantSum {
		return 0, 0, fmt.Errorf("indexedsumtree: sum mismatch at position %d: scan gives %v, node.sum is %v", t.indexOf(n), gotSum, wantSum)
	}

	height := leftHeight
	if n.color == black {
		height++
	}
	return height, n.sum, nil
}
