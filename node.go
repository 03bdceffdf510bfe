package indexedsumtree

// Numeric is the set of built-in types the tree can store and sum. No
// third-party numeric constraint package (e.g. an x/exp/constraints
// equivalent) turned up anywhere in the retrieved corpus, so the
// constraint is declared locally.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type color bool

const (
	red   color = true
	black color = false
)

func (c color) String() string {
	if c == red {
		return "RED"
	}
	return "BLACK"
}

// node is one element of the tree. size and sum always describe this
// node's subtree: the node itself and its real (non-sentinel)
// descendants; lazy is folded into sum but not
// yet pushed into data or into the children, per propagate's contract.
type node[T Numeric] struct {
	data T
	sum  T
	lazy T

	size  int
	color color

	left, right, parent *node[T]
}

// newSentinel returns a self-referencing nil node: size 0, sum 0, lazy 0,
// color BLACK, and left/right/parent pointing to itself so that no code
// path ever needs to special-case a literal nil pointer.
func newSentinel[T Numeric]() *node[T] {
	n := &node[T]{color: black}
	n.left, n.right, n.parent = n, n, n
	return n
}
