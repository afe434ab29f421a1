package Trees

// Color is the two valued tag every node carries. It is set once when the
// node is created and no operation of this package ever changes it.
type Color bool

const (
	Black Color = false
	Red   Color = true
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// meta is what all the nodes of one tree share. It is fixed when the root
// is constructed and handed unchanged to every node created by Add.
type meta[T any] struct {
	cmp   Comparator[T]
	alloc Allocator[T]
}

// Node is a node of a binary search tree, and the tree rooted at it.
// l and r own their subtrees, p is a back-link used for navigation only.
// For every node n: n.l.p==n and n.r.p==n whenever the child exists.
type Node[T any] struct {
	v       T
	m       *meta[T]
	p, l, r *Node[T]
	tag     Color
}

// Option configures the construction of a tree.
type Option[T any] func(*meta[T])

// WithAllocator makes the tree take its nodes from a. The default takes
// them from the Go heap.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(m *meta[T]) {
		m.alloc = a
	}
}

// slot returns the link that points at n: the parent's left or right
// child, or nil when n is a root. The link is identified by identity,
// so no comparison is needed.
func (n *Node[T]) slot() **Node[T] {
	if n.p == nil {
		return nil
	} else if n.p.l == n {
		return &n.p.l
	}
	return &n.p.r
}

// replaceWith puts c, which may be nil, in the place n has in its parent.
// n keeps its own links.
func (n *Node[T]) replaceWith(c *Node[T]) {
	if s := n.slot(); s != nil {
		*s = c
	}
	if c != nil {
		c.p = n.p
	}
}

// setLeft links c as the left child of n.
func (n *Node[T]) setLeft(c *Node[T]) {
	n.l = c
	if c != nil {
		c.p = n
	}
}

// setRight links c as the right child of n.
func (n *Node[T]) setRight(c *Node[T]) {
	n.r = c
	if c != nil {
		c.p = n
	}
}

// greater reports whether v goes to the left of n. Panics with
// InvalidComparatorError when the tree has no comparator.
func (n *Node[T]) greater(v T, op string) bool {
	return n.compare(v, op) > 0
}

func (n *Node[T]) compare(v T, op string) int {
	if n.m == nil || n.m.cmp == nil {
		panic(InvalidComparatorError{op})
	}
	return n.m.cmp(n.v, v)
}
