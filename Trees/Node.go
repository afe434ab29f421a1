package Trees

import (
	"fmt"
)

// New returns a single node tree holding v, ordered by cmp. The node is
// taken from the Go heap so construction can't fail. A nil cmp is
// accepted, but any later operation that has to compare values panics
// with InvalidComparatorError.
func New[T any](v T, cmp Comparator[T]) *Node[T] {
	return &Node[T]{v: v, m: &meta[T]{cmp: cmp}}
}

// NewWith is New with options. The returned error wraps ErrAllocation when
// the configured Allocator couldn't provide the root.
func NewWith[T any](v T, cmp Comparator[T], opts ...Option[T]) (*Node[T], error) {
	m := &meta[T]{cmp: cmp}
	for _, o := range opts {
		o(m)
	}
	n, err := m.node(v)
	if err != nil {
		return nil, fmt.Errorf("constructing root: %w", err)
	}
	return n, nil
}

// Destroy [Tree.Destroy]. Recursive.
// The node is first detached from its parent, then every node of its
// subtree is cleared and handed back to the Allocator. The values
// themselves are left alone. None of the destroyed nodes may be used
// afterwards.
// Time: O(n); Space: O(D)
func (n *Node[T]) Destroy() {
	if n == nil {
		return
	}
	n.Detach()
	n.destroy()
}

func (n *Node[T]) destroy() {
	if n == nil {
		return
	}
	n.l.destroy()
	n.r.destroy()
	m := n.m
	*n = Node[T]{}
	if m != nil && m.alloc != nil {
		m.alloc.Release(n)
	}
}

// DestroyTree destroys the whole tree n belongs to: its ancestors, their
// other descendants and n's own subtree.
func (n *Node[T]) DestroyTree() {
	n.Root().Destroy()
}

// Value [Tree.Value]
func (n *Node[T]) Value() (T, bool) {
	if n == nil {
		return *new(T), false
	}
	return n.v, true
}

// Parent of n, nil for a root.
func (n *Node[T]) Parent() *Node[T] {
	if n == nil {
		return nil
	}
	return n.p
}

// Left child of n.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.l
}

// Right child of n.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.r
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (n *Node[T]) Find(v T) *Node[T] {
	for cur := n; cur != nil; {
		if c := cur.compare(v, "Find"); c == 0 {
			return cur
		} else if c > 0 {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (n *Node[T]) Contains(v T) bool {
	return n.Find(v) != nil
}

// Add [Tree.Add]
// The new node shares the comparator and allocator of n. An absent n has
// neither, so adding to it panics with InvalidComparatorError.
// Time: O(D); Space: O(1)
func (n *Node[T]) Add(v T) (*Node[T], error) {
	if n == nil {
		panic(InvalidComparatorError{"Add"})
	}
	for cur := n; ; {
		next := &cur.r
		if cur.greater(v, "Add") {
			next = &cur.l
		}
		if *next == nil {
			c, err := cur.m.node(v)
			if err != nil {
				return nil, fmt.Errorf("adding value: %w", err)
			}
			*next, c.p = c, cur
			return c, nil
		}
		cur = *next
	}
}

// Height [Tree.Height]. Recursive.
// Time: O(n); Space: O(D)
func (n *Node[T]) Height() uint {
	if n == nil {
		return 0
	}
	return 1 + max(n.l.Height(), n.r.Height())
}

// Size is the number of nodes in the subtree. Recursive.
// Time: O(n); Space: O(D)
func (n *Node[T]) Size() uint {
	if n == nil {
		return 0
	}
	return 1 + n.l.Size() + n.r.Size()
}

// Detach [Tree.Detach]
// n keeps its subtree and becomes the root of its own tree.
// Time: O(1); Space: O(1)
func (n *Node[T]) Detach() *Node[T] {
	if n == nil || n.p == nil {
		return nil
	}
	p := n.p
	*n.slot() = nil
	n.p = nil
	return p
}

// Root [Tree.Root]
// Time: O(D); Space: O(1)
func (n *Node[T]) Root() *Node[T] {
	if n == nil {
		return nil
	}
	cur := n
	for cur.p != nil {
		cur = cur.p
	}
	return cur
}

// Minimum is the leftmost node of the subtree.
// Time: O(D); Space: O(1)
func (n *Node[T]) Minimum() *Node[T] {
	if n == nil {
		return nil
	}
	cur := n
	for cur.l != nil {
		cur = cur.l
	}
	return cur
}

// Maximum is the rightmost node of the subtree.
// Time: O(D); Space: O(1)
func (n *Node[T]) Maximum() *Node[T] {
	if n == nil {
		return nil
	}
	cur := n
	for cur.r != nil {
		cur = cur.r
	}
	return cur
}

// Predecessor is the node right before n in the in-order traversal of the
// whole tree, nil if n is the first.
// Time: O(D); Space: O(1)
func (n *Node[T]) Predecessor() *Node[T] {
	if n == nil {
		return nil
	} else if n.l != nil {
		return n.l.Maximum()
	}
	cur := n
	for cur.p != nil && cur.p.l == cur {
		cur = cur.p
	}
	return cur.p
}

// Successor is the node right after n in the in-order traversal of the
// whole tree, nil if n is the last.
// Time: O(D); Space: O(1)
func (n *Node[T]) Successor() *Node[T] {
	if n == nil {
		return nil
	} else if n.r != nil {
		return n.r.Minimum()
	}
	cur := n
	for cur.p != nil && cur.p.r == cur {
		cur = cur.p
	}
	return cur.p
}

// Pop [Tree.Pop]
// When n itself is popped its handle no longer reaches the rest of the
// tree, use Extract to get the new root in that case.
// Time: O(D); Space: O(1)
func (n *Node[T]) Pop(v T) *Node[T] {
	x, _ := n.Extract(v)
	return x
}

// Extract is Pop that also returns the root of what remains of the tree,
// nil when the popped node was the only one.
//
// A node without left child is replaced by its right child, a node without
// right child by its left child. A node with both is replaced by its
// in-order predecessor, which is unlinked from its own place first, its
// left child taking that place.
// Time: O(D); Space: O(1)
func (n *Node[T]) Extract(v T) (popped, root *Node[T]) {
	x := n.Find(v)
	if x == nil {
		return nil, n.Root()
	}
	var r *Node[T]
	switch {
	case x.l == nil:
		r = x.r
	case x.r == nil:
		r = x.l
	default:
		r = x.l.Maximum()
		if r != x.l {
			r.p.setRight(r.l)
			r.setLeft(x.l)
		}
		r.setRight(x.r)
	}
	up := x.p
	x.replaceWith(r)
	x.p, x.l, x.r = nil, nil, nil
	if up != nil {
		return x, up.Root()
	}
	return x, r
}

// Corrupt [Tree.Corrupt]. Recursive.
// Besides the links inside the subtree, it checks that n's parent, if
// any, points back at n.
// Time: O(n); Space: O(D)
func (n *Node[T]) Corrupt() bool {
	if n == nil {
		return false
	} else if n.p != nil && n.p.l != n && n.p.r != n {
		return true
	}
	return n.corrupt(nil, nil)
}

// corrupt checks the subtree of n knowing it lies right of lo and left of
// hi, the closest such ancestors. Values equal to hi are allowed: Add puts
// ties right, but Pop can move the last of several equal values above the
// others.
func (n *Node[T]) corrupt(lo, hi *Node[T]) bool {
	if lo != nil && lo.compare(n.v, "Corrupt") > 0 {
		return true
	} else if hi != nil && hi.compare(n.v, "Corrupt") < 0 {
		return true
	}
	if n.l != nil && (n.l.p != n || n.l.m != n.m || n.l.corrupt(lo, n)) {
		return true
	}
	if n.r != nil && (n.r.p != n || n.r.m != n.m || n.r.corrupt(n, hi)) {
		return true
	}
	return false
}
