package Trees

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Locked is a tree safe for concurrent use. Reads share a reader biased
// lock, mutations hold it exclusively. Locked owns its root: the nodes
// must not be reached by other means while it is in use.
type Locked[T any] struct {
	mu   *xsync.RBMutex
	root *Node[T]
	cmp  Comparator[T]
	opts []Option[T]
}

// NewLocked returns an empty Locked tree. cmp and opts are used to create
// the root whenever the tree is empty.
func NewLocked[T any](cmp Comparator[T], opts ...Option[T]) *Locked[T] {
	return &Locked[T]{mu: xsync.NewRBMutex(), cmp: cmp, opts: opts}
}

// Add v to the tree.
func (u *Locked[T]) Add(v T) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.root == nil {
		n, err := NewWith(v, u.cmp, u.opts...)
		if err != nil {
			return err
		}
		u.root = n
		return nil
	}
	_, err := u.root.Add(v)
	return err
}

// Pop one node holding v, returning whether there was one. The popped node
// is destroyed.
func (u *Locked[T]) Pop(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	x, root := u.root.Extract(v)
	if x == nil {
		return false
	}
	u.root = root
	x.Destroy()
	return true
}

func (u *Locked[T]) Contains(v T) bool {
	t := u.mu.RLock()
	defer u.mu.RUnlock(t)
	return u.root.Contains(v)
}

func (u *Locked[T]) Height() uint {
	t := u.mu.RLock()
	defer u.mu.RUnlock(t)
	return u.root.Height()
}

func (u *Locked[T]) Size() uint {
	t := u.mu.RLock()
	defer u.mu.RUnlock(t)
	return u.root.Size()
}

// Map holds the read lock during the whole traversal, visit must not call
// the mutating methods of u.
func (u *Locked[T]) Map(visit func(T), order Order) {
	t := u.mu.RLock()
	defer u.mu.RUnlock(t)
	u.root.Map(visit, order)
}

func (u *Locked[T]) Values(order Order) []T {
	t := u.mu.RLock()
	defer u.mu.RUnlock(t)
	return u.root.Values(order)
}

// Clear destroys every node.
func (u *Locked[T]) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.root.Destroy()
	u.root = nil
}
