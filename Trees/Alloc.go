package Trees

import (
	"github.com/sirupsen/logrus"
)

// Log is where the package reports failures that don't surface as
// errors to the caller right away, such as an Arena running out of nodes.
var Log = logrus.New()

// Allocator provides the nodes of a tree and takes them back when they are
// destroyed. Alloc must return a zeroed node or an error wrapping
// ErrAllocation. Release is given nodes that were already zeroed.
type Allocator[T any] interface {
	Alloc() (*Node[T], error)
	Release(n *Node[T])
}

// node allocates and initialises a node of the tree described by m.
func (m *meta[T]) node(v T) (*Node[T], error) {
	var n *Node[T]
	if m.alloc == nil {
		n = new(Node[T])
	} else {
		var err error
		if n, err = m.alloc.Alloc(); err != nil {
			return nil, err
		}
	}
	n.v, n.m, n.tag = v, m, Black
	return n, nil
}

// Arena is an Allocator carving nodes out of slabs of chunk nodes. Released
// nodes are kept in a free list linked through their left child and are
// handed out again before any new slab is made. When limit isn't 0, no more
// than limit nodes are live at any time.
// Arena isn't safe for concurrent use, except for Live and Peak.
type Arena[T any] struct {
	chunk, limit uint
	slab         []Node[T] // unused part of the current slab
	free         *Node[T]
	live, peak   atomicUint
	log          logrus.FieldLogger
}

// The zero Arena makes slabs of a single node, has no limit and logs to
// Log.
//
// NewArena returns an Arena making slabs of chunk nodes, at least 1, with
// at most limit live nodes, 0 meaning no limit.
func NewArena[T any](chunk, limit uint) *Arena[T] {
	return &Arena[T]{chunk: max(chunk, 1), limit: limit, log: Log}
}

// SetLogger replaces Log for this arena.
func (u *Arena[T]) SetLogger(l logrus.FieldLogger) {
	u.log = l
}

// Alloc [Allocator.Alloc]
// Time: O(1) amortized
func (u *Arena[T]) Alloc() (*Node[T], error) {
	if u.limit != 0 && u.live.Load() >= u.limit {
		log := u.log
		if log == nil {
			log = Log
		}
		log.WithFields(logrus.Fields{
			"live":  u.live.Load(),
			"limit": u.limit,
		}).Error("node allocation failed")
		return nil, ErrAllocation
	}
	var n *Node[T]
	if u.free != nil {
		n, u.free = u.free, u.free.l
		n.l = nil
	} else {
		if len(u.slab) == 0 {
			u.slab = make([]Node[T], max(u.chunk, 1))
		}
		n, u.slab = &u.slab[0], u.slab[1:]
	}
	u.peak.Raise(u.live.Add(1))
	return n, nil
}

// Release [Allocator.Release]
// Time: O(1)
func (u *Arena[T]) Release(n *Node[T]) {
	if n == nil {
		return
	}
	n.l = u.free
	u.free = n
	u.live.Sub(1)
}

// Live is the number of nodes handed out and not released yet.
func (u *Arena[T]) Live() uint {
	return u.live.Load()
}

// Peak is the highest Live has ever been.
func (u *Arena[T]) Peak() uint {
	return u.peak.Load()
}
