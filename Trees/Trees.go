package Trees

import (
	"golang.org/x/exp/constraints"
)

// Comparator is a three-way total order over values: negative when a sorts
// before b, zero when they are equal and positive when a sorts after b.
// Every node of one tree shares the same Comparator.
type Comparator[T any] func(a, b T) int

// Compare is the Comparator of ordered types.
func Compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Reverse returns the Comparator ordering values opposite to c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Order is a way to visit the values of a tree.
type Order byte

const (
	PreOrder   Order = iota // self, left, right
	InOrder                 // left, self, right
	PostOrder               // left, right, self
	LevelOrder              // breadth first, left to right
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "PreOrder"
	case InOrder:
		return "InOrder"
	case PostOrder:
		return "PostOrder"
	case LevelOrder:
		return "LevelOrder"
	}
	return "Order(?)"
}

// Tree is the set of operations shared by Node and Tagged. N is the handle
// type the operations return, the zero N being the absent node.
// Operations on an absent node never panic: they return the empty result
// of their kind (nil, false, 0). Operations that need to compare values
// panic with an InvalidComparatorError when the tree has no Comparator.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree[T any, N any] interface {
	//Value stored in the node. The bool is false for an absent node.
	Value() (T, bool)
	//Find the first node holding a value equal to v in the subtree.
	Find(v T) N
	//Contains v in the subtree.
	Contains(v T) bool
	//Add v under the node, returning the newly created node. Equal values
	//are routed right. The tree is never rebalanced.
	Add(v T) (N, error)
	//Height of the subtree, 0 for an absent node.
	Height() uint
	//Detach the subtree from its parent, returning the former parent.
	//Detaching a root does nothing.
	Detach() N
	//Root of the tree the node belongs to.
	Root() N
	//Pop the node holding v out of the subtree, the rest of the tree
	//stays ordered. The popped node is returned as a single node tree.
	Pop(v T) N
	//Map calls visit on every value of the subtree in the given order.
	//The traversal can't be stopped, see Walk and Iterator for that.
	Map(visit func(T), order Order)
	//Destroy the subtree rooted at the node, never its ancestors.
	Destroy()
	//Corrupt returns whether the subtree violates the order or back-link
	//invariants.
	Corrupt() bool
}

var (
	_ Tree[int, *Node[int]]  = (*Node[int])(nil)
	_ Tree[int, Tagged[int]] = Tagged[int]{}
)
