package Trees

// Tagged is a tree whose nodes expose their Color. Every operation is the
// Node one: nothing ever recolors or rotates, the color a node is created
// with, Black, is the color it keeps. The zero Tagged is the absent node.
type Tagged[T any] struct {
	n *Node[T]
}

// NewTagged is the Tagged equivalence of New.
func NewTagged[T any](v T, cmp Comparator[T]) Tagged[T] {
	return Tagged[T]{New(v, cmp)}
}

// NewTaggedWith is the Tagged equivalence of NewWith.
func NewTaggedWith[T any](v T, cmp Comparator[T], opts ...Option[T]) (Tagged[T], error) {
	n, err := NewWith(v, cmp, opts...)
	return Tagged[T]{n}, err
}

// Tag of the node. The absent node reads as Black.
func (u Tagged[T]) Tag() Color {
	if u.n == nil {
		return Black
	}
	return u.n.tag
}

// Node underlying u.
func (u Tagged[T]) Node() *Node[T] {
	return u.n
}

// Nil reports whether u is the absent node.
func (u Tagged[T]) Nil() bool {
	return u.n == nil
}

func (u Tagged[T]) Destroy() {
	u.n.Destroy()
}

func (u Tagged[T]) DestroyTree() {
	u.n.DestroyTree()
}

func (u Tagged[T]) Value() (T, bool) {
	return u.n.Value()
}

func (u Tagged[T]) Find(v T) Tagged[T] {
	return Tagged[T]{u.n.Find(v)}
}

func (u Tagged[T]) Contains(v T) bool {
	return u.n.Contains(v)
}

func (u Tagged[T]) Add(v T) (Tagged[T], error) {
	n, err := u.n.Add(v)
	return Tagged[T]{n}, err
}

func (u Tagged[T]) Height() uint {
	return u.n.Height()
}

func (u Tagged[T]) Detach() Tagged[T] {
	return Tagged[T]{u.n.Detach()}
}

func (u Tagged[T]) Root() Tagged[T] {
	return Tagged[T]{u.n.Root()}
}

func (u Tagged[T]) Pop(v T) Tagged[T] {
	return Tagged[T]{u.n.Pop(v)}
}

func (u Tagged[T]) Map(visit func(T), order Order) {
	u.n.Map(visit, order)
}

func (u Tagged[T]) Corrupt() bool {
	return u.n.Corrupt()
}
