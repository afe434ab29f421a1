package Trees

import "strconv"

func badOrder(o Order) string {
	return "Trees: unknown Order " + strconv.Itoa(int(o))
}

// Map [Tree.Map]. Recursive except for LevelOrder.
// Time: O(n); Space: O(D)
func (n *Node[T]) Map(visit func(T), order Order) {
	n.Walk(func(v T) bool {
		visit(v)
		return true
	}, order)
}

// Walk calls f on the values of the subtree in the given order until f
// returns false. It returns false if the walk was stopped by f.
// Recursive except for LevelOrder.
// Time: O(n); Space: O(D)
func (n *Node[T]) Walk(f func(T) bool, order Order) bool {
	switch order {
	case PreOrder, InOrder, PostOrder:
		return n.walk(f, order)
	case LevelOrder:
		q := makeNodeQueue[T](16)
		for q.push(n); !q.empty(); {
			cur := q.pop()
			if !f(cur.v) {
				return false
			}
			q.push(cur.l)
			q.push(cur.r)
		}
		return true
	}
	panic(badOrder(order))
}

func (n *Node[T]) walk(f func(T) bool, o Order) bool {
	if n == nil {
		return true
	}
	switch o {
	case PreOrder:
		return f(n.v) && n.l.walk(f, o) && n.r.walk(f, o)
	case InOrder:
		return n.l.walk(f, o) && f(n.v) && n.r.walk(f, o)
	default:
		return n.l.walk(f, o) && n.r.walk(f, o) && f(n.v)
	}
}

// Values of the subtree in the given order.
func (n *Node[T]) Values(order Order) []T {
	var s []T
	n.Map(func(v T) {
		s = append(s, v)
	}, order)
	return s
}

// Iterator returns a closure f stepping through the
// values of the subtree in the given order. Calling f is like calling
// "Next()" of iterators: val, valid=f(). val is meaningful only if valid
// is true. Once valid is false, f is exhausted and stays so. The consumer
// may stop calling f at any time, calling Iterator again starts over.
// The tree must not be modified while f is in use.
// Time: f(): amortized O(1) at each call. Space: O(D), O(width) for LevelOrder.
func (n *Node[T]) Iterator(order Order) func() (T, bool) {
	switch order {
	case PreOrder:
		var st []*Node[T]
		if n != nil {
			st = append(st, n)
		}
		return func() (r T, has bool) {
			if len(st) == 0 {
				return
			}
			cur := st[len(st)-1]
			st = st[:len(st)-1]
			if cur.r != nil {
				st = append(st, cur.r)
			}
			if cur.l != nil {
				st = append(st, cur.l)
			}
			return cur.v, true
		}
	case InOrder:
		var st []*Node[T]
		for cur := n; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		return func() (r T, has bool) {
			if len(st) == 0 {
				return
			}
			cur := st[len(st)-1]
			st = st[:len(st)-1]
			for c := cur.r; c != nil; c = c.l {
				st = append(st, c)
			}
			return cur.v, true
		}
	case PostOrder:
		var st []*Node[T]
		var last *Node[T] // last node given out
		cur := n
		return func() (r T, has bool) {
			for cur != nil || len(st) > 0 {
				if cur != nil {
					st = append(st, cur)
					cur = cur.l
					continue
				}
				top := st[len(st)-1]
				if top.r != nil && top.r != last {
					cur = top.r
					continue
				}
				st = st[:len(st)-1]
				last = top
				return top.v, true
			}
			return
		}
	case LevelOrder:
		q := makeNodeQueue[T](16)
		q.push(n)
		return func() (r T, has bool) {
			cur := q.pop()
			if cur == nil {
				return
			}
			q.push(cur.l)
			q.push(cur.r)
			return cur.v, true
		}
	}
	panic(badOrder(order))
}
