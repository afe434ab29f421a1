package Trees

// nodeQueue is a circular array queue of nodes used by the level order
// traversals. It grows by half its length when full.
type nodeQueue[T any] struct {
	sz, head, tail uint
	content        []*Node[T]
}

func makeNodeQueue[T any](initCap uint) *nodeQueue[T] {
	return &nodeQueue[T]{content: make([]*Node[T], max(initCap, 2))}
}

func (u *nodeQueue[T]) empty() bool {
	return u.sz == 0
}

func (u *nodeQueue[T]) resize(newLen uint) {
	nc := make([]*Node[T], newLen)
	if u.head < u.tail {
		copy(nc, u.content[u.head:u.tail])
	} else {
		copy(nc, u.content[u.head:])
		copy(nc[uint(len(u.content))-u.head:], u.content[:u.tail])
	}
	u.head, u.tail = 0, u.sz
	u.content = nc
}

func (u *nodeQueue[T]) push(n *Node[T]) {
	if n == nil {
		return
	}
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz + u.sz>>1)
	}
	u.content[u.tail] = n
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

// pop returns nil when the queue is empty.
func (u *nodeQueue[T]) pop() *Node[T] {
	if u.empty() {
		return nil
	}
	n := u.content[u.head]
	u.content[u.head] = nil
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return n
}
