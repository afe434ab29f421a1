package Trees

import "sync/atomic"

// atomicUint backed by uintptr. The arena counters are written by the
// goroutine using the tree and may be sampled from any other.
type atomicUint struct {
	v uintptr
}

func (u *atomicUint) Load() uint {
	return uint(atomic.LoadUintptr(&u.v))
}

func (u *atomicUint) Add(d uint) uint {
	return uint(atomic.AddUintptr(&u.v, uintptr(d)))
}

// Sub d, which must not exceed the current value.
func (u *atomicUint) Sub(d uint) uint {
	return uint(atomic.AddUintptr(&u.v, ^uintptr(d-1)))
}

// Raise the value to v if it is lower.
func (u *atomicUint) Raise(v uint) {
	for {
		old := atomic.LoadUintptr(&u.v)
		if uintptr(v) <= old || atomic.CompareAndSwapUintptr(&u.v, old, uintptr(v)) {
			return
		}
	}
}
