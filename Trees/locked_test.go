package Trees

import (
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lWorkers = 8
	lPerW    = 250
)

func TestLocked_ConcurrentAdd(t *testing.T) {
	tree := NewLocked[int](Compare[int])
	added := haxmap.New[int, int]()
	var wg sync.WaitGroup
	for w := range lWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range lPerW {
				v := j*lWorkers + w
				if err := tree.Add(v); err != nil {
					t.Errorf("failed to add %v: %v", v, err)
					return
				}
				added.Set(v, w)
				tree.Contains(v)
				tree.Height()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, uint(lWorkers*lPerW), tree.Size())
	require.Equal(t, uintptr(lWorkers*lPerW), added.Len())
	for v := range lWorkers * lPerW {
		w, ok := added.Get(v)
		assert.True(t, ok, "value %v was never recorded", v)
		assert.Equal(t, v%lWorkers, w)
		assert.True(t, tree.Contains(v), "tree does not have key %v", v)
	}
	assert.True(t, slices.IsSorted(tree.Values(InOrder)))
}

func TestLocked_ConcurrentMap(t *testing.T) {
	tree := NewLocked[int](Compare[int])
	for _, v := range rg.Perm(lWorkers * lPerW) {
		require.NoError(t, tree.Add(v))
	}
	// hashmap can store a key twice when inserts race, so every counter
	// exists before the workers start
	visits := hashmap.New[int, *atomic.Int64]()
	for v := range lWorkers * lPerW {
		visits.Set(v, new(atomic.Int64))
	}
	var wg sync.WaitGroup
	for w := range lWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree.Map(func(v int) {
				if c, ok := visits.Get(v); ok {
					c.Add(1)
				} else {
					t.Errorf("visited unknown value %v", v)
				}
			}, Order(w%4))
		}()
	}
	wg.Wait()

	assert.Equal(t, lWorkers*lPerW, visits.Len())
	for v := range lWorkers * lPerW {
		c, ok := visits.Get(v)
		require.True(t, ok, "value %v was never visited", v)
		assert.Equal(t, int64(lWorkers), c.Load(), "visits of %v", v)
	}
}

func TestLocked_ConcurrentPop(t *testing.T) {
	tree := NewLocked[int](Compare[int])
	for _, v := range rg.Perm(lWorkers * lPerW) {
		require.NoError(t, tree.Add(v))
	}
	var wg sync.WaitGroup
	for w := range lWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range lPerW {
				if v := j*lWorkers + w; v%2 == 0 && !tree.Pop(v) {
					t.Errorf("failed to pop key %v", v)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint(lWorkers*lPerW/2), tree.Size())
	for v := range lWorkers * lPerW {
		assert.Equal(t, v%2 == 1, tree.Contains(v), "key %v", v)
	}
	assert.False(t, tree.Pop(0))
}

func TestLocked_Empty(t *testing.T) {
	a := NewArena[string](8, 0)
	tree := NewLocked[string](nil, WithAllocator[string](a))
	assert.Zero(t, tree.Size())
	assert.Zero(t, tree.Height())
	assert.False(t, tree.Contains("x"))
	assert.False(t, tree.Pop("x"))
	tree.Map(func(string) {
		t.Errorf("visited an empty tree")
	}, PreOrder)

	// the root needs no comparison, the second value does
	require.NoError(t, tree.Add("x"))
	assert.Equal(t, uint(1), a.Live())
	assert.Panics(t, func() { tree.Add("y") })

	tree.Clear()
	assert.Zero(t, a.Live())
	assert.Zero(t, tree.Size())
}
