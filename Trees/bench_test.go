package Trees

import (
	"testing"
)

var (
	bAddN = 1 << 15
	bQryN = bAddN / 2
)

var sideEff *Node[int]

func create(b *testing.B, opts ...Option[int]) (*Node[int], []int) {
	b.Helper()
	all := rg.Perm(bAddN)
	root, err := NewWith(all[0], Compare[int], opts...)
	if err != nil {
		b.Fatal(err)
	}
	for _, v := range all[1:] {
		if _, err := root.Add(v); err != nil {
			b.Fatal(err)
		}
	}
	return root, all
}

func BenchmarkNode_Add(b *testing.B) {
	for range b.N {
		create(b)
	}
}

func BenchmarkNode_AddArena(b *testing.B) {
	for range b.N {
		create(b, WithAllocator[int](NewArena[int](uint(bAddN), 0)))
	}
}

func BenchmarkNode_Pop(b *testing.B) {
	for range b.N {
		b.StopTimer()
		root, all := create(b)
		rg.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		b.StartTimer()
		for _, v := range all {
			_, root = root.Extract(v)
		}
	}
}

func BenchmarkNode_Find(b *testing.B) {
	root, all := create(b)
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			sideEff = root.Find(v)
		}
	}
}

func BenchmarkNode_Iterator(b *testing.B) {
	root, _ := create(b)
	b.ResetTimer()
	for range b.N {
		next := root.Iterator(InOrder)
		for _, ok := next(); ok; _, ok = next() {
		}
	}
}

func BenchmarkNode_Map(b *testing.B) {
	root, _ := create(b)
	b.ResetTimer()
	for range b.N {
		root.Map(func(int) {}, InOrder)
	}
}
