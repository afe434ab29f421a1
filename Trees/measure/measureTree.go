package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/adrien-cuisse/go-binary-tree/Trees"
	"github.com/sirupsen/logrus"
)

var (
	bAddN  = flag.Int("n", 100000, "values added per run")
	bSteps = flag.Int("steps", 20, "number of runs, run i pops i/steps of the values")
	bChunk = flag.Uint("chunk", 4096, "arena slab size")
	bRange = flag.Int("range", 0, "values are drawn from [0,range), 0 means 4*n")
	bQuiet = flag.Bool("q", false, "only print the summary")
	bPopN  int
)

var _R = rand.New(rand.NewSource(0))

var (
	arena     *Trees.Arena[int]
	lastRoot  *Trees.Node[int]
	valueSpan int
)

func create(b *testing.B, all []int) (*Trees.Node[int], []int) {
	b.Helper()
	first := _R.Intn(valueSpan)
	root, err := Trees.NewWith(first, Trees.Compare[int], Trees.WithAllocator[int](arena))
	if err != nil {
		b.Fatal(err)
	}
	all = append(all, first)
	for range *bAddN - 1 {
		v := _R.Intn(valueSpan)
		if _, err := root.Add(v); err != nil {
			b.Fatal(err)
		}
		all = append(all, v)
	}
	return root, all
}

var __r1 bool

func BenchmarkPopQry(b *testing.B) {
	all := make([]int, 0, *bAddN)
	for range b.N {
		b.StopTimer()
		if lastRoot != nil {
			lastRoot.Destroy()
		}
		var root *Trees.Node[int]
		root, all = create(b, all[:0])
		b.StartTimer()
		for _, v := range all[:bPopN] {
			var x *Trees.Node[int]
			x, root = root.Extract(v)
			x.Destroy()
		}
		for _, v := range all[bPopN:] {
			__r1 = root.Contains(v)
		}
		lastRoot = root
	}
}

func main() {
	flag.Parse()
	testing.Init()
	valueSpan = *bRange
	if valueSpan <= 0 {
		valueSpan = 4 * *bAddN
	}
	arena = Trees.NewArena[int](*bChunk, 0)
	if *bQuiet {
		Trees.Log.SetLevel(logrus.WarnLevel)
	}

	var cs []float64
	for i := 1; i < *bSteps; i++ {
		bPopN = *bAddN / *bSteps * i
		br := testing.Benchmark(BenchmarkPopQry)
		cs = append(cs, float64(br.NsPerOp())/1e6)
		Trees.Log.WithFields(logrus.Fields{
			"step":   i,
			"popped": bPopN,
			"ms/op":  cs[len(cs)-1],
			"height": lastRoot.Height(),
			"size":   lastRoot.Size(),
			"live":   arena.Live(),
			"peak":   arena.Peak(),
		}).Info("run done")
	}
	if len(cs) == 0 {
		return
	}
	var sum float64
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	fmt.Printf("average: %fms/op\n", avg)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("stddev: %fms/op\n", math.Sqrt(sum/float64(len(cs))))
}
