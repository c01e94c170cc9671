package conditional_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/conditional_reduce/conditional"
)

func naiveSwitch(v string) int {
	switch v {
	case "alpha":
		return 1
	case "beta":
		return 2
	case "gamma":
		return 3
	default:
		return len(v)
	}
}

func BenchmarkNaiveSwitch(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveSwitch("gamma")
	}
}

func BenchmarkReduce(b *testing.B) {
	m := conditional.Conditionals[int]{
		"alpha": func() int { return 1 },
		"beta":  func() int { return 2 },
		"gamma": func() int { return 3 },
	}
	d := func(v string) int { return len(v) }

	for i := 0; i < b.N; i++ {
		_, _ = conditional.Reduce("gamma", m, d)
	}
}

func BenchmarkCurriedTable(b *testing.B) {
	sizes := []int{1, 8, 32}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("Shards_%d", size), func(b *testing.B) {
			table := conditional.NewTable[int](size)
			for i := 0; i < 64; i++ {
				v := i
				table.Set(fmt.Sprintf("k%d", i), func() int { return v })
			}
			g := conditional.CurryFrom[int](table)

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					_, _ = g.Reduce("k42")
				}
			})
		})
	}
}
