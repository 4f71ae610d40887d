package closestpair_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/divconq/closestpair"
)

// BenchmarkClosestPair_Uniform measures the divide-and-conquer search on
// uniformly random points; inputs are built outside the timer.
func BenchmarkClosestPair_Uniform(b *testing.B) {
	for _, n := range []int{1_000, 10_000, 100_000} {
		pts := randomPoints(rand.New(rand.NewSource(1)), n, 1000)
		b.Run(sizeName(n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := closestpair.ClosestPair(pts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkClosestPair_SharedX is the adversarial vertical-line input.
func BenchmarkClosestPair_SharedX(b *testing.B) {
	const n = 100_000
	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{X: 0, Y: float64(i)}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := closestpair.ClosestPair(pts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBruteForce_1000 is the quadratic baseline for comparison.
func BenchmarkBruteForce_1000(b *testing.B) {
	pts := randomPoints(rand.New(rand.NewSource(1)), 1000, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = closestpair.BruteForce(pts)
	}
}

func sizeName(n int) string {
	return fmt.Sprintf("n=%d", n)
}
