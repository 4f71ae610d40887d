package closestpair

import "math"

// BruteForce compares every pair (i < j) of points in input order and keeps
// the first strictly smaller distance. It is the O(n²) reference used to
// check ClosestPair, and a sensible choice for a handful of points.
//
// Fewer than two points yield a nil Pair and +Inf. Non-finite coordinates
// are not rejected; NaN distances simply never win a comparison.
//
// Complexity: O(n²) time, O(1) extra space.
func BruteForce(points []Point) Result {
	res := Result{Distance: math.Inf(1)}
	n := len(points)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := points[i].Distance(points[j])
			res.Stats.DistanceEvals++
			if d < res.Distance {
				res.Distance = d
				res.Pair = &Pair{A: points[i], B: points[j], I: i, J: j}
			}
		}
	}

	return res
}
