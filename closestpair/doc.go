// Package closestpair finds the two closest points of a planar point set
// with the classic O(n log n) divide-and-conquer algorithm.
//
// 🚀 What is the closest-pair problem?
//
//	Given n points in the plane, report the pair (p, q) minimizing the
//	Euclidean distance |p − q|. The brute-force answer costs O(n²); the
//	divide-and-conquer algorithm gets O(n log n) by splitting the set at the
//	median x, solving both halves, and then only scanning a narrow vertical
//	"strip" around the split line where a closer crossing pair could hide.
//
// ✨ Key features:
//   - two presorted orderings (by x, by y) partitioned in tandem; the y order
//     is never re-sorted inside the recursion
//   - exact-size halves even when many points share one x-coordinate
//   - strip scan bounded by the current best distance (O(n) per level)
//   - duplicates are fine: coincident points yield distance 0
//   - optional step trace (WithTrace) for visualization, threaded explicitly
//     through the recursion; no package-level state
//   - BruteForce oracle with the same tie policy, for tests and tiny inputs
//
// ⚙️ Usage:
//
//	pts := []closestpair.Point{{X: 2, Y: 3}, {X: 12, Y: 30}, {X: 5, Y: 1}}
//	res, err := closestpair.ClosestPair(pts)
//	if err != nil {
//	  // ErrNonFinite, ErrDepthExceeded or ErrOptionViolation
//	}
//	if res.Pair != nil {
//	  fmt.Println(res.Pair.A, res.Pair.B, res.Distance)
//	}
//
// Performance:
//
//   - Time:   O(n log n)
//   - Memory: O(n) live at any moment (index slices along the recursion path)
//
// Concurrency:
//
//	ClosestPair is a pure function of its arguments and may be called from
//	many goroutines at once. A Trace passed via WithTrace belongs to a
//	single call.
package closestpair
