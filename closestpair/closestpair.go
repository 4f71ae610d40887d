package closestpair

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// ClosestPair — divide-and-conquer closest pair of points
//
// Algorithm Outline:
//  1. Order the input twice: px by (x, y, index) and py by (y, x, index).
//     rank[i] is the position of point i in px; it is the total order used
//     to split, so ties on x never unbalance the halves.
//  2. solve(px, py):
//     n ≤ 3 → compare every pair.
//     Divide: left = px[:n/2], right = px[n/2:]; split = px[n/2-1].
//     py is partitioned in one stable pass: rank ≤ rank[split] goes left.
//     Conquer: solve both halves → (pL, dL), (pR, dR).
//     Combine: d = min(dL, dR); strip = py filtered by |x − split.x| < d;
//     for each strip point compare the following ones while Δy < best.
//  3. Return the best pair seen.
//
// Tie policy:
//
//	All comparisons are strict (<), so the first minimum found is kept.
//	When dL == dR the right half's pair is kept. The answer is deterministic
//	for a given input slice.
//
// Complexity:
//
//	Time   = O(n log n)  (two sorts + O(n) partition and strip work per level)
//	Memory = O(n)
//
// Errors:
//   - ErrNonFinite       — some coordinate is NaN or ±Inf.
//   - ErrDepthExceeded   — recursion deeper than WithMaxDepth.
//   - ErrOptionViolation — an invalid option was supplied.
func ClosestPair(points []Point, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	n := len(points)
	for i := range points {
		if !points[i].IsFinite() {
			return Result{}, fmt.Errorf("%w: point %d = %v", ErrNonFinite, i, points[i])
		}
	}

	cfg.trace.record(Step{Kind: StepStart, Count: n})
	if n < 2 {
		// The result step carries no pair; +Inf is left out so traces stay JSON-safe.
		cfg.trace.record(Step{Kind: StepResult})

		return Result{Distance: math.Inf(1)}, nil
	}

	s := newSolver(points, cfg)
	best, err := s.solve(s.px, s.py, 0)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Pair:     &Pair{A: points[best.i], B: points[best.j], I: best.i, J: best.j},
		Distance: best.d,
		Stats:    s.stats,
	}
	cfg.trace.record(Step{
		Kind:     StepResult,
		A:        pointRef(res.Pair.A),
		B:        pointRef(res.Pair.B),
		Distance: floatRef(res.Distance),
	})

	return res, nil
}

// candidate is a pair of input indices and their distance; i < 0 means none.
type candidate struct {
	i, j int
	d    float64
}

func noCandidate() candidate {
	return candidate{i: -1, j: -1, d: math.Inf(1)}
}

// solver holds the read-only inputs of one call plus its counters.
type solver struct {
	pts   []Point
	px    []int // indices ordered by (x, y, index)
	py    []int // indices ordered by (y, x, index)
	rank  []int // rank[i] = position of i in px
	strip []int // scratch for the strip; rebuilt after both children return
	cfg   config
	stats Stats
}

func newSolver(points []Point, cfg config) *solver {
	n := len(points)
	s := &solver{
		pts:   points,
		px:    make([]int, n),
		py:    make([]int, n),
		rank:  make([]int, n),
		strip: make([]int, 0, n),
		cfg:   cfg,
	}
	for i := 0; i < n; i++ {
		s.px[i] = i
		s.py[i] = i
	}

	slices.SortFunc(s.px, func(a, b int) int {
		pa, pb := points[a], points[b]
		if c := cmp.Compare(pa.X, pb.X); c != 0 {
			return c
		}
		if c := cmp.Compare(pa.Y, pb.Y); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})
	slices.SortFunc(s.py, func(a, b int) int {
		pa, pb := points[a], points[b]
		if c := cmp.Compare(pa.Y, pb.Y); c != 0 {
			return c
		}
		if c := cmp.Compare(pa.X, pb.X); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})
	for pos, idx := range s.px {
		s.rank[idx] = pos
	}

	return s
}

func (s *solver) dist(i, j int) float64 {
	s.stats.DistanceEvals++

	return s.pts[i].Distance(s.pts[j])
}

// solve returns the closest pair among px (py holds the same indices in y order).
func (s *solver) solve(px, py []int, depth int) (candidate, error) {
	if depth > s.cfg.maxDepth {
		return candidate{}, fmt.Errorf("%w: depth %d > %d", ErrDepthExceeded, depth, s.cfg.maxDepth)
	}
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}

	n := len(px)
	if n <= 3 {
		return s.bruteForce(px, depth), nil
	}

	mid := n / 2
	split := px[mid-1]
	splitRank := s.rank[split]
	splitX := s.pts[split].X
	if s.cfg.trace != nil {
		s.cfg.trace.record(Step{
			Kind:      StepDivide,
			Depth:     depth,
			Midpoint:  pointRef(s.pts[split]),
			LeftSize:  mid,
			RightSize: n - mid,
		})
	}

	// Stable partition keeps both halves in ascending y.
	pyl := make([]int, 0, mid)
	pyr := make([]int, 0, n-mid)
	for _, idx := range py {
		if s.rank[idx] <= splitRank {
			pyl = append(pyl, idx)
		} else {
			pyr = append(pyr, idx)
		}
	}

	left, err := s.solve(px[:mid], pyl, depth+1)
	if err != nil {
		return candidate{}, err
	}
	right, err := s.solve(px[mid:], pyr, depth+1)
	if err != nil {
		return candidate{}, err
	}

	best := right
	if left.d < right.d {
		best = left
	}
	d := best.d

	strip := s.strip[:0]
	for _, idx := range py {
		if math.Abs(s.pts[idx].X-splitX) < d {
			strip = append(strip, idx)
		}
	}
	s.cfg.trace.record(Step{
		Kind:      StepStrip,
		Depth:     depth,
		StripSize: len(strip),
		Width:     floatRef(2 * d),
	})

	for a := 0; a < len(strip); a++ {
		ya := s.pts[strip[a]].Y
		for b := a + 1; b < len(strip) && s.pts[strip[b]].Y-ya < best.d; b++ {
			if dd := s.dist(strip[a], strip[b]); dd < best.d {
				best = candidate{i: strip[a], j: strip[b], d: dd}
			}
		}
	}
	s.strip = strip

	return best, nil
}

// bruteForce compares every pair of idx (len ≤ 3 inside the recursion).
func (s *solver) bruteForce(idx []int, depth int) candidate {
	best := noCandidate()
	for a := 0; a < len(idx); a++ {
		for b := a + 1; b < len(idx); b++ {
			dd := s.dist(idx[a], idx[b])
			if s.cfg.trace != nil {
				s.cfg.trace.record(Step{
					Kind:     StepCompare,
					Depth:    depth,
					A:        pointRef(s.pts[idx[a]]),
					B:        pointRef(s.pts[idx[b]]),
					Distance: floatRef(dd),
				})
			}
			if dd < best.d {
				best = candidate{i: idx[a], j: idx[b], d: dd}
			}
		}
	}

	return best
}
