package closestpair_test

import (
	"encoding/json"
	"math"
	"math/rand"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/divconq/closestpair"
)

// sixPoints is the six-point fixture shared by several tests.
func sixPoints() []closestpair.Point {
	return []closestpair.Point{{X: 2, Y: 3}, {X: 12, Y: 30}, {X: 40, Y: 50}, {X: 5, Y: 1}, {X: 12, Y: 10}, {X: 3, Y: 4}}
}

// randomPoints draws n points uniformly from [-span, span]².
func randomPoints(rng *rand.Rand, n int, span float64) []closestpair.Point {
	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{X: (rng.Float64()*2 - 1) * span, Y: (rng.Float64()*2 - 1) * span}
	}

	return pts
}

// requireMatchesOracle checks res against BruteForce on the same input.
func requireMatchesOracle(t *testing.T, pts []closestpair.Point, res closestpair.Result) {
	t.Helper()
	want := closestpair.BruteForce(pts)
	require.Equal(t, want.Distance, res.Distance, "distance must equal brute-force minimum (n=%d)", len(pts))
	if want.Pair == nil {
		require.Nil(t, res.Pair)
		return
	}
	require.NotNil(t, res.Pair)
	require.NotEqual(t, res.Pair.I, res.Pair.J, "pair must use two distinct input points")
	require.Equal(t, pts[res.Pair.I], res.Pair.A)
	require.Equal(t, pts[res.Pair.J], res.Pair.B)
	require.Equal(t, res.Distance, res.Pair.A.Distance(res.Pair.B), "reported distance must be the pair's distance")
}

// TestClosestPair_Degenerate covers the empty, single and duplicated inputs.
func TestClosestPair_Degenerate(t *testing.T) {
	res, err := closestpair.ClosestPair(nil)
	require.NoError(t, err)
	assert.Nil(t, res.Pair)
	assert.True(t, math.IsInf(res.Distance, 1), "empty input must give +Inf")

	p := closestpair.Point{X: 1.5, Y: -2}
	res, err = closestpair.ClosestPair([]closestpair.Point{p})
	require.NoError(t, err)
	assert.Nil(t, res.Pair)
	assert.True(t, math.IsInf(res.Distance, 1), "single point must give +Inf")

	res, err = closestpair.ClosestPair([]closestpair.Point{p, p})
	require.NoError(t, err)
	require.NotNil(t, res.Pair)
	assert.Equal(t, p, res.Pair.A)
	assert.Equal(t, p, res.Pair.B)
	assert.Equal(t, 0.0, res.Distance)
}

// TestClosestPair_SixPoints checks the six-point fixture against the oracle.
// The closest pair is (2,3)-(3,4) at √2; (2,3)-(5,1) at ≈3.606 is only the
// closest pair that crosses the first split.
func TestClosestPair_SixPoints(t *testing.T) {
	pts := sixPoints()
	res, err := closestpair.ClosestPair(pts)
	require.NoError(t, err)
	requireMatchesOracle(t, pts, res)
	assert.InDelta(t, math.Sqrt2, res.Distance, 1e-12)
	assert.Equal(t, closestpair.Point{X: 2, Y: 3}, res.Pair.A)
	assert.Equal(t, closestpair.Point{X: 3, Y: 4}, res.Pair.B)
}

// TestClosestPair_AllIdentical verifies that coincident points give distance 0.
func TestClosestPair_AllIdentical(t *testing.T) {
	pts := make([]closestpair.Point, 257)
	for i := range pts {
		pts[i] = closestpair.Point{X: 7, Y: 7}
	}
	res, err := closestpair.ClosestPair(pts)
	require.NoError(t, err)
	require.NotNil(t, res.Pair)
	assert.Equal(t, 0.0, res.Distance)
}

// TestClosestPair_RandomMatchesOracle compares against BruteForce for many
// sizes, including odd splits and the tiny sizes around the base case.
func TestClosestPair_RandomMatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n <= 64; n++ {
		pts := randomPoints(rng, n, 1000)
		res, err := closestpair.ClosestPair(pts)
		require.NoError(t, err)
		requireMatchesOracle(t, pts, res)
	}
	for _, n := range []int{100, 127, 255, 513, 2000} {
		pts := randomPoints(rng, n, 1000)
		res, err := closestpair.ClosestPair(pts)
		require.NoError(t, err)
		requireMatchesOracle(t, pts, res)
	}
}

// TestClosestPair_Uniform1000 checks 1000 uniform points in [-1000,1000]².
func TestClosestPair_Uniform1000(t *testing.T) {
	pts := randomPoints(rand.New(rand.NewSource(2024)), 1000, 1000)
	res, err := closestpair.ClosestPair(pts)
	require.NoError(t, err)
	requireMatchesOracle(t, pts, res)
	assert.LessOrEqual(t, res.Stats.MaxDepth, 10, "1000 points halve to the base case within 9 levels")
}

// TestClosestPair_IntegerGrid uses a lattice where many pairs tie at distance 1.
func TestClosestPair_IntegerGrid(t *testing.T) {
	var pts []closestpair.Point
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			pts = append(pts, closestpair.Point{X: float64(x), Y: float64(y)})
		}
	}
	rand.New(rand.NewSource(7)).Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })

	res, err := closestpair.ClosestPair(pts)
	require.NoError(t, err)
	requireMatchesOracle(t, pts, res)
	assert.Equal(t, 1.0, res.Distance)
}

// TestClosestPair_SharedX puts every point on one vertical line. The halves
// must still be balanced and the strip scan must stay linear per level.
func TestClosestPair_SharedX(t *testing.T) {
	const n = 4096
	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{X: 3, Y: float64((i * 7919) % n)} // permuted 0..n-1
	}

	res, err := closestpair.ClosestPair(pts)
	require.NoError(t, err)
	require.NotNil(t, res.Pair)
	assert.Equal(t, 1.0, res.Distance)
	assert.Equal(t, 11, res.Stats.MaxDepth, "4096 halves down to pairs at depth 11")

	// n²/2 would be ~8.4M evaluations; a balanced run stays close to n.
	assert.Less(t, res.Stats.DistanceEvals, 4*n, "strip scan degraded on a shared x-coordinate")
}

// TestClosestPair_SharedXWithDuplicates mixes the shared line with duplicates
// and a separated cluster, then checks the oracle.
func TestClosestPair_SharedXWithDuplicates(t *testing.T) {
	var pts []closestpair.Point
	for i := 0; i < 300; i++ {
		pts = append(pts, closestpair.Point{X: 0, Y: float64(i / 3)})
	}
	for i := 0; i < 50; i++ {
		pts = append(pts, closestpair.Point{X: 0.5, Y: float64(i) + 0.25})
	}
	res, err := closestpair.ClosestPair(pts)
	require.NoError(t, err)
	requireMatchesOracle(t, pts, res)
	assert.Equal(t, 0.0, res.Distance)
}

// TestClosestPair_CrossingPair forces the answer to straddle the split line.
func TestClosestPair_CrossingPair(t *testing.T) {
	pts := []closestpair.Point{
		{X: -10, Y: 0}, {X: -9, Y: 20}, {X: -0.1, Y: 5}, {X: -8, Y: -20},
		{X: 0.1, Y: 5.05}, {X: 9, Y: 20}, {X: 8, Y: -20}, {X: 10, Y: 0},
	}
	res, err := closestpair.ClosestPair(pts)
	require.NoError(t, err)
	requireMatchesOracle(t, pts, res)
	assert.ElementsMatch(t, []int{2, 4}, []int{res.Pair.I, res.Pair.J})
}

// TestClosestPair_DoesNotMutateInput verifies the caller's slice is untouched.
func TestClosestPair_DoesNotMutateInput(t *testing.T) {
	pts := randomPoints(rand.New(rand.NewSource(1)), 300, 50)
	orig := slices.Clone(pts)
	_, err := closestpair.ClosestPair(pts)
	require.NoError(t, err)
	assert.Equal(t, orig, pts)
}

// TestClosestPair_Deterministic repeats a call with many ties and expects
// the same pair every time.
func TestClosestPair_Deterministic(t *testing.T) {
	var pts []closestpair.Point
	for i := 0; i < 64; i++ {
		pts = append(pts, closestpair.Point{X: float64(i % 8), Y: float64(i / 8)})
	}
	first, err := closestpair.ClosestPair(pts)
	require.NoError(t, err)
	for k := 0; k < 5; k++ {
		again, err := closestpair.ClosestPair(pts)
		require.NoError(t, err)
		assert.Equal(t, *first.Pair, *again.Pair)
		assert.Equal(t, first.Distance, again.Distance)
	}
}

// TestClosestPair_NonFinite rejects NaN and Inf coordinates.
func TestClosestPair_NonFinite(t *testing.T) {
	_, err := closestpair.ClosestPair([]closestpair.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}})
	assert.ErrorIs(t, err, closestpair.ErrNonFinite)

	_, err = closestpair.ClosestPair([]closestpair.Point{{X: math.Inf(-1), Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, closestpair.ErrNonFinite)
}

// TestClosestPair_MaxDepth exercises the recursion guard and its validation.
func TestClosestPair_MaxDepth(t *testing.T) {
	pts := randomPoints(rand.New(rand.NewSource(3)), 100, 10)

	_, err := closestpair.ClosestPair(pts, closestpair.WithMaxDepth(1))
	assert.ErrorIs(t, err, closestpair.ErrDepthExceeded)

	_, err = closestpair.ClosestPair(pts, closestpair.WithMaxDepth(-1))
	assert.ErrorIs(t, err, closestpair.ErrOptionViolation)

	res, err := closestpair.ClosestPair(pts, closestpair.WithMaxDepth(0))
	require.NoError(t, err)
	requireMatchesOracle(t, pts, res)
}

// TestClosestPair_Trace checks the step sequence recorded for the six-point set.
func TestClosestPair_Trace(t *testing.T) {
	var tr closestpair.Trace
	_, err := closestpair.ClosestPair(sixPoints(), closestpair.WithTrace(&tr))
	require.NoError(t, err)

	kinds := make([]closestpair.StepKind, 0, len(tr.Steps))
	for _, s := range tr.Steps {
		kinds = append(kinds, s.Kind)
	}
	want := []closestpair.StepKind{
		closestpair.StepStart,
		closestpair.StepDivide,
		closestpair.StepCompare, closestpair.StepCompare, closestpair.StepCompare,
		closestpair.StepCompare, closestpair.StepCompare, closestpair.StepCompare,
		closestpair.StepStrip,
		closestpair.StepResult,
	}
	assert.Equal(t, want, kinds)
	assert.Equal(t, len(want), tr.Total)
	assert.False(t, tr.Truncated())

	div := tr.Steps[1]
	assert.Equal(t, 3, div.LeftSize)
	assert.Equal(t, 3, div.RightSize)
	assert.Equal(t, closestpair.Point{X: 5, Y: 1}, *div.Midpoint)

	strip := tr.Steps[8]
	assert.Equal(t, 1, strip.StripSize)
	require.NotNil(t, strip.Width)
	assert.InDelta(t, 2*math.Sqrt2, *strip.Width, 1e-12)
	assert.Equal(t, 6, tr.Steps[0].Count)
}

// TestClosestPair_TraceZeroDistance keeps a zero distance and strip width in
// the encoded trace, and leaves distance off the single-point result.
func TestClosestPair_TraceZeroDistance(t *testing.T) {
	pts := []closestpair.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 5, Y: 5}, {X: 9, Y: 9}}
	var tr closestpair.Trace
	res, err := closestpair.ClosestPair(pts, closestpair.WithTrace(&tr))
	require.NoError(t, err)
	assert.Zero(t, res.Distance)

	last := tr.Steps[len(tr.Steps)-1]
	require.Equal(t, closestpair.StepResult, last.Kind)
	b, err := json.Marshal(last)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"distance":0`)

	var strip closestpair.Step
	for _, s := range tr.Steps {
		if s.Kind == closestpair.StepStrip {
			strip = s
		}
	}
	b, err = json.Marshal(strip)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"width":0`)

	var single closestpair.Trace
	_, err = closestpair.ClosestPair(pts[:1], closestpair.WithTrace(&single))
	require.NoError(t, err)
	b, err = json.Marshal(single.Steps)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "distance")
}

// TestClosestPair_TraceLimit keeps only Limit steps but counts all of them.
func TestClosestPair_TraceLimit(t *testing.T) {
	tr := closestpair.Trace{Limit: 3}
	_, err := closestpair.ClosestPair(sixPoints(), closestpair.WithTrace(&tr))
	require.NoError(t, err)
	assert.Len(t, tr.Steps, 3)
	assert.Equal(t, 10, tr.Total)
	assert.True(t, tr.Truncated())

	big := randomPoints(rand.New(rand.NewSource(5)), 500, 100)
	var def closestpair.Trace
	_, err = closestpair.ClosestPair(big, closestpair.WithTrace(&def))
	require.NoError(t, err)
	assert.Len(t, def.Steps, closestpair.DefaultTraceLimit)
	assert.Greater(t, def.Total, closestpair.DefaultTraceLimit)
}

// TestClosestPair_Concurrent runs independent calls from many goroutines.
func TestClosestPair_Concurrent(t *testing.T) {
	const workers = 16
	inputs := make([][]closestpair.Point, workers)
	rng := rand.New(rand.NewSource(99))
	for i := range inputs {
		inputs[i] = randomPoints(rng, 200+i*10, 500)
	}

	results := make([]closestpair.Result, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			var tr closestpair.Trace
			results[id], errs[id] = closestpair.ClosestPair(inputs[id], closestpair.WithTrace(&tr))
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		requireMatchesOracle(t, inputs[i], results[i])
	}
}

// TestBruteForce_FirstMinimumWins checks the oracle's own tie policy.
func TestBruteForce_FirstMinimumWins(t *testing.T) {
	pts := []closestpair.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 5, Y: 5}, {X: 6, Y: 5}}
	res := closestpair.BruteForce(pts)
	require.NotNil(t, res.Pair)
	assert.Equal(t, 0, res.Pair.I)
	assert.Equal(t, 1, res.Pair.J)
	assert.Equal(t, 6, res.Stats.DistanceEvals)
}

// TestPoint_JSON encodes a point as [x, y].
func TestPoint_JSON(t *testing.T) {
	b, err := closestpair.Point{X: 1.5, Y: -2}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "[1.5,-2]", string(b))
	assert.Equal(t, "(1.5, -2)", closestpair.Point{X: 1.5, Y: -2}.String())
}
