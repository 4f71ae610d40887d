package closestpair

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/golang/geo/r2"
)

// Sentinel errors returned by ClosestPair.
var (
	// ErrNonFinite indicates a NaN or ±Inf coordinate in the input.
	// Such values have no consistent ordering, so the presorts are undefined.
	ErrNonFinite = errors.New("closestpair: coordinate is NaN or Inf")

	// ErrDepthExceeded indicates the recursion went deeper than the configured
	// limit (see WithMaxDepth). With exact halving this needs ~2^limit points.
	ErrDepthExceeded = errors.New("closestpair: recursion depth limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("closestpair: invalid option supplied")
)

// Point is a planar point with real coordinates.
// It shares its layout with r2.Point so the geometry helpers of
// github.com/golang/geo apply after a plain conversion.
type Point r2.Point

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return r2.Point(p).Sub(r2.Point(q)).Norm()
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// MarshalJSON encodes p as a two-element array [x, y].
func (p Point) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 32)
	b = append(b, '[')
	b = strconv.AppendFloat(b, p.X, 'g', -1, 64)
	b = append(b, ',')
	b = strconv.AppendFloat(b, p.Y, 'g', -1, 64)
	b = append(b, ']')

	return b, nil
}

// Pair is a closest pair together with the positions of its points in the
// caller's input slice (I != J; their relative order is unspecified).
type Pair struct {
	A, B Point
	I, J int
}

// Stats describes the work done by one ClosestPair call.
//   - DistanceEvals — number of point-to-point distance computations
//     (base cases and strip scans combined).
//   - MaxDepth      — deepest recursion level reached (root is 0).
type Stats struct {
	DistanceEvals int
	MaxDepth      int
}

// Result holds the outcome of a closest-pair search.
//   - Pair:     nil when fewer than two points were supplied.
//   - Distance: |Pair.A − Pair.B|, or +Inf when Pair is nil.
//   - Stats:    work counters for complexity checks.
type Result struct {
	Pair     *Pair
	Distance float64
	Stats    Stats
}
