package dataset

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// DigitRange is an inclusive range of operand digit counts.
type DigitRange struct {
	Min, Max int
}

// Suite lists the datasets written by WriteSuite, one file per entry.
type Suite struct {
	PointSizes  []int
	DigitRanges []DigitRange
	CoordMin    float64
	CoordMax    float64
	Seed        int64
}

// StandardSuite is the benchmark suite: five point sets above 100 points plus
// five of mixed size, and ten operand pairs above 100 digits.
func StandardSuite() Suite {
	return Suite{
		PointSizes: []int{150, 200, 300, 500, 1000, 120, 180, 250, 400, 800},
		DigitRanges: []DigitRange{
			{120, 150}, {150, 200}, {200, 250}, {300, 350}, {400, 450},
			{110, 130}, {140, 160}, {180, 220}, {250, 300}, {350, 400},
		},
		CoordMin: defaultMinCoord,
		CoordMax: defaultMaxCoord,
		Seed:     defaultSeed,
	}
}

// File name patterns; %d is the 1-based dataset number.
const (
	PointsFilePattern   = "closest_pair_input_%d.txt"
	IntegersFilePattern = "integer_mult_input_%d.txt"
)

// PointsFile returns the file name of the i-th (1-based) point set.
func PointsFile(i int) string { return fmt.Sprintf(PointsFilePattern, i) }

// IntegersFile returns the file name of the i-th (1-based) operand pair.
func IntegersFile(i int) string { return fmt.Sprintf(IntegersFilePattern, i) }

// Stream ids keep point and integer files on disjoint RNG streams.
const (
	pointsStream   uint64 = 1 << 32
	integersStream uint64 = 2 << 32
)

// Write generates every dataset of s into dir (created if missing) and
// returns the written paths in order: point sets first, then operand pairs.
// File i is drawn from its own stream derived from s.Seed, so resizing one
// entry leaves every other file unchanged.
func (s Suite) Write(dir string) ([]string, error) {
	if !(s.CoordMin < s.CoordMax) || math.IsInf(s.CoordMin, 0) || math.IsInf(s.CoordMax, 0) {
		return nil, fmt.Errorf("%w: coordinate range [%g,%g]", ErrBadSize, s.CoordMin, s.CoordMax)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("dataset: create %s: %w", dir, err)
	}

	paths := make([]string, 0, len(s.PointSizes)+len(s.DigitRanges))
	for i, n := range s.PointSizes {
		pts, err := GeneratePoints(n,
			WithRand(streamRNG(s.Seed, pointsStream+uint64(i))),
			WithCoordRange(s.CoordMin, s.CoordMax))
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, PointsFile(i+1))
		if err := writeFile(path, func(f *os.File) error { return WritePoints(f, pts) }); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	for i, r := range s.DigitRanges {
		if r.Min < 1 || r.Min > r.Max {
			return paths, fmt.Errorf("%w: digit range %d is [%d,%d]", ErrBadSize, i+1, r.Min, r.Max)
		}
		x, y, err := GenerateIntegers(
			WithRand(streamRNG(s.Seed, integersStream+uint64(i))),
			WithDigitRange(r.Min, r.Max))
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, IntegersFile(i+1))
		if err := writeFile(path, func(f *os.File) error { return WriteIntegers(f, x, y) }); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// WriteSuite writes StandardSuite into dir under the given seed.
func WriteSuite(dir string, seed int64) ([]string, error) {
	s := StandardSuite()
	s.Seed = seed

	return s.Write(dir)
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}

	return f.Close()
}
