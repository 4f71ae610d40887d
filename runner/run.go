package runner

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/geo/r2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/divconq/closestpair"
	"github.com/katalvlaran/divconq/dataset"
	"github.com/katalvlaran/divconq/karatsuba"
)

// Run applies both cores to every dataset in dir.
//
// Parse and core failures are recorded in the matching result and do not
// stop the batch. Run itself fails only when dir cannot be listed, holds no
// datasets, an option is invalid, or ctx is cancelled.
func Run(ctx context.Context, dir string, opts ...Option) (Report, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return Report{}, cfg.err
	}

	pointFiles, intFiles, err := discover(dir)
	if err != nil {
		return Report{}, err
	}
	if len(pointFiles) == 0 && len(intFiles) == 0 {
		return Report{}, fmt.Errorf("%w in %s", ErrNoDatasets, dir)
	}

	rep := Report{
		RunID:       cfg.runID,
		Dir:         dir,
		Started:     time.Now().UTC(),
		ClosestPair: make([]PointsResult, len(pointFiles)),
		Karatsuba:   make([]ProductResult, len(intFiles)),
	}
	cfg.logger.Printf("run %s: %d point sets, %d operand pairs in %s (workers=%d)",
		rep.RunID, len(pointFiles), len(intFiles), dir, cfg.workers)

	// Each job owns one slot of the result slices, so no locking is needed.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, name := range pointFiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep.ClosestPair[i] = runPoints(filepath.Join(dir, name))
			logPoints(cfg, i+1, rep.ClosestPair[i])

			return nil
		})
	}
	for i, name := range intFiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep.Karatsuba[i] = runProduct(filepath.Join(dir, name))
			logProduct(cfg, i+1, rep.Karatsuba[i])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("runner: %w", err)
	}

	rep.PointsSum = summarizePoints(rep.ClosestPair)
	rep.ProductsSum = summarizeProducts(rep.Karatsuba)

	return rep, nil
}

func runPoints(path string) PointsResult {
	res := PointsResult{Dataset: filepath.Base(path), Bounds: r2.EmptyRect()}

	pts, err := readPoints(path)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.NumPoints = len(pts)
	for _, p := range pts {
		res.Bounds = res.Bounds.AddPoint(r2.Point(p))
	}

	start := time.Now()
	out, err := closestpair.ClosestPair(pts)
	res.ElapsedMS = elapsedMS(start)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	res.Stats = out.Stats
	if out.Pair != nil {
		a, b := out.Pair.A, out.Pair.B
		res.A, res.B = &a, &b
		res.Distance = out.Distance
	}

	return res
}

func runProduct(path string) ProductResult {
	res := ProductResult{Dataset: filepath.Base(path)}

	x, y, err := readIntegers(path)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.XDigits = karatsuba.DigitCount(x)
	res.YDigits = karatsuba.DigitCount(y)

	var st karatsuba.Stats
	start := time.Now()
	z, err := karatsuba.MultiplySigned(x, y, karatsuba.WithStats(&st))
	res.ElapsedMS = elapsedMS(start)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	res.Stats = st
	res.Product = z.String()
	res.ResultDigits = karatsuba.DigitCount(z)
	res.Verified = karatsuba.Verify(x, y, z)

	return res
}

func readPoints(path string) ([]closestpair.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return dataset.ReadPoints(f)
}

func readIntegers(path string) (x, y *big.Int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return dataset.ReadIntegers(f)
}

func elapsedMS(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds()) / 1e6
}

func logPoints(cfg config, i int, r PointsResult) {
	switch {
	case r.Err != "":
		cfg.logger.Printf("[closest %d] %s: error: %s", i, r.Dataset, r.Err)
	case r.A == nil:
		cfg.logger.Printf("[closest %d] %s: %d points, no pair", i, r.Dataset, r.NumPoints)
	default:
		cfg.logger.Printf("[closest %d] %s: %d points, d=%.6f in %.4f ms",
			i, r.Dataset, r.NumPoints, r.Distance, r.ElapsedMS)
	}
}

func logProduct(cfg config, i int, r ProductResult) {
	if r.Err != "" {
		cfg.logger.Printf("[karatsuba %d] %s: error: %s", i, r.Dataset, r.Err)
		return
	}
	cfg.logger.Printf("[karatsuba %d] %s: %d×%d digits → %d digits, verified=%t in %.4f ms",
		i, r.Dataset, r.XDigits, r.YDigits, r.ResultDigits, r.Verified, r.ElapsedMS)
}
