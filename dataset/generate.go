package dataset

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/divconq/closestpair"
)

var bigTen = big.NewInt(10)

// GeneratePoints returns n points drawn uniformly from [min,max]² (default
// [-1000,1000]²). Duplicates are possible and left in place.
//
// Errors: ErrBadSize if n < 0.
func GeneratePoints(n int, opts ...Option) ([]closestpair.Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: GeneratePoints(n=%d)", ErrBadSize, n)
	}
	cfg := newGenConfig(opts...)

	span := cfg.maxCoord - cfg.minCoord
	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{
			X: cfg.minCoord + span*cfg.rng.Float64(),
			Y: cfg.minCoord + span*cfg.rng.Float64(),
		}
	}

	return pts, nil
}

// GenerateIntegers returns two positive operands with the same digit count d,
// d drawn uniformly from the configured digit range. Both have a non-zero
// leading digit, i.e. each lies in [10^(d-1), 10^d − 1].
func GenerateIntegers(opts ...Option) (x, y *big.Int, err error) {
	cfg := newGenConfig(opts...)
	if cfg.minDigits < 1 || cfg.minDigits > cfg.maxDigits {
		return nil, nil, fmt.Errorf("%w: digit range [%d,%d]", ErrBadSize, cfg.minDigits, cfg.maxDigits)
	}

	d := cfg.minDigits + cfg.rng.Intn(cfg.maxDigits-cfg.minDigits+1)
	lo := new(big.Int).Exp(bigTen, big.NewInt(int64(d-1)), nil)
	width := new(big.Int).Mul(lo, big.NewInt(9))

	x = new(big.Int).Rand(cfg.rng, width)
	x.Add(x, lo)
	y = new(big.Int).Rand(cfg.rng, width)
	y.Add(y, lo)

	return x, y, nil
}
