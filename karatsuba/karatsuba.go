package karatsuba

import (
	"fmt"
	"math/big"
)

var ten = big.NewInt(10)

// Multiply — Karatsuba multiplication of non-negative integers
//
// Algorithm Outline:
//  1. If x < 10 or y < 10: return x·y.
//  2. n = max(digits(x), digits(y)), m = ⌊n/2⌋.
//  3. high1, low1 = x divmod 10^m; high2, low2 = y divmod 10^m.
//  4. z0 = mul(low1, low2); z1 = mul(low1+high1, low2+high2); z2 = mul(high1, high2).
//  5. return z2·10^(2m) + (z1 − z2 − z0)·10^m + z0.
//
// Operands whose digit counts differ are split at the same m; the shorter
// one may get high = 0, which the base case absorbs.
//
// Complexity:
//
//	Time   = O(n^1.585) for n = max digit count
//	Memory = O(n) per level, O(n log n) over the live recursion path
//
// Errors:
//   - ErrNilOperand      — x or y is nil.
//   - ErrNegativeOperand — x or y is negative.
//   - ErrDepthExceeded   — recursion deeper than WithMaxDepth.
//   - ErrOptionViolation — an invalid option was supplied.
func Multiply(x, y *big.Int, opts ...Option) (*big.Int, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if x == nil || y == nil {
		return nil, ErrNilOperand
	}
	if x.Sign() < 0 || y.Sign() < 0 {
		return nil, fmt.Errorf("%w: operand signs %d and %d", ErrNegativeOperand, x.Sign(), y.Sign())
	}

	m := &multiplier{cfg: cfg, pow: make(map[int]*big.Int)}
	z, err := m.mul(x, y, 0)
	if cfg.stats != nil {
		*cfg.stats = m.stats
	}
	if err != nil {
		return nil, err
	}

	return z, nil
}

// MultiplySigned multiplies integers of any sign: the magnitudes go through
// Multiply and the sign is applied afterwards.
func MultiplySigned(x, y *big.Int, opts ...Option) (*big.Int, error) {
	if x == nil || y == nil {
		return nil, ErrNilOperand
	}
	sign := x.Sign() * y.Sign()
	z, err := Multiply(new(big.Int).Abs(x), new(big.Int).Abs(y), opts...)
	if err != nil {
		return nil, err
	}
	if sign < 0 {
		z.Neg(z)
	}

	return z, nil
}

// Verify reports whether product == x·y using math/big's own multiplication.
func Verify(x, y, product *big.Int) bool {
	if x == nil || y == nil || product == nil {
		return false
	}

	return new(big.Int).Mul(x, y).Cmp(product) == 0
}

// DigitCount returns the number of decimal digits of |x|; zero has one digit.
//
// The count starts from an integer estimate ⌊(bitlen−1)·1233/4096⌋
// (1233/4096 just under log10 2) and is corrected by exact comparison with
// powers of ten, so no floating-point logarithm is involved.
func DigitCount(x *big.Int) int {
	return digitCount(x, func(k int) *big.Int {
		return new(big.Int).Exp(ten, big.NewInt(int64(k)), nil)
	})
}

func digitCount(x *big.Int, pow10 func(int) *big.Int) int {
	if x == nil || x.Sign() == 0 {
		return 1
	}
	est := int(int64(x.BitLen()-1) * 1233 >> 12)
	for est > 0 && x.CmpAbs(pow10(est)) < 0 {
		est--
	}
	for x.CmpAbs(pow10(est+1)) >= 0 {
		est++
	}

	return est + 1
}

// multiplier carries the per-call state of one Multiply: options, counters
// and a cache of powers of ten. Cached powers are read-only operands.
type multiplier struct {
	cfg   config
	pow   map[int]*big.Int
	stats Stats
}

func (m *multiplier) pow10(k int) *big.Int {
	if p, ok := m.pow[k]; ok {
		return p
	}
	p := new(big.Int).Exp(ten, big.NewInt(int64(k)), nil)
	m.pow[k] = p

	return p
}

func (m *multiplier) mul(x, y *big.Int, depth int) (*big.Int, error) {
	if depth > m.cfg.maxDepth {
		return nil, fmt.Errorf("%w: depth %d > %d", ErrDepthExceeded, depth, m.cfg.maxDepth)
	}
	m.stats.Calls++
	if depth > m.stats.MaxDepth {
		m.stats.MaxDepth = depth
	}

	if x.Cmp(ten) < 0 || y.Cmp(ten) < 0 {
		z := new(big.Int).Mul(x, y)
		m.stats.BaseCases++
		m.cfg.trace.add(func() Step {
			return Step{Kind: StepBaseCase, Depth: depth, X: x.String(), Y: y.String(), Result: z.String()}
		})

		return z, nil
	}

	n := max(digitCount(x, m.pow10), digitCount(y, m.pow10))
	half := n / 2
	p := m.pow10(half)

	high1, low1 := new(big.Int).QuoRem(x, p, new(big.Int))
	high2, low2 := new(big.Int).QuoRem(y, p, new(big.Int))
	m.stats.Splits++
	m.cfg.trace.add(func() Step {
		return Step{Kind: StepSplit, Depth: depth, X: x.String(), Y: y.String(), SplitPos: half}
	})

	z0, err := m.mul(low1, low2, depth+1)
	if err != nil {
		return nil, err
	}
	z1, err := m.mul(new(big.Int).Add(low1, high1), new(big.Int).Add(low2, high2), depth+1)
	if err != nil {
		return nil, err
	}
	z2, err := m.mul(high1, high2, depth+1)
	if err != nil {
		return nil, err
	}

	// mid = z1 − z2 − z0 is never negative: it equals low1·high2 + high1·low2.
	mid := new(big.Int).Sub(z1, z2)
	mid.Sub(mid, z0)

	z := new(big.Int).Mul(z2, m.pow10(2*half))
	z.Add(z, mid.Mul(mid, p))
	z.Add(z, z0)
	m.cfg.trace.add(func() Step {
		return Step{Kind: StepCombine, Depth: depth, Result: z.String()}
	})

	return z, nil
}
