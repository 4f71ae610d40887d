package closestpair

import "fmt"

// DefaultMaxDepth bounds the recursion depth. Exact halving reaches depth
// ⌈log2(n/3)⌉, so the default only trips on an implementation fault.
const DefaultMaxDepth = 128

// Option configures ClosestPair via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when ClosestPair is invoked.
type Option func(*config)

type config struct {
	trace    *Trace
	maxDepth int

	// internal error recorded during option parsing
	err error
}

func newConfig(opts ...Option) config {
	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithTrace records the recursion steps into t. A nil t disables tracing.
func WithTrace(t *Trace) Option {
	return func(c *config) {
		c.trace = t
	}
}

// WithMaxDepth sets the recursion depth guard.
//
//	d > 0:  fail with ErrDepthExceeded beyond depth d
//	d == 0: use DefaultMaxDepth
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(c *config) {
		switch {
		case d < 0:
			c.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			c.maxDepth = DefaultMaxDepth
		default:
			c.maxDepth = d
		}
	}
}
