package karatsuba

import "fmt"

// DefaultMaxDepth bounds the recursion depth. Digit counts roughly halve per
// level, so a million-digit product stays near depth 20.
const DefaultMaxDepth = 128

// Option configures Multiply via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*config)

type config struct {
	trace    *Trace
	stats    *Stats
	maxDepth int

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

// WithTrace records split/base-case/combine steps into t.
func WithTrace(t *Trace) Option {
	return func(c *config) {
		c.trace = t
	}
}

// WithStats stores the recursion counters of the call into s when it returns.
func WithStats(s *Stats) Option {
	return func(c *config) {
		c.stats = s
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
