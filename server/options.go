package server

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// ErrOptionViolation is returned by New when an invalid Option is supplied.
var ErrOptionViolation = errors.New("server: invalid option supplied")

// DefaultMaxUploadBytes caps request bodies (16 MiB).
const DefaultMaxUploadBytes int64 = 16 << 20

// DefaultTraceLimit is the number of steps returned per response.
const DefaultTraceLimit = 100

// Option configures a Server.
type Option func(*config)

type config struct {
	datasetDir string
	seed       int64
	maxUpload  int64
	traceLimit int
	logger     *log.Logger

	err error
}

func newConfig(opts ...Option) config {
	cfg := config{
		datasetDir: "datasets",
		seed:       1,
		maxUpload:  DefaultMaxUploadBytes,
		traceLimit: DefaultTraceLimit,
		logger:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithDatasetDir sets where /api/generate-datasets writes the suite.
func WithDatasetDir(dir string) Option {
	return func(c *config) {
		if dir == "" {
			c.err = fmt.Errorf("%w: empty dataset dir", ErrOptionViolation)
			return
		}
		c.datasetDir = dir
	}
}

// WithSeed sets the default seed of /api/generate-datasets.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithMaxUploadBytes caps request bodies; n must be positive.
func WithMaxUploadBytes(n int64) Option {
	return func(c *config) {
		if n <= 0 {
			c.err = fmt.Errorf("%w: max upload must be positive (%d)", ErrOptionViolation, n)
			return
		}
		c.maxUpload = n
	}
}

// WithTraceLimit sets how many steps a response carries; negative drops all.
func WithTraceLimit(n int) Option {
	return func(c *config) {
		if n == 0 {
			n = DefaultTraceLimit
		}
		c.traceLimit = n
	}
}

// WithLogger sets the request logger. A nil l keeps the server silent.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
