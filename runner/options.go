package runner

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("runner: invalid option supplied")

// ErrNoDatasets indicates that the directory holds no dataset files.
var ErrNoDatasets = errors.New("runner: no dataset files found")

// Option configures Run via functional arguments.
type Option func(*config)

type config struct {
	workers int
	logger  *log.Logger
	runID   uuid.UUID

	err error
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers: 1,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.runID == uuid.Nil {
		cfg.runID = uuid.New()
	}

	return cfg
}

// WithWorkers sets how many datasets are processed concurrently (n ≥ 1).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		c.workers = n
	}
}

// WithLogger routes progress messages to l. A nil l keeps the run silent.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRunID fixes the report's run identifier instead of a random one.
func WithRunID(id uuid.UUID) Option {
	return func(c *config) {
		c.runID = id
	}
}
