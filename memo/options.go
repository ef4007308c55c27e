package memo

import "go.uber.org/zap"

const defaultName = "memo"

// Option configures a memoized function.
type Option func(*config)

type config struct {
	name         string
	logger       *zap.Logger
	maxEntries   uint32
	synchronized bool
}

func newConfig(opts []Option) config {
	cfg := config{
		name:   defaultName,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithName labels log entries of the memoized function.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger that receives debug entries for hits, misses and
// results that were not cached. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxEntries bounds the default store with a RotatingStore of n entries
// per generation. Zero keeps the unbounded default.
// It has no effect on the ...In variants, which bring their own store.
func WithMaxEntries(n uint32) Option {
	return func(c *config) {
		c.maxEntries = n
	}
}

// Synchronized makes the memoized function safe for concurrent use.
// Concurrent first calls for one key invoke the wrapped function once; the
// other callers wait for its result.
func Synchronized() Option {
	return func(c *config) {
		c.synchronized = true
	}
}
