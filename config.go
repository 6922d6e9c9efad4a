package rcarena

import (
	"flag"

	"github.com/go-kit/log"
	"github.com/pkg/errors"
)

// DefaultSegmentSize is the number of values held by each segment when no
// size is configured.
const DefaultSegmentSize = 64

// Config holds the arena settings that can be loaded from yaml or flags.
type Config struct {
	// SegmentSize is the number of values per segment. Must be > 0.
	SegmentSize int `yaml:"segment_size"`
}

// RegisterFlags registers the arena flags on f.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsWithPrefix("", f)
}

// RegisterFlagsWithPrefix registers the arena flags on f with the given prefix.
func (cfg *Config) RegisterFlagsWithPrefix(prefix string, f *flag.FlagSet) {
	f.IntVar(&cfg.SegmentSize, prefix+"arena.segment-size", DefaultSegmentSize, "Number of values held by each arena segment. New segments are chained on when the current one fills up.")
}

// Validate checks the config for errors.
func (cfg *Config) Validate() error {
	if cfg.SegmentSize <= 0 {
		return errors.Wrapf(ErrInvalidSegmentSize, "invalid arena config (segment_size=%d)", cfg.SegmentSize)
	}
	return nil
}

// Option configures the collaborators of an arena created by NewWithConfig.
type Option func(*options)

type options struct {
	logger  log.Logger
	metrics *Metrics
	drop    any
}

func defaultOptions() options {
	return options{
		logger:  log.NewNopLogger(),
		metrics: nopMetrics,
	}
}

// WithLogger sets the logger used for segment growth and teardown events.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics reports arena activity to m. A single Metrics is meant to be
// shared by every arena in the process.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithDropFunc registers fn to be called once for every stored value when
// the arena is destroyed, after the value's own Drop method (if any).
// fn must take a pointer to the arena's element type.
func WithDropFunc[T any](fn func(*T)) Option {
	return func(o *options) {
		if fn != nil {
			o.drop = fn
		}
	}
}
