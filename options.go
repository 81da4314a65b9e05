package chainmap

import (
	"github.com/gostonefire/chainmap/internal/conf"
	"go.uber.org/zap"
)

// settings - Construction time configuration collected from options
type settings struct {
	logger          *zap.Logger
	initialCapacity int
}

// Option - Configures a HashMap when passed to New or NewFromSlices
type Option func(*settings)

// WithLogger - Sets the logger that resize events are reported to at debug level.
// A nil logger is ignored and the default no-op logger is kept.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithInitialCapacity - Sets the number of buckets to start with, rounded up to the nearest power of 2.
// Values lower than 1 make the constructor fail with InvalidCapacity.
func WithInitialCapacity(capacity int) Option {
	return func(s *settings) {
		s.initialCapacity = capacity
	}
}

// newSettings - Applies opts on top of the defaults
func newSettings(opts []Option) settings {
	s := settings{
		logger:          zap.NewNop(),
		initialCapacity: conf.InitialCapacity,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}
