package generator

import (
	"io"
	"time"
)

// Option customises the generator
type Option func(s *Service)

// WithRandom sets the random-byte provider used by v1 and v4.
func WithRandom(r io.Reader) Option {
	return func(s *Service) {
		s.random = r
	}
}

// WithClock sets the time source used by v1.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}
