package generator

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/viant/uuidclip/internal/clock"
	"github.com/viant/uuidclip/internal/entropy"
)

// Service generates UUIDs
type Service struct {
	random io.Reader
	now    func() time.Time
}

// Generate validates the request and builds the UUID for its version.
func (s *Service) Generate(ctx context.Context, request *Request) (uuid.UUID, error) {
	if err := request.Validate(); err != nil {
		return uuid.Nil, err
	}
	switch request.Version {
	case TimeBased:
		return s.TimeBased()
	case Random:
		return s.Random()
	default:
		return s.NameBased(request.Version, request.Name, request.Namespace)
	}
}

// Random returns a version 4 UUID.
func (s *Service) Random() (uuid.UUID, error) {
	return uuid.NewRandomFromReader(s.random)
}

// New creates a generator; randomness defaults to crypto/rand and time to the wall clock.
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.random == nil {
		ret.random = entropy.Reader()
	}
	if ret.now == nil {
		ret.now = clock.Now
	}
	return ret
}
