package uuidclip

import (
	"context"
	"errors"
	"strconv"

	"github.com/viant/uuidclip/service/clipboard"
	"github.com/viant/uuidclip/service/generator"
	"github.com/viant/uuidclip/tracing"
)

// ErrCopyDisabled is returned by Copy when the clipboard is turned off in the config.
var ErrCopyDisabled = errors.New("clipboard disabled")

type Service struct {
	config           *Config
	generator        *generator.Service
	clipboard        *clipboard.Writer
	generatorOptions []generator.Option
	clipboardOptions []clipboard.Option
	logf             func(format string, args ...interface{})
	err              error
}

func (s *Service) init(options []Option) {
	s.logf = func(string, ...interface{}) {}
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	s.generator = generator.New(s.generatorOptions...)
	clipboardOptions := []clipboard.Option{
		clipboard.WithNative(!s.config.Clipboard.SkipNative),
		clipboard.WithTimeout(s.config.ClipboardTimeout()),
		clipboard.WithLogger(s.logf),
	}
	s.clipboard = clipboard.New(append(clipboardOptions, s.clipboardOptions...)...)
}

// Err returns the error raised while applying options, if any.
func (s *Service) Err() error {
	return s.err
}

// Config returns the effective configuration
func (s *Service) Config() *Config {
	return s.config
}

// Request builds a generation request for a resolved version; an empty
// namespace is taken from the config.
func (s *Service) Request(version int, name, namespace string) *generator.Request {
	ret := &generator.Request{Version: generator.Version(version), Name: name, HasName: name != "", Namespace: namespace}
	if ret.Namespace == "" {
		ret.Namespace = s.config.Namespace
	}
	return ret
}

// Generate returns the canonical textual UUID for the request.
func (s *Service) Generate(ctx context.Context, request *generator.Request) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "uuid.generate")
	span.WithAttributes(map[string]string{"uuid.version": strconv.Itoa(int(request.Version))})
	id, err := s.generator.Generate(ctx, request)
	tracing.EndSpan(span, err)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Copy places text on the clipboard; the error is informational only.
func (s *Service) Copy(ctx context.Context, text string) error {
	if s.config.Clipboard.Disabled {
		return ErrCopyDisabled
	}
	ctx, span := tracing.StartSpan(ctx, "clipboard.copy")
	strategy, err := s.clipboard.Copy(ctx, text)
	if strategy != "" {
		span.WithAttributes(map[string]string{"clipboard.strategy": strategy})
	}
	tracing.EndSpan(span, err)
	return err
}

func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}
