package uuidclip

import (
	"fmt"

	"github.com/viant/uuidclip/service/clipboard"
	"github.com/viant/uuidclip/service/generator"
	"github.com/viant/uuidclip/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the Service
type Option func(s *Service)

// WithConfig sets the defaults used by the service
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithGeneratorOptions passes options to generator.New (e.g. a fixed random source).
func WithGeneratorOptions(opts ...generator.Option) Option {
	return func(s *Service) {
		s.generatorOptions = append(s.generatorOptions, opts...)
	}
}

// WithClipboardOptions passes options to clipboard.New (e.g. custom strategies).
func WithClipboardOptions(opts ...clipboard.Option) Option {
	return func(s *Service) {
		s.clipboardOptions = append(s.clipboardOptions, opts...)
	}
}

// WithLogger sets a printf-style logger used for diagnostics.
func WithLogger(logf func(format string, args ...interface{})) Option {
	return func(s *Service) {
		s.logf = logf
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter. A failed
// initialisation is reported by Service.Err.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		if err := tracing.InitWithExporter(serviceName, serviceVersion, exporter); err != nil {
			s.err = fmt.Errorf("failed to initialise tracing: %w", err)
		}
	}
}
