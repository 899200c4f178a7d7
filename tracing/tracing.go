package tracing

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/viant/uuidclip"

// Init configures OpenTelemetry with the stdout exporter backed by either os.Stdout or the
// specified file. The function is safe to call multiple times – the first successful
// initialisation wins.
func Init(serviceName, serviceVersion, outputFile string) error {
	var w io.Writer = os.Stdout
	var file *os.File
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		w, file = f, f
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err == nil {
		var installed bool
		if installed, err = installProvider(serviceName, serviceVersion, exporter); installed {
			output = file
			return nil
		}
	}
	if file != nil {
		_ = file.Close()
	}
	return err
}

// InitWithExporter configures OpenTelemetry using the supplied SpanExporter.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	_, err := installProvider(serviceName, serviceVersion, exporter)
	return err
}

var (
	providerOnce sync.Once
	providerErr  error
	provider     *sdktrace.TracerProvider
	output       *os.File
)

// installProvider reports whether this call installed the provider.
func installProvider(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) (bool, error) {
	if exporter == nil {
		return false, nil
	}

	installed := false
	providerOnce.Do(func() {
		res, err := resource.New(context.Background(),
			resource.WithAttributes(
				attribute.String("service.name", serviceName),
				attribute.String("service.version", serviceVersion),
			),
		)
		if err != nil {
			providerErr = err
			return
		}

		provider = sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(provider)
		installed = true
	})

	return installed, providerErr
}

// Shutdown flushes and stops the installed provider, if any, then closes the trace file.
func Shutdown(ctx context.Context) error {
	if provider == nil {
		return nil
	}
	err := provider.Shutdown(ctx)
	if output != nil {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
		output = nil
	}
	return err
}

// Span wraps go.opentelemetry.io/otel/trace.Span so that callers do not need to import the
// upstream package directly.
type Span struct {
	span trace.Span
}

// WithAttributes attaches all provided attributes to the span.
func (s *Span) WithAttributes(attrs map[string]string) *Span {
	if s == nil || len(attrs) == 0 {
		return s
	}
	otelAttrs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		otelAttrs = append(otelAttrs, attribute.String(k, v))
	}
	s.span.SetAttributes(otelAttrs...)
	return s
}

// SetStatus records an error status on the span. If err is nil an OK status is recorded instead.
func (s *Span) SetStatus(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
}

// StartSpan starts a new internal span.
func StartSpan(ctx context.Context, name string) (context.Context, *Span) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, &Span{span: span}
}

// EndSpan finalises the span and records status depending on the provided error.
func EndSpan(sp *Span, err error) {
	if sp == nil {
		return
	}
	sp.SetStatus(err)
	sp.span.End()
}
