package uuidclip_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/uuidclip"
	"github.com/viant/uuidclip/internal/clock"
	"github.com/viant/uuidclip/internal/entropy"
	"github.com/viant/uuidclip/service/clipboard"
	"github.com/viant/uuidclip/service/generator"
	"github.com/viant/uuidclip/tracing"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type recordingStrategy struct {
	err    error
	copied []string
}

func (r *recordingStrategy) Name() string                       { return "recording" }
func (r *recordingStrategy) Available(ctx context.Context) bool { return true }
func (r *recordingStrategy) Copy(ctx context.Context, text string) error {
	r.copied = append(r.copied, text)
	return r.err
}

func TestService(t *testing.T) {
	strategy := &recordingStrategy{}
	srv := uuidclip.New(
		uuidclip.WithGeneratorOptions(
			generator.WithRandom(entropy.Fixed(0)),
			generator.WithClock(clock.Fixed(time.UnixMilli(0))),
		),
		uuidclip.WithClipboardOptions(clipboard.WithStrategies(strategy)),
	)

	ctx := context.Background()
	id, err := srv.Generate(ctx, srv.Request(5, "example.com", "not-a-uuid"))
	assert.NoError(t, err)
	assert.Equal(t, "cfbff0d1-9375-5685-968c-48ce8b15ae17", id)

	id, err = srv.Generate(ctx, srv.Request(srv.Config().Type, "", ""))
	assert.NoError(t, err)
	assert.Equal(t, "00000000-0000-4000-8000-000000000000", id)

	id, err = srv.Generate(ctx, srv.Request(1, "", ""))
	assert.NoError(t, err)
	assert.Equal(t, "13814000-1dd2-11b2-8000-010000000000", id)

	assert.NoError(t, srv.Copy(ctx, id))
	assert.Equal(t, []string{id}, strategy.copied)

	_, err = srv.Generate(ctx, srv.Request(3, "", ""))
	assert.ErrorIs(t, err, generator.ErrNameRequired)
	_, err = srv.Generate(ctx, srv.Request(0, "", ""))
	assert.ErrorIs(t, err, generator.ErrUnsupportedVersion)
	assert.Len(t, strategy.copied, 1)
}

func TestService_TracingExporter(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	strategy := &recordingStrategy{}
	srv := uuidclip.New(
		uuidclip.WithTracingExporter("uuidclip", "test", exporter),
		uuidclip.WithClipboardOptions(clipboard.WithStrategies(strategy)),
	)
	assert.NoError(t, srv.Err())

	ctx := context.Background()
	id, err := srv.Generate(ctx, srv.Request(5, "example.com", ""))
	assert.NoError(t, err)
	assert.NoError(t, srv.Copy(ctx, id))

	var names []string
	for _, span := range exporter.GetSpans() {
		names = append(names, span.Name)
	}
	assert.Equal(t, []string{"uuid.generate", "clipboard.copy"}, names)
	assert.NoError(t, tracing.Shutdown(ctx))
}

func TestService_ConfigDefaults(t *testing.T) {
	config := uuidclip.DefaultConfig()
	config.Type = 5
	config.Namespace = "6ba7b811-9dad-11d1-80b4-00c04fd430c8"
	config.Clipboard.Disabled = true
	srv := uuidclip.New(uuidclip.WithConfig(config))

	request := srv.Request(srv.Config().Type, "example.com", "")
	assert.Equal(t, generator.SHA1, request.Version)
	assert.True(t, request.HasName)
	assert.Equal(t, "6ba7b811-9dad-11d1-80b4-00c04fd430c8", request.Namespace)
	assert.Same(t, config, srv.Config())

	assert.ErrorIs(t, srv.Copy(context.Background(), "x"), uuidclip.ErrCopyDisabled)
}

func TestService_CopyFailure(t *testing.T) {
	strategy := &recordingStrategy{err: errors.New("headless")}
	var logged int
	srv := uuidclip.New(
		uuidclip.WithLogger(func(string, ...interface{}) { logged++ }),
		uuidclip.WithClipboardOptions(clipboard.WithStrategies(strategy)),
	)
	err := srv.Copy(context.Background(), "x")
	assert.ErrorIs(t, err, clipboard.ErrUnavailable)
	assert.ErrorContains(t, err, "headless")
	assert.Equal(t, 1, logged)
}
