// Package tracing wires OpenTelemetry into uuidclip. Spans are only exported
// once Init (or InitWithExporter) has been called; otherwise the global no-op
// provider makes every helper free.
package tracing
