package clipboard

import "time"

// Option customises the writer
type Option func(w *Writer)

// WithStrategies replaces the default strategy chain.
func WithStrategies(strategies ...Strategy) Option {
	return func(w *Writer) {
		w.strategies = strategies
	}
}

// WithPlatform sets the platform used by the default strategies.
func WithPlatform(platform *Platform) Option {
	return func(w *Writer) {
		w.platform = platform
	}
}

// WithRunner sets the command runner used by the command strategy.
func WithRunner(runner Runner) Option {
	return func(w *Writer) {
		w.runner = runner
	}
}

// WithNative toggles the native clipboard strategy.
func WithNative(enabled bool) Option {
	return func(w *Writer) {
		w.native = enabled
	}
}

// WithTimeout bounds how long the clipboard command may run.
func WithTimeout(timeout time.Duration) Option {
	return func(w *Writer) {
		w.timeout = timeout
	}
}

// WithLogger sets a printf-style logger for strategy attempts.
func WithLogger(logf func(format string, args ...interface{})) Option {
	return func(w *Writer) {
		w.logf = logf
	}
}
