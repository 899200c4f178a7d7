package clipboard

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultTimeout bounds the clipboard command.
const DefaultTimeout = 5 * time.Second

// Writer copies text using the first strategy that succeeds
type Writer struct {
	strategies []Strategy
	platform   *Platform
	runner     Runner
	native     bool
	timeout    time.Duration
	logf       func(format string, args ...interface{})
}

// Strategies returns the configured chain
func (w *Writer) Strategies() []Strategy {
	return w.strategies
}

// Copy tries each available strategy in order and returns the name of the one that succeeded.
func (w *Writer) Copy(ctx context.Context, text string) (string, error) {
	var errs []error
	for _, strategy := range w.strategies {
		if !strategy.Available(ctx) {
			w.logf("clipboard: %v not available", strategy.Name())
			continue
		}
		err := strategy.Copy(ctx, text)
		if err == nil {
			w.logf("clipboard: copied with %v", strategy.Name())
			return strategy.Name(), nil
		}
		w.logf("clipboard: %v failed: %v", strategy.Name(), err)
		errs = append(errs, fmt.Errorf("%v: %w", strategy.Name(), err))
	}
	return "", errors.Join(append([]error{ErrUnavailable}, errs...)...)
}

// New creates a writer; without WithStrategies it builds the native then command chain.
func New(options ...Option) *Writer {
	ret := &Writer{native: true, timeout: DefaultTimeout}
	for _, option := range options {
		option(ret)
	}
	if ret.logf == nil {
		ret.logf = func(string, ...interface{}) {}
	}
	if ret.strategies != nil {
		return ret
	}
	if ret.platform == nil {
		ret.platform = Host()
	}
	if ret.native {
		ret.strategies = append(ret.strategies, NewNative(ret.platform))
	}
	ret.strategies = append(ret.strategies, NewShell(ret.platform, ret.runner, ret.timeout))
	return ret
}
