package clipboard

import "context"

// Strategy represents a single way of writing to the clipboard
type Strategy interface {
	// Name identifies the strategy in logs and results
	Name() string
	// Available reports whether the strategy can be attempted in this environment
	Available(ctx context.Context) bool
	// Copy writes text to the clipboard
	Copy(ctx context.Context, text string) error
}
