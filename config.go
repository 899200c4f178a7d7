package uuidclip

import (
	"fmt"
	"time"

	"github.com/viant/uuidclip/service/clipboard"
	"github.com/viant/uuidclip/service/generator"
)

// Config is a serialisable representation of the tool defaults. It is
// usually loaded from YAML; the zero-value of each nested field inherits the
// package defaults.
type Config struct {
	Type      int             `json:"type" yaml:"type"`
	Namespace string          `json:"namespace" yaml:"namespace"`
	Clipboard ClipboardConfig `json:"clipboard" yaml:"clipboard"`
	Trace     TraceConfig     `json:"trace" yaml:"trace"`
}

type ClipboardConfig struct {
	Disabled   bool `json:"disabled" yaml:"disabled"`
	SkipNative bool `json:"skipNative" yaml:"skipNative"`
	TimeoutMs  int  `json:"timeoutMs" yaml:"timeoutMs"`
}

type TraceConfig struct {
	Output string `json:"output" yaml:"output"`
}

// DefaultConfig returns a Config populated with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Type:      int(generator.DefaultVersion),
		Namespace: generator.DNSNamespace.String(),
		Clipboard: ClipboardConfig{
			TimeoutMs: int(clipboard.DefaultTimeout / time.Millisecond),
		},
	}
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if !generator.Version(c.Type).Supported() {
		return fmt.Errorf("type: %w: %d", generator.ErrUnsupportedVersion, c.Type)
	}
	if c.Clipboard.TimeoutMs < 0 {
		return fmt.Errorf("clipboard.timeoutMs must be >= 0")
	}
	return nil
}

// ClipboardTimeout returns the command timeout as duration
func (c *Config) ClipboardTimeout() time.Duration {
	return time.Duration(c.Clipboard.TimeoutMs) * time.Millisecond
}
