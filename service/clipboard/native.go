package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
)

const nativeName = "native"

// Native writes through the platform clipboard API.
type Native struct {
	platform  *Platform
	supported bool
	write     func(text string) error
}

func (n *Native) Name() string {
	return nativeName
}

// Available requires library support and a graphical display.
func (n *Native) Available(ctx context.Context) bool {
	return n.supported && n.platform.HasDisplay()
}

func (n *Native) Copy(ctx context.Context, text string) error {
	return n.write(text)
}

// NewNative creates a native strategy for the platform
func NewNative(platform *Platform) *Native {
	return &Native{
		platform:  platform,
		supported: !clipboard.Unsupported,
		write:     clipboard.WriteAll,
	}
}
