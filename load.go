package uuidclip

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// DefaultConfigURL returns the per-user config location, or "" when the user config directory is unknown.
func DefaultConfigURL() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "uuidclip", "config.yaml")
}

// LoadConfig reads a YAML config from any afs supported URL on top of DefaultConfig.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}

// LoadDefaultConfig loads the config at URL when it exists, otherwise DefaultConfig.
func LoadDefaultConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if URL == "" {
		return DefaultConfig(), nil
	}
	exists, err := fs.Exists(ctx, URL)
	if err != nil || !exists {
		return DefaultConfig(), nil
	}
	return LoadConfig(ctx, fs, URL)
}
