package generator

import "fmt"

// Request describes a single UUID generation. HasName marks a name that was
// supplied explicitly, which may be empty.
type Request struct {
	Version   Version `json:"type,omitempty" yaml:"type,omitempty"`
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	HasName   bool    `json:"-" yaml:"-"`
	Namespace string  `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// Validate checks the request before anything is generated.
func (r *Request) Validate() error {
	if !r.Version.Supported() {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, int(r.Version))
	}
	if r.Version.NameBased() && r.Name == "" && !r.HasName {
		return fmt.Errorf("UUID v%d requires a name (use -n or --name): %w", int(r.Version), ErrNameRequired)
	}
	return nil
}
