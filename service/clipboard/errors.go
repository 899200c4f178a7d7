package clipboard

import "errors"

var (
	// ErrUnavailable is returned when no strategy managed to copy the text.
	ErrUnavailable = errors.New("clipboard unavailable")

	// ErrNoCommand indicates that no clipboard command exists for the platform.
	ErrNoCommand = errors.New("no clipboard command available")
)
