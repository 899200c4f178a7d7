package generator

import "errors"

var (
	// ErrUsage is the parent of every request validation error.
	ErrUsage = errors.New("usage error")

	// ErrNameRequired is returned when a name-based version is requested
	// without a name.
	ErrNameRequired = usageError("name is required")

	// ErrUnsupportedVersion is returned for versions other than 1, 3, 4 and 5.
	ErrUnsupportedVersion = usageError("unsupported UUID version")
)

type validationError struct {
	msg string
}

func usageError(msg string) error {
	return &validationError{msg: msg}
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrUsage }
