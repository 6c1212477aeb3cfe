package rng90

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when a command other than Init is
// attempted before the device has been initialized.
var ErrNotInitialized = errors.New("device not initialized")

// CommError indicates a bus write or read failure, including transport
// timeouts and negative acknowledgements surfaced by the bus.
type CommError struct {
	// Op is the driver operation during which the bus failed
	Op string

	// Err is the underlying transport error
	Err error
}

func (e *CommError) Error() string {
	return fmt.Sprintf("%s: bus error: %v", e.Op, e.Err)
}

func (e *CommError) Unwrap() error {
	return e.Err
}

// IsCommError returns true if the error is, or wraps, a CommError.
func IsCommError(err error) bool {
	var commErr *CommError
	return errors.As(err, &commErr)
}
