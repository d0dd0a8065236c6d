package transfer

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrCancelled is returned when a transfer stops on Cancel or on its
	// context.
	ErrCancelled = errors.New("transfer cancelled")

	// ErrReadUnsupported is returned for read transfers, which the radio
	// firmware does not implement.
	ErrReadUnsupported = errors.New("reading from the radio is not supported")
)

// OpenError indicates that the serial port could not be opened.
type OpenError struct {
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open port: %v", e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// TimeoutError indicates that the radio did not answer in time.
type TimeoutError struct {
	Operation string
	Got       int
	Want      int
	After     time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out after %v waiting for %d bytes, got %d",
		e.Operation, e.After, e.Want, e.Got)
}

// Timeout reports true, matching the net.Error convention.
func (e *TimeoutError) Timeout() bool {
	return true
}

// IsTimeout reports whether err is or wraps an error with a Timeout() method
// that returns true.
func IsTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
