package transfer

import (
	"io"
	"time"
)

// Port is the serial connection used by a transfer. A Read that returns no
// data and no error is treated as a read timeout.
type Port interface {
	io.ReadWriteCloser
}

// InputResetter is implemented by ports that can discard pending input.
// The engine discards input before every frame when it is available.
type InputResetter interface {
	ResetInputBuffer() error
}

// PortConfig carries the timeouts the engine wants the port opened with.
type PortConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// OpenFunc opens the port for one transfer. The engine closes it when the
// transfer ends.
type OpenFunc func(PortConfig) (Port, error)

// Direction selects between writing to and reading from the radio.
type Direction int

const (
	// DirectionWrite uploads the image to the radio.
	DirectionWrite Direction = iota

	// DirectionRead downloads the image from the radio.
	DirectionRead
)

func (d Direction) String() string {
	if d == DirectionRead {
		return "read"
	}
	return "write"
}
