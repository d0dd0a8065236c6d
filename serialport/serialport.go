// Package serialport opens the radio's programming cable with
// go.bug.st/serial and adapts it to transfer.Port.
package serialport

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"

	"github.com/moffa90/go-radiocps/transfer"
)

// DefaultBaudRate is the programming cable speed used when none is configured.
const DefaultBaudRate = 115200

// TimeoutError is returned when the radio does not answer within the port
// timeouts.
type TimeoutError struct {
	Op string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("serial %s timeout", e.Op)
}

// Timeout reports true, so transfer.IsTimeout recognises the error.
func (e *TimeoutError) Timeout() bool {
	return true
}

var (
	// ErrReadTimeout is returned by Read when no byte arrives in time.
	ErrReadTimeout = &TimeoutError{Op: "read"}

	// ErrWriteTimeout is returned by Write when the write does not complete
	// in time.
	ErrWriteTimeout = &TimeoutError{Op: "write"}
)

// Config describes how to open a port.
type Config struct {
	// Name is the device name, e.g. "/dev/ttyUSB0" or "COM3"
	Name string

	// BaudRate is the line speed; 8N1 framing is always used
	BaudRate int

	// ReadTimeout bounds each Read; zero blocks until data arrives
	ReadTimeout time.Duration

	// WriteTimeout bounds each Write; zero blocks until the write completes
	WriteTimeout time.Duration

	// DTR and RTS are the initial control line states
	DTR bool
	RTS bool
}

// DefaultConfig returns the configuration the radio expects on name: the
// default baud rate, DTR and RTS asserted, and a 5 s read timeout.
func DefaultConfig(name string) Config {
	return Config{
		Name:         name,
		BaudRate:     DefaultBaudRate,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 2 * time.Second,
		DTR:          true,
		RTS:          true,
	}
}

// device is the subset of serial.Port the package uses.
type device interface {
	io.ReadWriteCloser
	ResetInputBuffer() error
	SetReadTimeout(t time.Duration) error
	SetDTR(dtr bool) error
	SetRTS(rts bool) error
}

// openDevice is replaced in tests.
var openDevice = func(name string, mode *serial.Mode) (device, error) {
	return serial.Open(name, mode)
}

// listDevices is replaced in tests.
var listDevices = serial.GetPortsList

// Port is an open serial port. It satisfies transfer.Port and
// transfer.InputResetter.
type Port struct {
	dev          device
	name         string
	writeTimeout time.Duration
}

// Open opens the port described by cfg.
func Open(cfg Config) (*Port, error) {
	if cfg.Name == "" {
		return nil, errors.New("serial port name must have a value")
	}
	if cfg.BaudRate <= 0 {
		cfg.BaudRate = DefaultBaudRate
	}

	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
		InitialStatusBits: &serial.ModemOutputBits{
			DTR: cfg.DTR,
			RTS: cfg.RTS,
		},
	}
	dev, err := openDevice(cfg.Name, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Name, err)
	}

	p := &Port{dev: dev, name: cfg.Name, writeTimeout: cfg.WriteTimeout}

	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = serial.NoTimeout
	}
	if err := dev.SetReadTimeout(readTimeout); err != nil {
		return nil, p.closeWith(fmt.Errorf("set read timeout: %w", err))
	}
	// Explicitly set control lines; not every driver honours InitialStatusBits.
	if err := dev.SetDTR(cfg.DTR); err != nil {
		return nil, p.closeWith(fmt.Errorf("set DTR: %w", err))
	}
	if err := dev.SetRTS(cfg.RTS); err != nil {
		return nil, p.closeWith(fmt.Errorf("set RTS: %w", err))
	}

	return p, nil
}

// Opener returns a transfer.OpenFunc that opens name at baud with the
// engine's timeouts and both control lines asserted.
func Opener(name string, baud int) transfer.OpenFunc {
	return func(pc transfer.PortConfig) (transfer.Port, error) {
		cfg := DefaultConfig(name)
		cfg.BaudRate = baud
		cfg.ReadTimeout = pc.ReadTimeout
		cfg.WriteTimeout = pc.WriteTimeout
		return Open(cfg)
	}
}

// Name returns the device name the port was opened with.
func (p *Port) Name() string {
	return p.name
}

// Read reads into b. A read that returns nothing at the read timeout
// reports ErrReadTimeout.
func (p *Port) Read(b []byte) (int, error) {
	n, err := p.dev.Read(b)
	if err == nil && n == 0 && len(b) > 0 {
		return 0, ErrReadTimeout
	}
	return n, err
}

// Write writes b, giving up with ErrWriteTimeout after the write timeout.
// A timed-out write keeps running in the background until the port is
// closed.
func (p *Port) Write(b []byte) (int, error) {
	if p.writeTimeout <= 0 {
		return p.dev.Write(b)
	}

	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := p.dev.Write(b)
		done <- result{n, err}
	}()

	timer := time.NewTimer(p.writeTimeout)
	defer timer.Stop()

	select {
	case r := <-done:
		return r.n, r.err
	case <-timer.C:
		return 0, ErrWriteTimeout
	}
}

// ResetInputBuffer discards bytes received but not yet read.
func (p *Port) ResetInputBuffer() error {
	return p.dev.ResetInputBuffer()
}

// Close closes the port.
func (p *Port) Close() error {
	return p.dev.Close()
}

func (p *Port) closeWith(err error) error {
	_ = p.dev.Close()
	return err
}

// List returns the names of the serial ports present on the system.
func List() ([]string, error) {
	ports, err := listDevices()
	if err != nil {
		return nil, fmt.Errorf("listing ports: %w", err)
	}
	return ports, nil
}
