package transfer

import (
	"time"

	"github.com/moffa90/go-radiocps/protocol"
)

// Messages are the human-readable strings carried by final events.
type Messages struct {
	// Success is the status of the final event of a completed upload
	Success string

	// CommError is the status of protocol failures and timeouts
	CommError string

	// OpenPortError is the status when the serial port cannot be opened
	OpenPortError string

	// ReadUnsupported is the status of a read request
	ReadUnsupported string
}

// DefaultMessages are the built-in English messages.
var DefaultMessages = Messages{
	Success:         "Communication success",
	CommError:       "Communication error",
	OpenPortError:   "Failed to open the serial port",
	ReadUnsupported: "Reading from the radio is not supported",
}

// Config holds the engine configuration.
type Config struct {
	// ProgressCallback is called for every transfer event (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// Variant selects the upload protocol
	Variant protocol.Variant

	// ReadTimeout overrides the variant read timeout when non-zero
	ReadTimeout time.Duration

	// WriteTimeout overrides the variant write timeout when non-zero
	WriteTimeout time.Duration

	// ReadRetries is the number of extra reads allowed to complete a
	// reply that arrives fragmented
	ReadRetries int

	// RetryDelay is the pause between those reads
	RetryDelay time.Duration

	// Messages are the event status strings
	Messages Messages
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Variant:     protocol.VariantUpgrade,
		ReadRetries: 5,
		RetryDelay:  10 * time.Millisecond,
		Messages:    DefaultMessages,
	}
}

// readTimeout returns the effective port read timeout.
func (c Config) readTimeout() time.Duration {
	if c.ReadTimeout > 0 {
		return c.ReadTimeout
	}
	return c.Variant.ReadTimeout
}

// writeTimeout returns the effective port write timeout.
func (c Config) writeTimeout() time.Duration {
	if c.WriteTimeout > 0 {
		return c.WriteTimeout
	}
	return c.Variant.WriteTimeout
}

// Option is a functional option for configuring the Engine.
type Option func(*Config)

// WithProgressCallback sets a callback function to track transfer progress.
//
// Example:
//
//	eng := transfer.New(open,
//	    transfer.WithProgressCallback(func(p transfer.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the engine operations.
//
// Example:
//
//	eng := transfer.New(open, transfer.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithVariant selects the upload protocol. Default is protocol.VariantUpgrade.
//
// Example:
//
//	eng := transfer.New(open, transfer.WithVariant(protocol.VariantFont))
func WithVariant(v protocol.Variant) Option {
	return func(c *Config) {
		c.Variant = v
	}
}

// WithReadTimeout overrides the variant read timeout passed to the opener.
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.ReadTimeout = timeout
	}
}

// WithWriteTimeout overrides the variant write timeout passed to the opener.
func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.WriteTimeout = timeout
	}
}

// WithReadRetries sets how many extra reads may complete a fragmented reply.
//
// Example:
//
//	eng := transfer.New(open, transfer.WithReadRetries(10))
func WithReadRetries(retries int) Option {
	return func(c *Config) {
		if retries >= 0 {
			c.ReadRetries = retries
		}
	}
}

// WithRetryDelay sets the pause between reads of a fragmented reply.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.RetryDelay = delay
		}
	}
}

// WithMessages replaces the event status strings, typically with a
// translated set.
//
// Example:
//
//	eng := transfer.New(open, transfer.WithMessages(lang.Messages()))
func WithMessages(m Messages) Option {
	return func(c *Config) {
		c.Messages = m
	}
}
