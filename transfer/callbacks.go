package transfer

import "time"

// State is the phase of a transfer.
type State int32

const (
	// StateIdle is a transfer that has not started.
	StateIdle State = iota

	// StateHandshaking is opening the port and running the handshake.
	StateHandshaking

	// StateUploading is sending payload chunks.
	StateUploading

	// StateFinalizing is sending the END frame.
	StateFinalizing

	// StateClosed is a finished transfer, successful or failed.
	StateClosed

	// StateCancelled is a transfer stopped by Cancel or its context.
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHandshaking:
		return "handshaking"
	case StateUploading:
		return "uploading"
	case StateFinalizing:
		return "finalizing"
	case StateClosed:
		return "closed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Progress contains information about the transfer progress.
// Delivered on Transfer.Events and to the ProgressCallback.
type Progress struct {
	// Phase is the engine state that produced the event
	Phase State

	// Chunk is the number of chunks acknowledged so far
	Chunk int

	// TotalChunks is the number of chunks in the payload
	TotalChunks int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// Address is the payload address of the last acknowledged chunk
	Address int

	// BytesWritten is the number of payload bytes acknowledged so far
	BytesWritten int

	// ElapsedTime is the time elapsed since the transfer started
	ElapsedTime time.Duration

	// Status is the chunk address for chunk events, or a human-readable
	// message for the final event
	Status string

	// Failed is set on the failure event
	Failed bool

	// Closed is set on the last event of a transfer; the port is closed
	Closed bool

	// Err is the cause of a failure event
	Err error
}

// ProgressCallback is called from the transfer goroutine for every event,
// before the event is posted to Transfer.Events. Implementations should
// return quickly to avoid stalling the upload.
//
// Example:
//
//	eng := transfer.New(open,
//	    transfer.WithProgressCallback(func(p transfer.Progress) {
//	        fmt.Printf("%.0f%% %s\n", p.Percentage, p.Status)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the engine.
// This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	eng := transfer.New(open, transfer.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
