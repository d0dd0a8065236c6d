// Package transfer uploads EEPROM images to the radio over a serial port.
//
// # Overview
//
// One Engine implements both product protocols, selected with a
// protocol.Variant. A write transfer runs these states:
//
//	Idle -> Handshaking -> Uploading -> Finalizing -> Closed
//	                           |
//	                           +-> Cancelled
//
//   - Open the port through the caller's OpenFunc
//   - Run the variant handshake
//   - Send every chunk and wait for its ACK
//   - Send the END frame, with the payload checksum when the variant has one
//   - Close the port
//
// Every failure is terminal: the port is closed, one event with Failed and
// Closed set is emitted, and the error is returned. Nothing is retried; the
// caller restarts the whole transfer.
//
// # Basic Usage
//
//	eng := transfer.New(serialport.Opener("/dev/ttyUSB0", 115200))
//
//	if err := eng.Write(context.Background(), st.Image); err != nil {
//	    log.Fatal(err)
//	}
//
// # Asynchronous Transfers
//
// Start runs the transfer in its own goroutine. Events arrive on a channel
// that is closed when the transfer ends:
//
//	t := eng.Start(ctx, transfer.DirectionWrite, st.Image)
//	for p := range t.Events() {
//	    if p.Failed {
//	        fmt.Println(p.Status, p.Err)
//	    }
//	}
//	err := t.Wait()
//
// # Cancellation
//
// Transfer.Cancel or cancelling the context stops the upload at the next
// chunk boundary. The engine sends "END\0", reads one byte, closes the port
// and returns ErrCancelled without a final event.
//
// # Configuration Options
//
//	eng := transfer.New(open,
//	    transfer.WithVariant(protocol.VariantFont),
//	    transfer.WithProgressCallback(progressFunc),
//	    transfer.WithLogger(myLogger),
//	    transfer.WithReadRetries(5),
//	    transfer.WithMessages(lang.Messages()),
//	)
//
// # Logging
//
// Any type with Debug, Info and Error methods taking a message and key-value
// pairs satisfies Logger. The logging package adapts zerolog.
//
// # Error Handling
//
//	err := eng.Write(ctx, image)
//	switch {
//	case errors.Is(err, transfer.ErrCancelled):
//	    // stopped by the user
//	case protocol.IsProtocolError(err):
//	    // the radio answered with something other than ACK
//	case transfer.IsTimeout(err):
//	    // the radio did not answer
//	}
//
// # Reading
//
// The radio firmware has no read command. Read and DirectionWrite's
// counterpart DirectionRead report one failure event and return
// ErrReadUnsupported.
package transfer
