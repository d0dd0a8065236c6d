package protocol

import (
	"errors"
	"fmt"
)

// ProtocolError reports an unexpected reply from the radio.
type ProtocolError struct {
	// Operation is the step that failed
	Operation string

	// Got is the reply received
	Got []byte

	// Want is the reply expected
	Want []byte
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s failed: got %s, want %s",
		e.Operation, describeReply(e.Got), describeReply(e.Want))
}

// IsProtocolError returns true if err is or wraps a ProtocolError.
func IsProtocolError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}

// describeReply renders a reply as hex, naming the single-byte responses.
func describeReply(b []byte) string {
	if len(b) == 0 {
		return "nothing"
	}
	if len(b) == 1 {
		switch b[0] {
		case Ack:
			return "41 (ACK)"
		case Nack:
			return "4E (NACK)"
		}
	}
	if printable(b) {
		return fmt.Sprintf("% X (%q)", b, b)
	}
	return fmt.Sprintf("% X", b)
}

func printable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return len(b) > 1
}
