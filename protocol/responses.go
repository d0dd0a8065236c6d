package protocol

import "bytes"

// IsAck reports whether b acknowledges the previous frame.
func IsAck(b byte) bool {
	return b == Ack
}

// CheckAck validates a single-byte reply to the named operation.
func CheckAck(operation string, reply []byte) error {
	if len(reply) == 1 && IsAck(reply[0]) {
		return nil
	}
	return &ProtocolError{
		Operation: operation,
		Got:       append([]byte(nil), reply...),
		Want:      []byte{Ack},
	}
}

// CheckSignature validates the handshake reply against want.
func CheckSignature(reply, want []byte) error {
	if bytes.Equal(reply, want) {
		return nil
	}
	return &ProtocolError{
		Operation: "handshake",
		Got:       append([]byte(nil), reply...),
		Want:      append([]byte(nil), want...),
	}
}
