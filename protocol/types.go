package protocol

// Chunk is one chunk-size aligned slice of the payload.
type Chunk struct {
	// Addr is the payload address of the first byte.
	Addr int

	// Len is the number of payload bytes.
	Len int
}

// End returns the address one past the chunk.
func (c Chunk) End() int {
	return c.Addr + c.Len
}

// HandshakeKind selects how a transfer is opened.
type HandshakeKind int

const (
	// HandshakeWake sends wake frames until the radio answers, then the
	// "Font" command.
	HandshakeWake HandshakeKind = iota

	// HandshakeDownload sends "DOWNLOAD", checks the hardware signature,
	// acknowledges it, erases and enters programming.
	HandshakeDownload
)

func (k HandshakeKind) String() string {
	switch k {
	case HandshakeWake:
		return "wake"
	case HandshakeDownload:
		return "download"
	default:
		return "unknown"
	}
}
