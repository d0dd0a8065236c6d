package firmware

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// Header layout of an upgrade file.
const (
	HeaderSize = 0x50

	vendorOffset   = 0x00
	modelOffset    = 0x10
	versionOffset  = 0x20
	versionLength  = 16
	hardwareOffset = 0x31
	endOffset      = 0x40

	// MaxPayloadEnd is the flash size of the radio.
	MaxPayloadEnd = 524288
)

// Signatures every upgrade header carries.
var (
	VendorSignature = []byte("BaoFeng")
	ModelSignature  = []byte("BF_5RH")
	VersionPrefix   = byte('V')
)

// Header is a parsed upgrade file header.
type Header struct {
	// Vendor is the vendor signature
	Vendor string

	// Model is the model signature
	Model string

	// Version is the firmware version string, e.g. "V1.07"
	Version string

	// Hardware is the hardware generation byte
	Hardware byte

	// PayloadEnd is the number of payload bytes after the header
	PayloadEnd int
}

// SecondGeneration reports whether the file targets second generation
// hardware, which answers the handshake with "V2_00_00".
func (h *Header) SecondGeneration() bool {
	return h.Hardware == '2'
}

// HeaderError indicates a malformed upgrade file header.
type HeaderError struct {
	Field  string
	Reason string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("invalid header %s: %s", e.Field, e.Reason)
}

// ParseHeader validates and parses the header at the start of data.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, &HeaderError{
			Field:  "length",
			Reason: fmt.Sprintf("got %d bytes, need %d", len(data), HeaderSize),
		}
	}

	if !bytes.HasPrefix(data[vendorOffset:], VendorSignature) {
		return nil, &HeaderError{Field: "vendor", Reason: fmt.Sprintf("missing %q signature", VendorSignature)}
	}
	if !bytes.HasPrefix(data[modelOffset:], ModelSignature) {
		return nil, &HeaderError{Field: "model", Reason: fmt.Sprintf("missing %q signature", ModelSignature)}
	}
	if data[versionOffset] != VersionPrefix {
		return nil, &HeaderError{Field: "version", Reason: "missing version information"}
	}

	end := binary.BigEndian.Uint32(data[endOffset:])
	if end == 0 || end > MaxPayloadEnd {
		return nil, &HeaderError{Field: "payload end", Reason: fmt.Sprintf("%d out of range 1-%d", end, MaxPayloadEnd)}
	}

	return &Header{
		Vendor:     string(VendorSignature),
		Model:      string(ModelSignature),
		Version:    cString(data[versionOffset : versionOffset+versionLength]),
		Hardware:   data[hardwareOffset],
		PayloadEnd: int(end),
	}, nil
}

// ReadFile reads an upgrade file and validates its header. The payload must
// fit in the file.
//
// Example:
//
//	data, hdr, err := firmware.ReadFile("BF-5RH.dat")
func ReadFile(path string) ([]byte, *Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	hdr, err := ParseHeader(data)
	if err != nil {
		return nil, nil, err
	}
	if HeaderSize+hdr.PayloadEnd > len(data) {
		return nil, nil, &HeaderError{
			Field:  "payload end",
			Reason: fmt.Sprintf("%d bytes of payload but file has %d", hdr.PayloadEnd, len(data)-HeaderSize),
		}
	}
	return data, hdr, nil
}

// cString returns b up to the first NUL or 0xFF byte.
func cString(b []byte) string {
	for i, c := range b {
		if c == 0x00 || c == 0xFF {
			return string(b[:i])
		}
	}
	return string(b)
}
