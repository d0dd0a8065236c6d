package protocol

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Image sizes of the two product variants.
const (
	FontImageSize    = 458752
	UpgradeImageSize = 524288
)

// Variant holds the parameters that distinguish one product's upload
// protocol from another's.
type Variant struct {
	// Name identifies the variant in logs.
	Name string

	// ImageSize is the full EEPROM image size.
	ImageSize int

	// ChunkSize is the payload alignment and maximum chunk length.
	ChunkSize int

	// FragmentSize splits every chunk and the END frame into separate
	// writes. Zero writes each frame at once.
	FragmentSize int

	// AddressHeader prefixes every chunk with BuildChunkHeader.
	AddressHeader bool

	// Checksum appends Sum32 of the payload to the END frame.
	Checksum bool

	// Handshake selects the opening sequence.
	Handshake HandshakeKind

	// PayloadOffset is the image offset of payload address 0.
	PayloadOffset int

	// EndFromHeader reads the payload end address from the image header
	// instead of using the rest of the image.
	EndFromHeader bool

	// ReadTimeout and WriteTimeout configure the serial port.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// WakeAttempts and WakeInterval drive HandshakeWake.
	WakeAttempts int
	WakeInterval time.Duration
}

// VariantFont is the font/configuration upload protocol.
var VariantFont = Variant{
	Name:          "font",
	ImageSize:     FontImageSize,
	ChunkSize:     4096,
	FragmentSize:  1024,
	AddressHeader: false,
	Checksum:      false,
	Handshake:     HandshakeWake,
	PayloadOffset: 0,
	EndFromHeader: false,
	ReadTimeout:   5 * time.Second,
	WriteTimeout:  1 * time.Second,
	WakeAttempts:  25,
	WakeInterval:  200 * time.Millisecond,
}

// VariantUpgrade is the firmware upgrade protocol.
var VariantUpgrade = Variant{
	Name:          "upgrade",
	ImageSize:     UpgradeImageSize,
	ChunkSize:     1024,
	FragmentSize:  0,
	AddressHeader: true,
	Checksum:      true,
	Handshake:     HandshakeDownload,
	PayloadOffset: HeaderSize,
	EndFromHeader: true,
	ReadTimeout:   5 * time.Second,
	WriteTimeout:  2 * time.Second,
}

// Variants lists the built-in variants by name.
var Variants = map[string]Variant{
	VariantFont.Name:    VariantFont,
	VariantUpgrade.Name: VariantUpgrade,
}

// LookupVariant returns the built-in variant with the given name.
func LookupVariant(name string) (Variant, error) {
	v, ok := Variants[name]
	if !ok {
		return Variant{}, fmt.Errorf("unknown protocol variant %q", name)
	}
	return v, nil
}

// PayloadEnd returns the end address of the payload carried by image.
func (v Variant) PayloadEnd(image []byte) (int, error) {
	if v.ChunkSize <= 0 {
		return 0, fmt.Errorf("%s: invalid chunk size %d", v.Name, v.ChunkSize)
	}
	if len(image) < v.PayloadOffset {
		return 0, fmt.Errorf("%s: image is %d bytes, shorter than payload offset %d",
			v.Name, len(image), v.PayloadOffset)
	}

	if !v.EndFromHeader {
		return len(image) - v.PayloadOffset, nil
	}

	if len(image) < EndAddressOffset+4 {
		return 0, fmt.Errorf("%s: image too short for header", v.Name)
	}
	end := int(binary.BigEndian.Uint32(image[EndAddressOffset:]))
	if end <= 0 || v.PayloadOffset+end > len(image) {
		return 0, fmt.Errorf("%s: end address 0x%X outside image of %d bytes", v.Name, end, len(image))
	}
	return end, nil
}

// Payload returns the image bytes of chunk c.
func (v Variant) Payload(image []byte, c Chunk) []byte {
	off := v.PayloadOffset + c.Addr
	return image[off : off+c.Len]
}

// Signature returns the handshake reply expected for image: SignatureV2
// when the header marks second generation hardware, SignatureUpdate
// otherwise.
func Signature(image []byte) []byte {
	if len(image) > HardwareOffset && image[HardwareOffset] == '2' {
		return SignatureV2
	}
	return SignatureUpdate
}
