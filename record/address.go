package record

import "fmt"

// Window is the (offset, length) slot a record occupies in the image.
type Window struct {
	Offset int
	Length int
}

// End returns the offset one past the last byte of the window.
func (w Window) End() int {
	return w.Offset + w.Length
}

// Overlaps reports whether w and o share any byte.
func (w Window) Overlaps(o Window) bool {
	return w.Offset < o.End() && o.Offset < w.End()
}

func (w Window) String() string {
	return fmt.Sprintf("[%d, %d)", w.Offset, w.End())
}

// Record windows in the EEPROM image.
var (
	ChannelWindow       = Window{Offset: 128, Length: 1600}
	ModelWindow         = Window{Offset: 1792, Length: 8}
	BasicWindow         = Window{Offset: 1800, Length: 16}
	TOTWindow           = Window{Offset: 1824, Length: 8}
	ButtonWindow        = Window{Offset: 1840, Length: 8}
	ChannelIndexWindow  = Window{Offset: 1856, Length: 16}
	ScanBasicWindow     = Window{Offset: 1888, Length: 8}
	ScanIndexWindow     = Window{Offset: 1920, Length: 16}
	DTMFBasicWindow     = Window{Offset: 1952, Length: 88}
	ContactIndexWindow  = Window{Offset: 2096, Length: 8}
	DTMFContactWindow   = Window{Offset: 2112, Length: 256}
	SkipFrequencyWindow = Window{Offset: 2384, Length: 2816}
)

// Table sizes.
const (
	ChannelCount    = 100
	ChannelSize     = 16
	ContactCount    = 16
	SkipGroupCount  = 16
	SkipEntryCount  = 41
	skipGroupStride = 176
)

// Record is the codec contract shared by every configuration record.
type Record interface {
	// Window returns the record's slot in the image.
	Window() Window

	// Encode returns the record bytes, starting from base and overwriting
	// only the fields this record owns.
	Encode(base []byte) []byte

	// Decode loads the record fields from exactly Window().Length bytes.
	Decode(data []byte)
}

// newBase copies base into a fresh buffer of w.Length bytes. Bytes base does
// not cover are 0xFF.
func newBase(w Window, base []byte) []byte {
	data := make([]byte, w.Length)
	n := copy(data, base)
	for i := n; i < len(data); i++ {
		data[i] = 0xFF
	}
	return data
}

// mustLen panics when data does not match the window length.
func mustLen(name string, w Window, data []byte) {
	if len(data) != w.Length {
		panic(fmt.Sprintf("record: %s decode needs %d bytes, got %d", name, w.Length, len(data)))
	}
}

// boolBit maps a flag onto a single-bit field value.
func boolBit(v bool) int {
	if v {
		return 1
	}
	return 0
}
