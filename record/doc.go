// Package record implements the binary codecs for every configuration
// record stored in the radio's EEPROM image.
//
// Each record owns a fixed Window of the image and satisfies Record:
//
//	type Record interface {
//	    Window() Window
//	    Encode(base []byte) []byte
//	    Decode(data []byte)
//	}
//
// # Encoding
//
// Encode takes the current image bytes of the record's window as base and
// returns a new slice of exactly Window().Length bytes. Only the fields the
// record owns are overwritten, so reserved and unknown bits survive a
// re-encode. A nil base is treated as an erased (0xFF) window.
//
//	ch := record.NewChannels(model)
//	ch.Slots[0].RxFreq = "435.02500"
//	w := ch.Window()
//	out := ch.Encode(image[w.Offset:w.End()])
//
// # Decoding
//
// Decode requires exactly Window().Length bytes and panics otherwise; a
// wrong-length slice is a programming error. Numeric sub-fields never fail:
// malformed frequencies and tones decode to "".
//
// # Derived records
//
// ChannelIndex, ScanIndex and ContactIndex are bitmaps recomputed from the
// channel and contact arrays on every encode. Their Decode is a no-op: the
// arrays are authoritative and the bitmaps are never read back.
//
// Model decoding always installs DefaultModelRange regardless of the stored
// bytes; the radio firmware does not honour any other band.
//
// # Address map
//
//	Channels        128  1600
//	Model          1792     8
//	Basic          1800    16
//	TOT            1824     8
//	Buttons        1840     8
//	ChannelIndex   1856    16
//	ScanBasic      1888     8
//	ScanIndex      1920    16
//	DTMFBasic      1952    88
//	ContactIndex   2096     8
//	DTMFContacts   2112   256
//	SkipFrequency  2384  2816
package record
