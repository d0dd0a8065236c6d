package record

import "github.com/moffa90/go-radiocps/bitfield"

// Index bitmaps carry one bit per slot, LSB first; a set bit marks the slot
// as unavailable. They are rebuilt from zero on every encode and never
// decoded.

func setIndexBit(data []byte, i int, set bool) {
	data[i/8] = bitfield.Set(data[i/8], i%8, 1, boolBit(set))
}

// ChannelIndex marks empty channel slots.
type ChannelIndex struct {
	Channels *Channels
}

// Window implements Record.
func (x *ChannelIndex) Window() Window { return ChannelIndexWindow }

// Encode implements Record. The base is ignored.
func (x *ChannelIndex) Encode(base []byte) []byte {
	data := make([]byte, ChannelIndexWindow.Length)
	for i := range x.Channels.Slots {
		setIndexBit(data, i, x.Channels.Slots[i].Empty())
	}
	return data
}

// Decode implements Record. It is a no-op; the channel table is
// authoritative.
func (x *ChannelIndex) Decode(data []byte) {
	mustLen("channel index", ChannelIndexWindow, data)
}

// ScanIndex marks channels that are empty or excluded from scanning.
type ScanIndex struct {
	Channels *Channels
}

// Window implements Record.
func (x *ScanIndex) Window() Window { return ScanIndexWindow }

// Encode implements Record. The base is ignored.
func (x *ScanIndex) Encode(base []byte) []byte {
	data := make([]byte, ScanIndexWindow.Length)
	for i := range x.Channels.Slots {
		ch := &x.Channels.Slots[i]
		setIndexBit(data, i, ch.Empty() || ch.Scan != ScanAllow)
	}
	return data
}

// Decode implements Record. It is a no-op: channel scan flags are not
// restored from the stored bitmap.
func (x *ScanIndex) Decode(data []byte) {
	mustLen("scan index", ScanIndexWindow, data)
}

// ContactIndex marks empty DTMF contact slots.
type ContactIndex struct {
	Contacts *DTMFContacts
}

// Window implements Record.
func (x *ContactIndex) Window() Window { return ContactIndexWindow }

// Encode implements Record. The base is ignored.
func (x *ContactIndex) Encode(base []byte) []byte {
	data := make([]byte, ContactIndexWindow.Length)
	for i, c := range x.Contacts.Codes {
		setIndexBit(data, i, c == "")
	}
	return data
}

// Decode implements Record. It is a no-op.
func (x *ContactIndex) Decode(data []byte) {
	mustLen("contact index", ContactIndexWindow, data)
}
