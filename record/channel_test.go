package record

import (
	"bytes"
	"testing"
)

func sampleChannel() Channel {
	return Channel{
		RxFreq:    "435.02500",
		TxFreq:    "440.02500",
		RxTone:    "88.5",
		TxTone:    "D023N",
		Power:     PowerHigh,
		Bandwidth: BandwidthWide,
		Scan:      ScanAllow,
		Squelch:   SquelchCTDCSOrOptional,
	}
}

func TestChannelEncodeLayout(t *testing.T) {
	ch := NewChannels(nil)
	ch.Slots[0] = sampleChannel()

	data := ch.Encode(nil)
	got := data[0:ChannelSize]
	want := []byte{
		0x00, 0x25, 0x50, 0x43, // rx 435.02500
		0x00, 0x25, 0x00, 0x44, // tx 440.02500
		0x08, 0x85, // rx tone 88.5
		0x80, 0x23, // tx tone D023N
		0x7E,       // 0xFF base: power=01 in bits 6-7, bandwidth=10 in bits 0-1
		0xFF,       // reserved
		0xF3,       // squelch 3 in bits 0-3
		0xFF,       // reserved
	}
	if !bytes.Equal(got, want) {
		t.Errorf("channel record =\n% X\nwant\n% X", got, want)
	}
}

func TestChannelEmptyRecord(t *testing.T) {
	ch := NewChannels(nil)
	base := make([]byte, ChannelWindow.Length) // all zero, must still become 0xFF

	data := ch.Encode(base)
	for i, b := range data[:ChannelSize] {
		if b != 0xFF {
			t.Fatalf("empty channel byte %d = 0x%02X, want 0xFF", i, b)
		}
	}

	ch.Slots[3] = sampleChannel()
	ch.Decode(bytes.Repeat([]byte{0xFF}, ChannelWindow.Length))
	if ch.Slots[3] != (Channel{}) {
		t.Errorf("decoding an erased record left %+v", ch.Slots[3])
	}
}

func TestChannelRoundTrip(t *testing.T) {
	src := NewChannels(nil)
	src.Slots[0] = sampleChannel()
	src.Slots[1] = Channel{
		RxFreq:  "446.00625",
		TxFreq:  "446.00625",
		RxTone:  "None",
		TxTone:  "D754I",
		Power:   PowerLow,
		Squelch: SquelchCTDCSAndOptional,
	}
	src.Slots[99] = Channel{RxFreq: "400.00000", TxFreq: "", RxTone: "None", TxTone: "None"}

	dst := NewChannels(nil)
	dst.Decode(src.Encode(nil))

	for i := range src.Slots {
		want := src.Slots[i]
		if dst.Slots[i] != want {
			t.Errorf("slot %d = %+v, want %+v", i, dst.Slots[i], want)
		}
	}
}

func TestChannelKeepsReservedBits(t *testing.T) {
	base := make([]byte, ChannelWindow.Length)
	base[chFlags] = 0x3C // bits 2-5 reserved
	base[13] = 0xA5
	base[chSquelch] = 0xB0

	ch := NewChannels(nil)
	ch.Slots[0] = sampleChannel()
	data := ch.Encode(base)

	if data[chFlags]&0x3C != 0x3C {
		t.Errorf("reserved flag bits lost: 0x%02X", data[chFlags])
	}
	if data[13] != 0xA5 {
		t.Errorf("byte 13 = 0x%02X, want 0xA5", data[13])
	}
	if data[chSquelch] != 0xB3 {
		t.Errorf("squelch byte = 0x%02X, want 0xB3", data[chSquelch])
	}
}

func TestChannelDecodeOutOfRangeFields(t *testing.T) {
	ch := NewChannels(nil)
	ch.Slots[0] = sampleChannel()
	data := ch.Encode(nil)

	data[chFlags] = 0xC1 // power bits = 3, bandwidth bits = 1
	data[chSquelch] = 0x0F

	ch.Decode(data)
	got := ch.Slots[0]
	if got.Power != PowerLow {
		t.Errorf("Power = %v, want low", got.Power)
	}
	if got.Bandwidth != BandwidthNarrow {
		t.Errorf("Bandwidth = %v, want narrow", got.Bandwidth)
	}
	if got.Squelch != SquelchNone {
		t.Errorf("Squelch = %v, want none", got.Squelch)
	}
}

func TestChannelDecodeRespectsModelRange(t *testing.T) {
	ch := NewChannels(nil)
	ch.Slots[0] = sampleChannel()
	data := ch.Encode(nil)

	narrow := &Model{MinFreq: 43000000, MaxFreq: 43600000}
	dst := NewChannels(narrow)
	dst.Decode(data)

	if dst.Slots[0].RxFreq != "435.02500" {
		t.Errorf("RxFreq = %q, want 435.02500", dst.Slots[0].RxFreq)
	}
	if dst.Slots[0].TxFreq != "" {
		t.Errorf("TxFreq = %q, want empty (out of range)", dst.Slots[0].TxFreq)
	}
}

func TestChannelDecodeLeavesScanFlag(t *testing.T) {
	ch := NewChannels(nil)
	ch.Slots[0] = sampleChannel()
	ch.Slots[0].Scan = ScanProhibit
	data := ch.Encode(nil)

	ch.Decode(data)
	if ch.Slots[0].Scan != ScanProhibit {
		t.Errorf("Scan = %v, want prohibit", ch.Slots[0].Scan)
	}
}

func TestChannelHelpers(t *testing.T) {
	ch := NewChannels(nil)
	if ch.FirstUsed() != 0 {
		t.Errorf("FirstUsed() on empty table = %d, want 0", ch.FirstUsed())
	}

	ch.InitFirst(40000000)
	first := ch.Slots[0]
	if first.RxFreq != "400.00000" || first.TxFreq != "400.00000" {
		t.Errorf("InitFirst frequencies = %q/%q", first.RxFreq, first.TxFreq)
	}
	if first.Power != PowerHigh || first.RxTone != "None" {
		t.Errorf("InitFirst = %+v", first)
	}

	ch.Slots[5].RxFreq = "435.00000"
	ch.Slots[0] = Channel{}
	if ch.FirstUsed() != 5 {
		t.Errorf("FirstUsed() = %d, want 5", ch.FirstUsed())
	}
	if !ch.Used(6) || ch.Used(1) || ch.Used(0) || ch.Used(101) {
		t.Error("Used() reported wrong slots")
	}

	ch.Clear()
	if ch.Used(6) {
		t.Error("Clear() left slot 6 programmed")
	}
}
