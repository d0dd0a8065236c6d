package record

import (
	"github.com/moffa90/go-radiocps/bitfield"
	"github.com/moffa90/go-radiocps/codec"
)

// Channel is one memory channel. An empty RxFreq marks the slot as
// unprogrammed.
type Channel struct {
	RxFreq    string      `yaml:"rx_freq"`
	TxFreq    string      `yaml:"tx_freq"`
	RxTone    string      `yaml:"rx_tone"`
	TxTone    string      `yaml:"tx_tone"`
	Power     Power       `yaml:"power"`
	Bandwidth Bandwidth   `yaml:"bandwidth"`
	Scan      Scan        `yaml:"scan"`
	Squelch   SquelchMode `yaml:"squelch"`
}

// Empty reports whether the channel is unprogrammed.
func (c *Channel) Empty() bool {
	return c.RxFreq == ""
}

// Channel record layout.
const (
	chRxFreq      = 0
	chTxFreq      = 4
	chRxTone      = 8
	chTxTone      = 10
	chFlags       = 12
	chSquelch     = 14
	powerBit      = 6
	bandwidthBit  = 0
	bandwidthWide = 2
)

// encodeChannel writes c over a 16-byte base record.
func encodeChannel(c *Channel, data []byte) {
	if c.Empty() {
		for i := range data {
			data[i] = 0xFF
		}
		return
	}

	rx := codec.FreqToBytes(c.RxFreq)
	tx := codec.FreqToBytes(c.TxFreq)
	rxTone := codec.ToneToBytes(c.RxTone)
	txTone := codec.ToneToBytes(c.TxTone)
	copy(data[chRxFreq:], rx[:])
	copy(data[chTxFreq:], tx[:])
	copy(data[chRxTone:], rxTone[:])
	copy(data[chTxTone:], txTone[:])

	data[chFlags] = bitfield.Set(data[chFlags], powerBit, 2, int(c.Power))
	bw := 0
	if c.Bandwidth == BandwidthWide {
		bw = bandwidthWide
	}
	data[chFlags] = bitfield.Set(data[chFlags], bandwidthBit, 2, bw)
	data[chSquelch] = bitfield.Set(data[chSquelch], 0, 4, int(c.Squelch))
}

// decodeChannel loads c from a 16-byte record. The scan flag is owned by the
// scan index and is only cleared for unprogrammed slots.
func decodeChannel(c *Channel, data []byte, r codec.Range) {
	c.RxFreq = codec.BytesToFreq(data[chRxFreq:chRxFreq+4], r)
	if c.RxFreq == "" {
		*c = Channel{}
		return
	}

	c.TxFreq = codec.BytesToFreq(data[chTxFreq:chTxFreq+4], r)
	c.RxTone = codec.BytesToTone(data[chRxTone : chRxTone+2])
	c.TxTone = codec.BytesToTone(data[chTxTone : chTxTone+2])

	c.Power = PowerLow
	if p := bitfield.Get(data[chFlags], powerBit, 2); int(p) < len(powerNames) {
		c.Power = Power(p)
	}

	c.Bandwidth = BandwidthNarrow
	if bitfield.Get(data[chFlags], bandwidthBit, 2) == bandwidthWide {
		c.Bandwidth = BandwidthWide
	}

	c.Squelch = SquelchNone
	if m := bitfield.Get(data[chSquelch], 0, 4); int(m) < len(squelchNames) {
		c.Squelch = SquelchMode(m)
	}
}

// Channels is the 100-slot channel table.
type Channels struct {
	Slots [ChannelCount]Channel

	model *Model
}

// NewChannels returns an empty channel table whose frequency decoding is
// gated by model. A nil model uses DefaultModelRange.
func NewChannels(model *Model) *Channels {
	return &Channels{model: model}
}

// Window implements Record.
func (c *Channels) Window() Window { return ChannelWindow }

// Encode implements Record.
func (c *Channels) Encode(base []byte) []byte {
	data := newBase(ChannelWindow, base)
	for i := range c.Slots {
		off := i * ChannelSize
		encodeChannel(&c.Slots[i], data[off:off+ChannelSize])
	}
	return data
}

// Decode implements Record.
func (c *Channels) Decode(data []byte) {
	mustLen("channel", ChannelWindow, data)

	r := rangeOf(c.model)
	for i := range c.Slots {
		off := i * ChannelSize
		decodeChannel(&c.Slots[i], data[off:off+ChannelSize], r)
	}
}

// InitFirst programs slot 0 as a simplex channel on freq (integer frequency
// unit) with high power and no tones.
func (c *Channels) InitFirst(freq int) {
	f := codec.DecToFreq(freq)
	c.Slots[0] = Channel{
		RxFreq:    f,
		TxFreq:    f,
		RxTone:    codec.ToneNone,
		TxTone:    codec.ToneNone,
		Power:     PowerHigh,
		Bandwidth: BandwidthNarrow,
		Scan:      ScanAllow,
		Squelch:   SquelchNone,
	}
}

// Clear erases every slot.
func (c *Channels) Clear() {
	for i := range c.Slots {
		c.Slots[i] = Channel{}
	}
}

// FirstUsed returns the index of the first programmed slot, or 0.
func (c *Channels) FirstUsed() int {
	for i := range c.Slots {
		if !c.Slots[i].Empty() {
			return i
		}
	}
	return 0
}

// Used reports whether the 1-based channel number is programmed.
func (c *Channels) Used(number int) bool {
	i := number - 1
	if i < 0 || i >= ChannelCount {
		return false
	}
	return !c.Slots[i].Empty()
}
