package record

import (
	"encoding/binary"

	"github.com/moffa90/go-radiocps/codec"
)

// DefaultModelRange is the band installed by every Model decode.
var DefaultModelRange = codec.DefaultRange

// Model holds the frequency range of the radio model. Frequency decoding in
// Channels and SkipFrequency is gated by it.
type Model struct {
	MinFreq int
	MaxFreq int
}

// NewModel returns a Model covering DefaultModelRange.
func NewModel() *Model {
	return &Model{MinFreq: DefaultModelRange.Min, MaxFreq: DefaultModelRange.Max}
}

// Range returns the model's frequency window.
func (m *Model) Range() codec.Range {
	return codec.Range{Min: m.MinFreq, Max: m.MaxFreq}
}

// Window implements Record.
func (m *Model) Window() Window { return ModelWindow }

// Encode implements Record.
func (m *Model) Encode(base []byte) []byte {
	data := newBase(ModelWindow, base)
	binary.LittleEndian.PutUint32(data[0:4], codec.DecToBCD32(uint32(m.MinFreq)))
	binary.LittleEndian.PutUint32(data[4:8], codec.DecToBCD32(uint32(m.MaxFreq)))
	return data
}

// Decode implements Record. The stored bounds are read and then replaced by
// DefaultModelRange.
func (m *Model) Decode(data []byte) {
	mustLen("model", ModelWindow, data)

	m.MinFreq = int(codec.BCDToDec32(binary.LittleEndian.Uint32(data[0:4])))
	m.MaxFreq = int(codec.BCDToDec32(binary.LittleEndian.Uint32(data[4:8])))

	// TODO: honour the stored band once a second hardware band ships.
	m.MinFreq = DefaultModelRange.Min
	m.MaxFreq = DefaultModelRange.Max
}

// rangeOf returns the model range, or the default when no model is wired.
func rangeOf(m *Model) codec.Range {
	if m == nil {
		return DefaultModelRange
	}
	return m.Range()
}
