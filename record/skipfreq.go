package record

import (
	"fmt"

	"github.com/moffa90/go-radiocps/codec"
)

// SkipFrequency is the 16 group x 41 entry table of frequencies the radio
// skips while scanning.
type SkipFrequency struct {
	Groups [SkipGroupCount][SkipEntryCount]string

	model *Model
}

// NewSkipFrequency returns an empty table gated by model.
func NewSkipFrequency(model *Model) *SkipFrequency {
	return &SkipFrequency{model: model}
}

// Window implements Record.
func (s *SkipFrequency) Window() Window { return SkipFrequencyWindow }

// Encode implements Record.
func (s *SkipFrequency) Encode(base []byte) []byte {
	data := newBase(SkipFrequencyWindow, base)
	for g := range s.Groups {
		for e, freq := range s.Groups[g] {
			b := codec.FreqToBytes(freq)
			off := g*skipGroupStride + e*4
			copy(data[off:off+4], b[:])
		}
	}
	return data
}

// Decode implements Record.
func (s *SkipFrequency) Decode(data []byte) {
	mustLen("skip frequency", SkipFrequencyWindow, data)

	r := rangeOf(s.model)
	for g := range s.Groups {
		for e := range s.Groups[g] {
			off := g*skipGroupStride + e*4
			s.Groups[g][e] = codec.BytesToFreq(data[off:off+4], r)
		}
	}
}

// Export flattens the table group-major: flat index i is group i/41,
// entry i%41.
func (s *SkipFrequency) Export() []string {
	out := make([]string, 0, SkipGroupCount*SkipEntryCount)
	for g := range s.Groups {
		out = append(out, s.Groups[g][:]...)
	}
	return out
}

// Import loads a flat list produced by Export.
func (s *SkipFrequency) Import(freqs []string) error {
	if len(freqs) != SkipGroupCount*SkipEntryCount {
		return fmt.Errorf("skip frequency list has %d entries, want %d",
			len(freqs), SkipGroupCount*SkipEntryCount)
	}
	for i, f := range freqs {
		s.Groups[i/SkipEntryCount][i%SkipEntryCount] = f
	}
	return nil
}

// SetGroup fills a group around base (integer frequency unit): entries i and
// 40-i get base+(i+1)*10 kHz for i < 20, and the centre entry gets
// base+210 kHz.
func (s *SkipFrequency) SetGroup(group, base int) error {
	if group < 0 || group >= SkipGroupCount {
		return fmt.Errorf("skip frequency group %d out of range", group)
	}

	const step = 10000 // 10 kHz
	g := &s.Groups[group]
	for i := 0; i < SkipEntryCount/2; i++ {
		f := codec.DecToFreq(base + (i+1)*step)
		g[i] = f
		g[SkipEntryCount-1-i] = f
	}
	g[SkipEntryCount/2] = codec.DecToFreq(base + 210000)
	return nil
}
