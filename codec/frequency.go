package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FreqScale converts MHz to the integer frequency unit (10 Hz).
const FreqScale = 100000

// Channel steps in the integer frequency unit.
const (
	Step5k    = 500 // 5 kHz
	Step6k25  = 625 // 6.25 kHz
	freqUnset = 0xFFFFFFFF
)

// Range is the inclusive frequency window accepted by the radio model,
// in the integer frequency unit.
type Range struct {
	Min int
	Max int
}

// DefaultRange is the 400-520 MHz window of the supported hardware.
var DefaultRange = Range{Min: 40000000, Max: 52000000}

// Contains reports whether freq lies within the range.
func (r Range) Contains(freq int) bool {
	return freq >= r.Min && freq <= r.Max
}

// FreqToDec parses a MHz decimal string into the integer frequency unit.
func FreqToDec(freq string) (int, error) {
	freq = strings.TrimSpace(freq)
	if freq == "" {
		return 0, fmt.Errorf("empty frequency")
	}

	f, err := strconv.ParseFloat(freq, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency %q: %w", freq, err)
	}
	if f < 0 || f*FreqScale > math.MaxInt32 {
		return 0, fmt.Errorf("frequency %q out of range", freq)
	}

	return int(math.Round(f * FreqScale)), nil
}

// DecToFreq formats an integer frequency as MHz with five fraction digits.
func DecToFreq(freq int) string {
	return fmt.Sprintf("%d.%05d", freq/FreqScale, freq%FreqScale)
}

// FreqToBytes encodes a frequency string as BCD32 little-endian.
// Empty or unparsable input encodes to FF FF FF FF.
func FreqToBytes(freq string) [4]byte {
	var out [4]byte

	dec, err := FreqToDec(freq)
	if err != nil {
		binary.LittleEndian.PutUint32(out[:], freqUnset)
		return out
	}

	binary.LittleEndian.PutUint32(out[:], DecToBCD32(uint32(dec)))
	return out
}

// BytesToFreq decodes four BCD32 little-endian bytes. It returns "" when the
// field is unset, malformed, or outside r.
func BytesToFreq(data []byte, r Range) string {
	if len(data) < 4 {
		return ""
	}

	bcd := binary.LittleEndian.Uint32(data)
	if !ValidBCD32(bcd) {
		return ""
	}

	dec := int(BCDToDec32(bcd))
	if !r.Contains(dec) {
		return ""
	}

	return DecToFreq(dec)
}

// FreqIsValid reports whether freq parses and lies within r.
func FreqIsValid(freq string, r Range) bool {
	dec, err := FreqToDec(freq)
	if err != nil {
		return false
	}
	return r.Contains(dec)
}

// FreqIs5kStep reports whether freq sits on a 5 kHz raster.
func FreqIs5kStep(freq string) bool {
	dec, err := FreqToDec(freq)
	if err != nil {
		return false
	}
	return dec%Step5k == 0
}

// AdjustFreq rounds freq up to the nearer next multiple of step1 or step2
// when it is a multiple of neither.
func AdjustFreq(freq, step1, step2 int) int {
	remain1 := freq % step1
	remain2 := freq % step2
	if remain1 == 0 || remain2 == 0 {
		return freq
	}

	upper1 := step1 - remain1
	upper2 := step2 - remain2
	if upper1 < upper2 {
		return freq + upper1
	}
	return freq + upper2
}

// NormalizeFreq snaps a user-entered frequency onto the 5 / 6.25 kHz raster.
// Empty input stays empty; anything outside r falls back to r.Min.
func NormalizeFreq(freq string, r Range) string {
	if strings.TrimSpace(freq) == "" {
		return ""
	}
	if !FreqIsValid(freq, r) {
		return DecToFreq(r.Min)
	}

	dec, _ := FreqToDec(freq)
	return DecToFreq(AdjustFreq(dec, Step5k, Step6k25))
}
