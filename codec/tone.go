package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToneNone is the display value of an unset tone.
const ToneNone = "None"

// DCS polarity markers in the high byte.
const (
	dcsNormal   = 0x80
	dcsInverted = 0xC0
	dcsCodeMask = 0x3F
)

// ToneToBytes encodes a tone descriptor, high byte first.
//
//	"" / "None"  -> FF FF
//	"D023N"      -> DCS normal   (0x80 | code>>8, code)
//	"D023I"      -> DCS inverted (0xC0 | code>>8, code)
//	"88.5"       -> CTCSS, BCD16 of 885
//
// Anything else encodes to FF FF.
func ToneToBytes(tone string) [2]byte {
	none := [2]byte{0xFF, 0xFF}

	if tone == "" || tone == ToneNone {
		return none
	}

	switch {
	case strings.IndexByte(tone, 'N') >= 0:
		code, ok := parseDCS(tone)
		if !ok {
			return none
		}
		return [2]byte{byte(code>>8) | dcsNormal, byte(code)}

	case strings.IndexByte(tone, 'I') >= 0:
		code, ok := parseDCS(tone)
		if !ok {
			return none
		}
		return [2]byte{byte(code>>8) | dcsInverted, byte(code)}

	case strings.IndexByte(tone, '.') >= 0:
		f, err := strconv.ParseFloat(tone, 64)
		if err != nil || f < 0 || f >= 1000 {
			return none
		}
		bcd := DecToBCD16(uint16(math.Round(f * 10)))
		return [2]byte{byte(bcd >> 8), byte(bcd)}
	}

	return none
}

// parseDCS reads the three hex digits after the leading 'D'.
func parseDCS(tone string) (uint16, bool) {
	if len(tone) < 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(tone[1:4], 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// BytesToTone decodes a two-byte tone field. FF FF and 00 00 both decode to
// "None"; malformed input decodes to "".
func BytesToTone(data []byte) string {
	if len(data) < 2 {
		return ""
	}

	hi, lo := data[0], data[1]
	switch {
	case hi == 0xFF && lo == 0xFF, hi == 0x00 && lo == 0x00:
		return ToneNone
	case hi >= dcsInverted:
		return fmt.Sprintf("D%03XI", int(hi&dcsCodeMask)<<8|int(lo))
	case hi >= dcsNormal:
		return fmt.Sprintf("D%03XN", int(hi&dcsCodeMask)<<8|int(lo))
	}

	bcd := uint16(hi)<<8 | uint16(lo)
	if !ValidBCD16(bcd) {
		return ""
	}
	dec := BCDToDec16(bcd)
	return fmt.Sprintf("%d.%d", dec/10, dec%10)
}
