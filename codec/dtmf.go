package codec

import "strings"

// DTMFAlphabet lists the DTMF symbols in wire index order.
const DTMFAlphabet = "0123456789ABCD*#"

// DTMFCodeLen is the number of symbol bytes in one DTMF code field.
const DTMFCodeLen = 16

// EncodeDTMF stores up to 16 symbols as alphabet indexes, 0xFF filled.
// Symbols outside the alphabet are stored as 0xFF.
func EncodeDTMF(code string) [DTMFCodeLen]byte {
	var out [DTMFCodeLen]byte
	for i := range out {
		out[i] = 0xFF
	}

	code = strings.ToUpper(code)
	for i := 0; i < len(code) && i < DTMFCodeLen; i++ {
		if idx := strings.IndexByte(DTMFAlphabet, code[i]); idx >= 0 {
			out[i] = byte(idx)
		}
	}
	return out
}

// DecodeDTMF reads symbol indexes up to the first byte outside the alphabet.
func DecodeDTMF(data []byte) string {
	var sb strings.Builder
	for _, b := range data {
		if int(b) >= len(DTMFAlphabet) {
			break
		}
		sb.WriteByte(DTMFAlphabet[b])
	}
	return sb.String()
}

// ValidDTMF reports whether code fits a DTMF field and uses only alphabet
// symbols.
func ValidDTMF(code string) bool {
	if len(code) > DTMFCodeLen {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(DTMFAlphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}
