package codec

// DecToBCD32 packs the low 8 decimal digits of dec into 8 nibbles.
func DecToBCD32(dec uint32) uint32 {
	var result uint32
	for i := 0; i < 8; i++ {
		result |= (dec % 10) << uint(4*i)
		dec /= 10
	}
	return result
}

// BCDToDec32 unpacks 8 BCD nibbles into a decimal value.
// Nibbles above 9 are not rejected; use ValidBCD32 first when the source is
// untrusted.
func BCDToDec32(bcd uint32) uint32 {
	var result uint32
	mul := uint32(1)
	for i := 0; i < 8; i++ {
		result += (bcd & 0xF) * mul
		bcd >>= 4
		mul *= 10
	}
	return result
}

// DecToBCD16 packs the low 4 decimal digits of dec into 4 nibbles.
func DecToBCD16(dec uint16) uint16 {
	var result uint16
	for i := 0; i < 4; i++ {
		result |= (dec % 10) << uint(4*i)
		dec /= 10
	}
	return result
}

// BCDToDec16 unpacks 4 BCD nibbles into a decimal value.
func BCDToDec16(bcd uint16) uint16 {
	var result uint16
	mul := uint16(1)
	for i := 0; i < 4; i++ {
		result += (bcd & 0xF) * mul
		bcd >>= 4
		mul *= 10
	}
	return result
}

// ValidBCD32 reports whether every nibble of v is a decimal digit.
func ValidBCD32(v uint32) bool {
	for i := 0; i < 8; i++ {
		if v&0xF > 9 {
			return false
		}
		v >>= 4
	}
	return true
}

// ValidBCD16 reports whether every nibble of v is a decimal digit.
func ValidBCD16(v uint16) bool {
	for i := 0; i < 4; i++ {
		if v&0xF > 9 {
			return false
		}
		v >>= 4
	}
	return true
}
