// Package bitfield provides index+length addressed bit-field access on bytes
// and 32-bit words.
//
// Every record codec packs its sub-fields with these helpers. A field is
// described by the index of its least significant bit and its width:
//
//	b = bitfield.Set(b, 2, 2, busyLock) // bits 2..3
//	v := bitfield.Get(b, 2, 2)
//
// Bounds are the caller's responsibility; indices and lengths in this module
// are always compile-time constants.
package bitfield

// Mask returns a mask of length ones shifted left by index.
func Mask(index, length int) uint32 {
	return ((1 << uint(length)) - 1) << uint(index)
}

// Get extracts length bits starting at index from b.
func Get(b byte, index, length int) byte {
	return byte((uint32(b) >> uint(index)) & Mask(0, length))
}

// Clear zeroes length bits starting at index in b.
func Clear(b byte, index, length int) byte {
	return b &^ byte(Mask(index, length))
}

// Set replaces length bits starting at index in b with value.
// Bits of value above length are discarded; bits of b outside the field are
// left untouched.
func Set(b byte, index, length int, value int) byte {
	b = Clear(b, index, length)
	return b | byte((uint32(value)&Mask(0, length))<<uint(index))
}

// Get32 extracts length bits starting at index from v.
func Get32(v uint32, index, length int) uint32 {
	return (v >> uint(index)) & Mask(0, length)
}

// Clear32 zeroes length bits starting at index in v.
func Clear32(v uint32, index, length int) uint32 {
	return v &^ Mask(index, length)
}

// Set32 replaces length bits starting at index in v with value.
func Set32(v uint32, index, length int, value uint32) uint32 {
	v = Clear32(v, index, length)
	return v | (value&Mask(0, length))<<uint(index)
}
