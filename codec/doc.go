// Package codec converts radio domain values to and from their fixed-width
// binary fields in the EEPROM image.
//
// # Frequencies
//
// A frequency is a decimal string in MHz with five fraction digits
// ("435.02500"). Internally it is an integer scaled by 100000 and stored as
// BCD32 in four little-endian bytes. Four 0xFF bytes mean "not set":
//
//	b := codec.FreqToBytes("435.02500")   // 00 25 50 43
//	s := codec.BytesToFreq(b[:], codec.DefaultRange)
//
// Decoding is soft: a value outside the active Range, or malformed BCD,
// decodes to "".
//
// # Tones
//
// A tone is "None", a CTCSS tone with one decimal ("88.5"), or a DCS code
// with polarity suffix ("D023N", "D754I"):
//
//	b := codec.ToneToBytes("D023N")       // 80 23
//	s := codec.BytesToTone(b[:])          // "D023N"
//
// # DTMF
//
// DTMF codes use the 16-symbol alphabet "0123456789ABCD*#" with one symbol
// index per byte and 0xFF fill.
package codec
