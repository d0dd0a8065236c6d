// Package firmware handles the files the radio tools load before a transfer.
//
// # Upgrade Files
//
// Firmware upgrade .dat files start with a 0x50-byte header:
//
//	offset  field
//	0x00    "BaoFeng"
//	0x10    "BF_5RH"
//	0x20    version string starting with 'V'
//	0x31    hardware generation, '2' on second generation radios
//	0x40    payload end address, 32-bit big-endian
//
// ParseHeader validates it:
//
//	data, _ := os.ReadFile("BF-5RH.dat")
//	hdr, err := firmware.ParseHeader(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s %s, %d bytes\n", hdr.Model, hdr.Version, hdr.PayloadEnd)
//
// Everything after the header is XOR-obfuscated. Crypt is its own inverse:
//
//	firmware.Crypt(data) // .dat -> .bin, or .bin -> .dat
//
// # Font Text
//
// Font images are distributed as C-style hex text ("0x1f,0x00,..."), which
// ParseFontText turns into bytes and FormatFontText writes back.
package firmware
