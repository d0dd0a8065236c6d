package protocol

// Command tokens.
var (
	// CmdFont starts a font upload.
	CmdFont = []byte("Font")

	// CmdEnd aborts or terminates a transfer.
	CmdEnd = []byte("END\x00")

	// CmdDownload starts the upgrade handshake.
	CmdDownload = []byte("DOWNLOAD")

	// CmdProgram enters programming after the erase frame.
	CmdProgram = []byte("PROGRAM1")

	// CmdInfo requests device information.
	CmdInfo = []byte("INFORMATION")
)

// Handshake signatures returned for CmdDownload.
var (
	// SignatureUpdate is sent by first generation hardware.
	SignatureUpdate = []byte("#UPDATE?")

	// SignatureV2 is sent by second generation hardware.
	SignatureV2 = []byte("V2_00_00")
)

// Response bytes. Only the first byte of "ACK"/"NACK" is sent on the wire.
const (
	Ack  byte = 'A'
	Nack byte = 'N'
)

// Response tokens in full.
var (
	TokenAck  = []byte("ACK")
	TokenNack = []byte("NACK")
)

// FlashCommandSize is the length of every F-xxx sub-command.
const FlashCommandSize = 8

// Flash sub-commands, 0xFF padded.
var (
	FlashProg  = flashCmd("F-PROG")
	FlashErase = flashCmd("F-ERASE")
	FlashCo    = flashCmd("F-CO")
	FlashMod   = flashCmd("F-MOD")
	FlashVer   = flashCmd("F-VER")
	FlashSN    = flashCmd("F-SN")
	FlashTime  = flashCmd("F-TIME")
)

// EraseArgument is the fixed argument of the F-ERASE frame.
var EraseArgument = [8]byte{40, 6, 136, 25, 19, 3, 24, 32}

// Identification strings accepted by F-CO / F-MOD.
var (
	CompanyID      = padFF("SURWAVE-SG-009", 16)
	CompanyIDFixed = padFF("SG-TYT-009", 16)
	ModelIDFixed   = padFF("SG-009", 8)
)

// Upgrade image header fields.
const (
	// HeaderSize is the length of the upgrade image header; payload
	// addresses count from here.
	HeaderSize = 0x50

	// EndAddressOffset holds the big-endian payload end address.
	EndAddressOffset = 0x40

	// HardwareOffset holds the hardware generation digit.
	HardwareOffset = 0x31
)

// Wake frame layout.
const (
	wakeZeros = 12
	wakeOnes  = 4
)

func flashCmd(name string) [FlashCommandSize]byte {
	var cmd [FlashCommandSize]byte
	copy(cmd[:], padFF(name, FlashCommandSize))
	return cmd
}

func padFF(s string, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = 0xFF
	}
	copy(b, s)
	return b
}
