package protocol

import (
	"encoding/binary"
	"fmt"
)

// ChunkHeaderSize is the length of the upgrade chunk header.
const ChunkHeaderSize = 5

// BuildChunkHeader constructs the upgrade chunk header.
//
// Frame structure:
//
//	[ADDR_3][ADDR_2][ADDR_1][ADDR_0][0x00]
func BuildChunkHeader(addr int) []byte {
	frame := make([]byte, ChunkHeaderSize)
	binary.BigEndian.PutUint32(frame, uint32(addr))
	return frame
}

// BuildEndFrame constructs the frame that closes a transfer.
//
// With a checksum:
//
//	['E']['N']['D'][0xFF][0xFF][SUM_3][SUM_2][SUM_1][SUM_0]
//
// Without, "END" padded with 0xFF to the chunk size.
func BuildEndFrame(v Variant, sum uint32) []byte {
	if v.Checksum {
		frame := make([]byte, 0, 9)
		frame = append(frame, 'E', 'N', 'D', 0xFF, 0xFF)
		sumBytes := make([]byte, 4)
		binary.BigEndian.PutUint32(sumBytes, sum)
		return append(frame, sumBytes...)
	}

	size := v.ChunkSize
	if size < 3 {
		size = 3
	}
	frame := padFF("END", size)
	return frame
}

// BuildCancelFrame constructs the END sentinel sent when a transfer is
// cancelled.
func BuildCancelFrame() []byte {
	frame := make([]byte, len(CmdEnd))
	copy(frame, CmdEnd)
	return frame
}

// BuildEraseFrame constructs the F-ERASE frame with its fixed argument.
//
// Frame structure:
//
//	["F-ERASE" 0xFF][ARG(8)]
func BuildEraseFrame() []byte {
	frame := make([]byte, 0, FlashCommandSize+len(EraseArgument))
	frame = append(frame, FlashErase[:]...)
	return append(frame, EraseArgument[:]...)
}

// BuildFlashFrame constructs an F-xxx sub-command followed by its argument.
func BuildFlashFrame(cmd [FlashCommandSize]byte, arg []byte) ([]byte, error) {
	if len(arg) > 16 {
		return nil, fmt.Errorf("flash argument length %d exceeds maximum 16 bytes", len(arg))
	}

	frame := make([]byte, 0, FlashCommandSize+len(arg))
	frame = append(frame, cmd[:]...)
	frame = append(frame, arg...)
	return frame, nil
}

// BuildWakeFrame constructs the font variant wake-up frame.
//
// Frame structure:
//
//	[0x00 x 12][0xFF x 4]
func BuildWakeFrame() []byte {
	frame := make([]byte, wakeZeros+wakeOnes)
	for i := wakeZeros; i < len(frame); i++ {
		frame[i] = 0xFF
	}
	return frame
}

// BuildFontCommand constructs the font upload command.
//
// Frame structure:
//
//	['F']['o']['n']['t'][0xFF x 4]
func BuildFontCommand() []byte {
	frame := make([]byte, 0, len(CmdFont)+4)
	frame = append(frame, CmdFont...)
	return append(frame, 0xFF, 0xFF, 0xFF, 0xFF)
}

// Fragments splits frame into pieces of at most size bytes. A size of zero
// or less returns frame whole.
func Fragments(frame []byte, size int) [][]byte {
	if size <= 0 || len(frame) <= size {
		return [][]byte{frame}
	}

	out := make([][]byte, 0, (len(frame)+size-1)/size)
	for len(frame) > size {
		out = append(out, frame[:size])
		frame = frame[size:]
	}
	return append(out, frame)
}
