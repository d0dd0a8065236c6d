package firmware

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// fontBytesPerLine is the number of bytes FormatFontText writes per line.
const fontBytesPerLine = 16

// ParseFontText reads C-style hex text ("0x1f, 0xA0,") and returns the bytes
// in order. Text outside "0x" literals is ignored.
//
// Example:
//
//	f, _ := os.Open("font.txt")
//	data, err := firmware.ParseFontText(f)
func ParseFontText(r io.Reader) ([]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []byte
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		for {
			idx := strings.Index(line, "0x")
			if idx < 0 {
				break
			}
			line = line[idx+2:]
			if len(line) < 2 {
				return nil, fmt.Errorf("line %d: truncated hex literal", lineNum)
			}
			b, err := hex.DecodeString(line[:2])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid hex literal %q: %w", lineNum, "0x"+line[:2], err)
			}
			out = append(out, b[0])
			line = line[2:]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read font text: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no hex bytes found")
	}
	return out, nil
}

// FormatFontText writes data as hex text that ParseFontText reads back.
func FormatFontText(w io.Writer, data []byte) error {
	bw := bufio.NewWriter(w)
	for i, b := range data {
		if _, err := fmt.Fprintf(bw, "0x%02x,", b); err != nil {
			return err
		}
		if (i+1)%fontBytesPerLine == 0 || i == len(data)-1 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
