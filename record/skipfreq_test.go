package record

import (
	"bytes"
	"strings"
	"testing"
)

func TestSkipFrequencyLayout(t *testing.T) {
	s := NewSkipFrequency(nil)
	s.Groups[1][2] = "435.02500"

	data := s.Encode(nil)
	off := 1*176 + 2*4
	if got := data[off : off+4]; got[0] != 0x00 || got[1] != 0x25 || got[2] != 0x50 || got[3] != 0x43 {
		t.Errorf("entry bytes = % X", got)
	}
	if data[0] != 0xFF {
		t.Errorf("unset entry byte = 0x%02X, want 0xFF", data[0])
	}
}

func TestSkipFrequencyDecodeOffsets(t *testing.T) {
	data := make([]byte, SkipFrequencyWindow.Length)
	for i := range data {
		data[i] = 0xFF
	}
	// groups are 176 bytes apart, entries 4
	copy(data[0:4], []byte{0x00, 0x00, 0x00, 0x43})
	copy(data[176:180], []byte{0x00, 0x25, 0x50, 0x43})
	copy(data[7*176+10*4:], []byte{0x50, 0x12, 0x00, 0x44})
	copy(data[2800:2804], []byte{0x00, 0x00, 0x00, 0x45})

	s := NewSkipFrequency(nil)
	s.Decode(data)

	tests := []struct {
		group, entry int
		want         string
	}{
		{0, 0, "430.00000"},
		{1, 0, "435.02500"},
		{7, 10, "440.01250"},
		{15, 40, "450.00000"},
		{0, 1, ""},
		{1, 1, ""},
		{14, 40, ""},
	}
	for _, tt := range tests {
		if got := s.Groups[tt.group][tt.entry]; got != tt.want {
			t.Errorf("group %d entry %d = %q, want %q", tt.group, tt.entry, got, tt.want)
		}
	}

	// the 12 bytes after each group are not owned by any entry
	if got := s.Encode(data); !bytes.Equal(got, data) {
		t.Error("Encode() of a decoded fixture differs from the fixture")
	}
}

func TestSkipFrequencyRoundTrip(t *testing.T) {
	src := NewSkipFrequency(nil)
	for g := 0; g < SkipGroupCount; g += 3 {
		if err := src.SetGroup(g, 43000000+g*100000); err != nil {
			t.Fatalf("SetGroup(%d): %v", g, err)
		}
	}

	dst := NewSkipFrequency(nil)
	dst.Decode(src.Encode(nil))
	if dst.Groups != src.Groups {
		t.Error("Decode(Encode()) differs from source")
	}
}

func TestSkipFrequencySetGroup(t *testing.T) {
	s := NewSkipFrequency(nil)
	if err := s.SetGroup(0, 43000000); err != nil {
		t.Fatal(err)
	}

	g := s.Groups[0]
	tests := []struct {
		entry int
		want  string
	}{
		{0, "430.10000"},
		{40, "430.10000"},
		{19, "432.00000"},
		{21, "432.00000"},
		{20, "432.10000"},
	}
	for _, tt := range tests {
		if g[tt.entry] != tt.want {
			t.Errorf("entry %d = %q, want %q", tt.entry, g[tt.entry], tt.want)
		}
	}

	if err := s.SetGroup(16, 43000000); err == nil {
		t.Error("SetGroup(16) succeeded, want error")
	}
}

func TestSkipFrequencyImportExport(t *testing.T) {
	s := NewSkipFrequency(nil)
	s.Groups[2][5] = "440.00000"

	flat := s.Export()
	if len(flat) != SkipGroupCount*SkipEntryCount {
		t.Fatalf("Export() returned %d entries", len(flat))
	}
	if flat[2*41+5] != "440.00000" {
		t.Errorf("flat[87] = %q, want 440.00000", flat[87])
	}

	joined := strings.Join(flat, ",")
	other := NewSkipFrequency(nil)
	if err := other.Import(strings.Split(joined, ",")); err != nil {
		t.Fatalf("Import(): %v", err)
	}
	if other.Groups != s.Groups {
		t.Error("Import(Export()) differs from source")
	}

	if err := other.Import([]string{"1"}); err == nil {
		t.Error("Import(short) succeeded, want error")
	}
}
