package codec

import (
	"bytes"
	"testing"
)

func TestFreqToBytes(t *testing.T) {
	tests := []struct {
		name string
		freq string
		want []byte
	}{
		{name: "uhf", freq: "435.02500", want: []byte{0x00, 0x25, 0x50, 0x43}},
		{name: "short fraction", freq: "400.1", want: []byte{0x00, 0x00, 0x01, 0x40}},
		{name: "empty", freq: "", want: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "garbage", freq: "abc", want: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreqToBytes(tt.freq)
			if !bytes.Equal(got[:], tt.want) {
				t.Errorf("FreqToBytes(%q) = % X, want % X", tt.freq, got, tt.want)
			}
		})
	}
}

func TestFreqRoundTrip(t *testing.T) {
	freqs := []string{"400.00000", "435.02500", "446.00625", "462.56250", "520.00000"}

	for _, freq := range freqs {
		b := FreqToBytes(freq)
		if got := BytesToFreq(b[:], DefaultRange); got != freq {
			t.Errorf("BytesToFreq(FreqToBytes(%q)) = %q", freq, got)
		}
	}
}

func TestBytesToFreqOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "below range", data: func() []byte { b := FreqToBytes("145.50000"); return b[:] }()},
		{name: "above range", data: func() []byte { b := FreqToBytes("520.00001"); return b[:] }()},
		{name: "unset", data: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "malformed bcd", data: []byte{0x00, 0x0A, 0x50, 0x43}},
		{name: "short", data: []byte{0x00, 0x25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BytesToFreq(tt.data, DefaultRange); got != "" {
				t.Errorf("BytesToFreq() = %q, want empty", got)
			}
		})
	}
}

func TestBytesToFreqUsesGivenRange(t *testing.T) {
	vhf := Range{Min: 13600000, Max: 17400000}
	b := FreqToBytes("145.50000")

	if got := BytesToFreq(b[:], vhf); got != "145.50000" {
		t.Errorf("BytesToFreq(vhf) = %q, want 145.50000", got)
	}
	if got := BytesToFreq(b[:], DefaultRange); got != "" {
		t.Errorf("BytesToFreq(uhf) = %q, want empty", got)
	}
}

func TestFreqIsValid(t *testing.T) {
	tests := []struct {
		freq string
		want bool
	}{
		{"435.025", true},
		{"400", true},
		{"520.00000", true},
		{"399.99999", false},
		{"", false},
		{"x", false},
	}

	for _, tt := range tests {
		if got := FreqIsValid(tt.freq, DefaultRange); got != tt.want {
			t.Errorf("FreqIsValid(%q) = %v, want %v", tt.freq, got, tt.want)
		}
	}
}

func TestFreqIs5kStep(t *testing.T) {
	if !FreqIs5kStep("435.02500") {
		t.Error("FreqIs5kStep(435.02500) = false, want true")
	}
	if FreqIs5kStep("446.00625") {
		t.Error("FreqIs5kStep(446.00625) = true, want false")
	}
}

func TestAdjustFreq(t *testing.T) {
	tests := []struct {
		name string
		freq int
		want int
	}{
		{name: "on 5k raster", freq: 43502500, want: 43502500},
		{name: "on 6.25k raster", freq: 44600625, want: 44600625},
		{name: "nearer 5k", freq: 43500010, want: 43500500},
		{name: "nearer 6.25k", freq: 43500601, want: 43500625},
		{name: "equal distance", freq: 43502499, want: 43502500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustFreq(tt.freq, Step5k, Step6k25); got != tt.want {
				t.Errorf("AdjustFreq(%d) = %d, want %d", tt.freq, got, tt.want)
			}
		})
	}
}

func TestNormalizeFreq(t *testing.T) {
	tests := []struct {
		freq string
		want string
	}{
		{"435.0251", "435.03000"},
		{"446.0060", "446.00625"},
		{"435.025", "435.02500"},
		{"100", "400.00000"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeFreq(tt.freq, DefaultRange); got != tt.want {
			t.Errorf("NormalizeFreq(%q) = %q, want %q", tt.freq, got, tt.want)
		}
	}
}
