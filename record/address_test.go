package record

import "testing"

func allRecords() []Record {
	model := NewModel()
	channels := NewChannels(model)
	contacts := &DTMFContacts{}
	return []Record{
		channels,
		model,
		&Basic{},
		&TOT{Rekey: 10},
		&Buttons{},
		&ChannelIndex{Channels: channels},
		&ScanBasic{},
		&ScanIndex{Channels: channels},
		&DTMFBasic{},
		&ContactIndex{Contacts: contacts},
		contacts,
		NewSkipFrequency(model),
	}
}

func TestWindowsDisjoint(t *testing.T) {
	recs := allRecords()
	for i := range recs {
		for j := i + 1; j < len(recs); j++ {
			a, b := recs[i].Window(), recs[j].Window()
			if a.Overlaps(b) {
				t.Errorf("window %s (%T) overlaps %s (%T)", a, recs[i], b, recs[j])
			}
		}
	}
}

func TestEncodeLength(t *testing.T) {
	for _, r := range allRecords() {
		w := r.Window()
		if got := len(r.Encode(nil)); got != w.Length {
			t.Errorf("%T.Encode(nil) returned %d bytes, want %d", r, got, w.Length)
		}
		if got := len(r.Encode(make([]byte, w.Length))); got != w.Length {
			t.Errorf("%T.Encode(base) returned %d bytes, want %d", r, got, w.Length)
		}
	}
}

func TestDecodeWrongLengthPanics(t *testing.T) {
	for _, r := range allRecords() {
		r := r
		t.Run(typeName(r), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%T.Decode(short) did not panic", r)
				}
			}()
			r.Decode(make([]byte, r.Window().Length-1))
		})
	}
}

func TestEncodeDoesNotAliasBase(t *testing.T) {
	b := &Basic{Squelch: 5}
	base := make([]byte, BasicWindow.Length)
	out := b.Encode(base)
	if base[basicSquelch] != 0 {
		t.Error("Encode modified its base")
	}
	if out[basicSquelch] != 5 {
		t.Errorf("squelch byte = %d, want 5", out[basicSquelch])
	}
}

func TestNilBaseIsErased(t *testing.T) {
	b := &Basic{}
	out := b.Encode(nil)
	if out[0] != 0xFF || out[15] != 0xFF {
		t.Errorf("unowned bytes = 0x%02X 0x%02X, want 0xFF", out[0], out[15])
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *Channels:
		return "channels"
	case *Model:
		return "model"
	case *Basic:
		return "basic"
	case *TOT:
		return "tot"
	case *Buttons:
		return "buttons"
	case *ChannelIndex:
		return "channel index"
	case *ScanBasic:
		return "scan basic"
	case *ScanIndex:
		return "scan index"
	case *DTMFBasic:
		return "dtmf basic"
	case *ContactIndex:
		return "contact index"
	case *DTMFContacts:
		return "dtmf contacts"
	case *SkipFrequency:
		return "skip frequency"
	}
	return "unknown"
}
