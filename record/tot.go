package record

import "encoding/binary"

// TOT holds the transmit time-out timer settings. Zero Seconds or PreAlert
// means off.
type TOT struct {
	Seconds  int `yaml:"seconds"`
	PreAlert int `yaml:"pre_alert"`
	Rekey    int `yaml:"rekey"`
}

// Accepted TOT values.
const (
	TOTMax          = 600
	TOTStep         = 30
	TOTPreAlertMax  = 60
	TOTPreAlertStep = 5
	TOTRekeyMin     = 10
	TOTRekeyMax     = 60
	TOTRekeyStep    = 5
)

// DefaultTOT replaces out-of-range values during Verify.
var DefaultTOT = TOT{Seconds: 60, PreAlert: 0, Rekey: 10}

// Verify resets every field that is off the allowed raster to its
// DefaultTOT value.
func (t *TOT) Verify() {
	if t.Seconds < 0 || t.Seconds > TOTMax || t.Seconds%TOTStep != 0 {
		t.Seconds = DefaultTOT.Seconds
	}
	if t.PreAlert < 0 || t.PreAlert > TOTPreAlertMax || t.PreAlert%TOTPreAlertStep != 0 {
		t.PreAlert = DefaultTOT.PreAlert
	}
	if t.Rekey < TOTRekeyMin || t.Rekey > TOTRekeyMax || t.Rekey%TOTRekeyStep != 0 {
		t.Rekey = DefaultTOT.Rekey
	}
}

// Window implements Record.
func (t *TOT) Window() Window { return TOTWindow }

// Encode implements Record. Values are verified first; bytes 4-7 are kept.
func (t *TOT) Encode(base []byte) []byte {
	t.Verify()

	data := newBase(TOTWindow, base)
	binary.BigEndian.PutUint16(data[0:2], uint16(t.Seconds))
	data[2] = byte(t.PreAlert)
	data[3] = byte(t.Rekey)
	return data
}

// Decode implements Record.
func (t *TOT) Decode(data []byte) {
	mustLen("tot", TOTWindow, data)

	t.Seconds = int(binary.BigEndian.Uint16(data[0:2]))
	t.PreAlert = int(data[2])
	t.Rekey = int(data[3])
	t.Verify()
}
