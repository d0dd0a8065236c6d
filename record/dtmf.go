package record

import "github.com/moffa90/go-radiocps/codec"

// DTMFBasic holds the DTMF signalling parameters and remote control codes.
// Times are in milliseconds and stored with 10 ms resolution.
type DTMFBasic struct {
	Rate       int  `yaml:"rate"` // index into 50/100/200/300/500 ms
	FirstDigit int  `yaml:"first_digit"`
	PreCarrier int  `yaml:"pre_carrier"`
	TxDelay    int  `yaml:"tx_delay"`
	PTTIDPause int  `yaml:"pttid_pause"` // seconds, 0 = off
	SideTone   bool `yaml:"side_tone"`

	UpCode   string `yaml:"up_code"`
	DownCode string `yaml:"down_code"`
	StunCode string `yaml:"stun_code"`
	KillCode string `yaml:"kill_code"`
}

const (
	dtmfRate       = 1
	dtmfFirstDigit = 2
	dtmfPreCarrier = 3
	dtmfTxDelay    = 4
	dtmfPTTIDPause = 5
	dtmfSideTone   = 6
	dtmfUpCode     = 24
	dtmfDownCode   = 40
	dtmfStunCode   = 56
	dtmfKillCode   = 72
)

// Window implements Record.
func (d *DTMFBasic) Window() Window { return DTMFBasicWindow }

// Encode implements Record.
func (d *DTMFBasic) Encode(base []byte) []byte {
	data := newBase(DTMFBasicWindow, base)

	data[dtmfRate] = byte(d.Rate)
	data[dtmfFirstDigit] = byte(d.FirstDigit / 10)
	data[dtmfPreCarrier] = byte(d.PreCarrier / 10)
	data[dtmfTxDelay] = byte(d.TxDelay / 10)
	data[dtmfPTTIDPause] = byte(d.PTTIDPause)
	data[dtmfSideTone] = byte(boolBit(d.SideTone))

	putDTMF(data, dtmfUpCode, d.UpCode)
	putDTMF(data, dtmfDownCode, d.DownCode)
	putDTMF(data, dtmfStunCode, d.StunCode)
	putDTMF(data, dtmfKillCode, d.KillCode)
	return data
}

// Decode implements Record.
func (d *DTMFBasic) Decode(data []byte) {
	mustLen("dtmf basic", DTMFBasicWindow, data)

	d.Rate = int(data[dtmfRate])
	d.FirstDigit = int(data[dtmfFirstDigit]) * 10
	d.PreCarrier = int(data[dtmfPreCarrier]) * 10
	d.TxDelay = int(data[dtmfTxDelay]) * 10
	d.PTTIDPause = int(data[dtmfPTTIDPause])
	d.SideTone = data[dtmfSideTone] != 0

	d.UpCode = getDTMF(data, dtmfUpCode)
	d.DownCode = getDTMF(data, dtmfDownCode)
	d.StunCode = getDTMF(data, dtmfStunCode)
	d.KillCode = getDTMF(data, dtmfKillCode)
}

func putDTMF(data []byte, off int, code string) {
	b := codec.EncodeDTMF(code)
	copy(data[off:off+codec.DTMFCodeLen], b[:])
}

func getDTMF(data []byte, off int) string {
	return codec.DecodeDTMF(data[off : off+codec.DTMFCodeLen])
}

// DTMFContacts is the 16-entry DTMF contact list. An empty code marks a
// free slot.
type DTMFContacts struct {
	Codes [ContactCount]string
}

// Window implements Record.
func (c *DTMFContacts) Window() Window { return DTMFContactWindow }

// Encode implements Record. Every byte of the window is owned.
func (c *DTMFContacts) Encode(base []byte) []byte {
	data := newBase(DTMFContactWindow, base)
	for i, code := range c.Codes {
		putDTMF(data, i*codec.DTMFCodeLen, code)
	}
	return data
}

// Decode implements Record.
func (c *DTMFContacts) Decode(data []byte) {
	mustLen("dtmf contacts", DTMFContactWindow, data)

	for i := range c.Codes {
		c.Codes[i] = getDTMF(data, i*codec.DTMFCodeLen)
	}
}

// Used reports whether contact index i holds a code.
func (c *DTMFContacts) Used(i int) bool {
	if i < 0 || i >= ContactCount {
		return false
	}
	return c.Codes[i] != ""
}
