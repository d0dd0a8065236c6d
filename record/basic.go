package record

import (
	"math"

	"github.com/moffa90/go-radiocps/bitfield"
)

// Basic holds the radio-wide settings.
type Basic struct {
	KeyLock     bool    `yaml:"key_lock"`
	BusyLock    int     `yaml:"busy_lock"`  // 0 off, 1 repeater, 2 busy
	VoiceLang   int     `yaml:"voice_lang"` // 0 off, 1 Chinese, 2 English
	Beep        bool    `yaml:"beep"`
	VoxSwitch   bool    `yaml:"vox_switch"`
	Squelch     int     `yaml:"squelch"`
	VoxLevel    int     `yaml:"vox_level"`
	VoxDelay    float64 `yaml:"vox_delay"` // seconds, 0.1 s resolution
	Saving      int     `yaml:"saving"`    // power saving ratio index
	SavingDelay int     `yaml:"saving_delay"`
	APO         int     `yaml:"apo"` // auto power off index
}

const (
	basicFlags       = 8
	basicSquelch     = 9
	basicVoxLevel    = 10
	basicVoxDelay    = 11
	basicSaving      = 12
	basicSavingDelay = 13
	basicAPO         = 14
)

// Window implements Record.
func (b *Basic) Window() Window { return BasicWindow }

// Encode implements Record. Bit 0 of the flag byte is reserved and kept.
func (b *Basic) Encode(base []byte) []byte {
	data := newBase(BasicWindow, base)

	f := data[basicFlags]
	f = bitfield.Set(f, 1, 1, boolBit(b.KeyLock))
	f = bitfield.Set(f, 2, 2, b.BusyLock)
	f = bitfield.Set(f, 4, 2, b.VoiceLang)
	f = bitfield.Set(f, 6, 1, boolBit(b.Beep))
	f = bitfield.Set(f, 7, 1, boolBit(b.VoxSwitch))
	data[basicFlags] = f

	data[basicSquelch] = byte(b.Squelch)
	data[basicVoxLevel] = byte(b.VoxLevel)
	data[basicVoxDelay] = byte(math.Round(b.VoxDelay * 10))
	data[basicSaving] = byte(b.Saving)
	data[basicSavingDelay] = byte(b.SavingDelay)
	data[basicAPO] = byte(b.APO)
	return data
}

// Decode implements Record.
func (b *Basic) Decode(data []byte) {
	mustLen("basic", BasicWindow, data)

	f := data[basicFlags]
	b.KeyLock = bitfield.Get(f, 1, 1) == 1
	b.BusyLock = int(bitfield.Get(f, 2, 2))
	b.VoiceLang = int(bitfield.Get(f, 4, 2))
	b.Beep = bitfield.Get(f, 6, 1) == 1
	b.VoxSwitch = bitfield.Get(f, 7, 1) == 1

	b.Squelch = int(data[basicSquelch])
	b.VoxLevel = int(data[basicVoxLevel])
	b.VoxDelay = float64(data[basicVoxDelay]) / 10
	b.Saving = int(data[basicSaving])
	b.SavingDelay = int(data[basicSavingDelay])
	b.APO = int(data[basicAPO])
}
