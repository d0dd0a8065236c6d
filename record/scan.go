package record

import (
	"encoding/binary"
	"math"
)

// ScanBasic holds the scan behaviour. Times are in seconds with 0.1 s
// resolution.
type ScanBasic struct {
	Mode            int     `yaml:"mode"` // 0 time, 1 carrier, 2 search
	PriorityScan    bool    `yaml:"priority_scan"`
	PriorityChannel int     `yaml:"priority_channel"`
	BackTime        float64 `yaml:"back_time"`
	RxDelay         float64 `yaml:"rx_delay"`
	TxDelay         float64 `yaml:"tx_delay"`
	RevertChannel   int     `yaml:"revert_channel"`
}

// Window implements Record.
func (s *ScanBasic) Window() Window { return ScanBasicWindow }

// Encode implements Record.
func (s *ScanBasic) Encode(base []byte) []byte {
	data := newBase(ScanBasicWindow, base)

	data[0] = byte(s.Mode)
	data[1] = byte(boolBit(s.PriorityScan))
	binary.BigEndian.PutUint16(data[2:4], uint16(s.PriorityChannel))
	data[4] = tenths(s.BackTime)
	data[5] = tenths(s.RxDelay)
	data[6] = tenths(s.TxDelay)
	data[7] = byte(s.RevertChannel)
	return data
}

// Decode implements Record.
func (s *ScanBasic) Decode(data []byte) {
	mustLen("scan basic", ScanBasicWindow, data)

	s.Mode = int(data[0])
	s.PriorityScan = data[1] != 0
	s.PriorityChannel = int(binary.BigEndian.Uint16(data[2:4]))
	s.BackTime = float64(data[4]) / 10
	s.RxDelay = float64(data[5]) / 10
	s.TxDelay = float64(data[6]) / 10
	s.RevertChannel = int(data[7])
}

func tenths(v float64) byte {
	return byte(math.Round(v * 10))
}
