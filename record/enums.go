package record

import "fmt"

// Power is the channel transmit power level.
type Power int

const (
	PowerLow Power = iota
	PowerHigh
)

var powerNames = []string{"low", "high"}

// Bandwidth is the channel bandwidth.
type Bandwidth int

const (
	BandwidthNarrow Bandwidth = iota // 12.5 kHz
	BandwidthWide                    // 25 kHz
)

var bandwidthNames = []string{"narrow", "wide"}

// Scan controls whether a channel takes part in scanning.
type Scan int

const (
	ScanAllow Scan = iota
	ScanProhibit
)

var scanNames = []string{"allow", "prohibit"}

// SquelchMode selects which signalling opens the squelch.
type SquelchMode int

const (
	SquelchNone SquelchMode = iota
	SquelchCTDCS
	SquelchOptional
	SquelchCTDCSOrOptional
	SquelchCTDCSAndOptional
)

var squelchNames = []string{"none", "ctdcs", "optional", "ctdcs-or-optional", "ctdcs-and-optional"}

// ButtonFunction is the action assigned to a side key press.
type ButtonFunction int

const (
	ButtonNone ButtonFunction = iota
	ButtonMonitor
	ButtonScan
	ButtonVoiceControl
	ButtonPowerDetection
	ButtonPowerControl
	ButtonOneKeyCall
	ButtonAlarm
	ButtonFlashlight
	ButtonInvertedFrequency
	ButtonOffnet
	ButtonBandwidth
	Button1750Hz
	Button2100Hz
	Button1000Hz
	Button1450Hz
)

var buttonNames = []string{
	"none", "monitor", "scan", "voice-control", "power-detection", "power-control",
	"one-key-call", "alarm", "flashlight", "inverted-frequency", "offnet", "bandwidth",
	"1750hz", "2100hz", "1000hz", "1450hz",
}

// ButtonFunctionCount is the number of defined side key functions.
const ButtonFunctionCount = 16

func enumName(names []string, v int) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%d", v)
}

func parseEnum(kind string, names []string, text []byte) (int, error) {
	s := string(text)
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}

func (p Power) String() string { return enumName(powerNames, int(p)) }

// MarshalText implements encoding.TextMarshaler.
func (p Power) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Power) UnmarshalText(text []byte) error {
	v, err := parseEnum("power", powerNames, text)
	*p = Power(v)
	return err
}

func (b Bandwidth) String() string { return enumName(bandwidthNames, int(b)) }

// MarshalText implements encoding.TextMarshaler.
func (b Bandwidth) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bandwidth) UnmarshalText(text []byte) error {
	v, err := parseEnum("bandwidth", bandwidthNames, text)
	*b = Bandwidth(v)
	return err
}

func (s Scan) String() string { return enumName(scanNames, int(s)) }

// MarshalText implements encoding.TextMarshaler.
func (s Scan) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scan) UnmarshalText(text []byte) error {
	v, err := parseEnum("scan", scanNames, text)
	*s = Scan(v)
	return err
}

func (m SquelchMode) String() string { return enumName(squelchNames, int(m)) }

// MarshalText implements encoding.TextMarshaler.
func (m SquelchMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SquelchMode) UnmarshalText(text []byte) error {
	v, err := parseEnum("squelch mode", squelchNames, text)
	*m = SquelchMode(v)
	return err
}

func (f ButtonFunction) String() string { return enumName(buttonNames, int(f)) }

// MarshalText implements encoding.TextMarshaler.
func (f ButtonFunction) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *ButtonFunction) UnmarshalText(text []byte) error {
	v, err := parseEnum("button function", buttonNames, text)
	*f = ButtonFunction(v)
	return err
}
